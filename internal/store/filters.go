// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/etorres/go-api-scaffold/models"
)

// operatorPredicates is the dispatch table from filter operators to squirrel
// predicate constructors. Adding an operator means adding one entry here.
var operatorPredicates = map[models.FilterOperator]func(column string, value any) sq.Sqlizer{
	models.OperatorEq:  func(c string, v any) sq.Sqlizer { return sq.Eq{c: v} },
	models.OperatorNeq: func(c string, v any) sq.Sqlizer { return sq.NotEq{c: v} },
	models.OperatorContains: func(c string, v any) sq.Sqlizer {
		return sq.Like{c: fmt.Sprintf("%%%v%%", v)}
	},
	models.OperatorNotContains: func(c string, v any) sq.Sqlizer {
		return sq.NotLike{c: fmt.Sprintf("%%%v%%", v)}
	},
	models.OperatorGt:  func(c string, v any) sq.Sqlizer { return sq.Gt{c: v} },
	models.OperatorGte: func(c string, v any) sq.Sqlizer { return sq.GtOrEq{c: v} },
	models.OperatorLt:  func(c string, v any) sq.Sqlizer { return sq.Lt{c: v} },
	models.OperatorLte: func(c string, v any) sq.Sqlizer { return sq.LtOrEq{c: v} },
}

// TranslateFilter converts a single filter descriptor into a squirrel
// predicate against the given qualified column.
//
// Returns ErrUnsupportedOperator when the operator is outside the enumerated
// set; translation never guesses.
func TranslateFilter(column string, filter models.Filter) (sq.Sqlizer, error) {
	build, ok := operatorPredicates[filter.Operator]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOperator, filter.Operator)
	}

	return build(column, filter.Value), nil
}

// buildConditions resolves every filter field against the schema and
// translates the descriptors into predicates. It returns the predicates
// together with the join fragments required by dotted field paths,
// deduplicated in first-seen order so the generated SQL stays deterministic.
func buildConditions(schema *Schema, filters []models.Filter) ([]sq.Sqlizer, []string, error) {
	conditions := make([]sq.Sqlizer, 0, len(filters))
	var joins []string
	seen := make(map[string]struct{})

	for _, filter := range filters {
		column, fieldJoins, err := schema.ResolveField(filter.Field)
		if err != nil {
			return nil, nil, err
		}

		condition, err := TranslateFilter(column, filter)
		if err != nil {
			return nil, nil, err
		}

		conditions = append(conditions, condition)
		for _, join := range fieldJoins {
			if _, ok := seen[join]; ok {
				continue
			}
			seen[join] = struct{}{}
			joins = append(joins, join)
		}
	}

	return conditions, joins, nil
}
