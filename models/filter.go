// SPDX-License-Identifier: Apache-2.0

package models

// FilterOperator defines a comparison operator applied to a record field.
// Used in list-query filtering conditions.
type FilterOperator string

const (
	OperatorEq          FilterOperator = "eq"
	OperatorNeq         FilterOperator = "neq"
	OperatorContains    FilterOperator = "contains"
	OperatorNotContains FilterOperator = "not_contains"
	OperatorGt          FilterOperator = "gt"
	OperatorGte         FilterOperator = "gte"
	OperatorLt          FilterOperator = "lt"
	OperatorLte         FilterOperator = "lte"
)

// Valid reports whether the operator belongs to the enumerated set.
func (o FilterOperator) Valid() bool {
	switch o {
	case OperatorEq, OperatorNeq, OperatorContains, OperatorNotContains,
		OperatorGt, OperatorGte, OperatorLt, OperatorLte:
		return true
	default:
		return false
	}
}

// Filter is a declarative filter descriptor applied to a list query.
//
// Field names a record attribute and may be a dot-path traversing declared
// relationship edges (e.g. "owner.login"). Operator must be one of the
// enumerated [FilterOperator] values; the query builder fails fast otherwise.
type Filter struct {
	Field    string         `json:"field"`
	Operator FilterOperator `json:"operator"`
	Value    any            `json:"value"`
}
