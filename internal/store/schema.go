// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"
	"strings"
)

// Relation declares a relationship edge from one record type to another.
// It is what allows dotted filter paths ("owner.login") to traverse into a
// joined table.
type Relation struct {
	// Join is the SQL join fragment for the edge, in the form accepted by
	// squirrel's Join: "users ON users.user_id = items.owner_id".
	Join string

	// Schema describes the record type the edge points at. Path resolution
	// continues against it.
	Schema *Schema
}

// Schema is the static description of a record type at the persistence
// layer: its table, the mapping from field names to qualified columns, the
// declared relationship edges, and optional capabilities.
//
// Schemas are registered once at package init and treated as read-only
// afterwards, so they are safe to share between goroutines.
type Schema struct {
	// Table is the database table holding the record type.
	Table string

	// IDField is the field name of the primary key (usually "id").
	IDField string

	// Columns maps record field names to fully qualified column names
	// ("name" -> "items.name"). Lookups fail closed: a field missing from
	// the map is an ErrUnknownField, never a pass-through.
	Columns map[string]string

	// Relations maps relationship field names to their edges.
	Relations map[string]Relation

	// SelectColumns lists the qualified columns of a full-row SELECT in the
	// fixed order row mappers scan them.
	SelectColumns []string

	// ModifiedColumn, when non-empty, names the timestamp column stamped
	// with now() on every update.
	ModifiedColumn string

	// DeletedOnColumn, when non-empty, names the soft-delete timestamp
	// column and thereby grants the record type the soft-delete capability.
	DeletedOnColumn string
}

// SoftDeletable reports whether the record type supports soft deletes.
func (s *Schema) SoftDeletable() bool {
	return s.DeletedOnColumn != ""
}

// IDColumn returns the qualified column of the primary key field.
func (s *Schema) IDColumn() string {
	return s.Columns[s.IDField]
}

// ResolveField maps a field path to its qualified column.
//
// A plain field ("name") resolves against the schema's own columns. A dotted
// path ("owner.login") walks the declared relations segment by segment: every
// segment but the last must name a relation, the last must name a column on
// the relation's target schema. The join fragments required to reach the
// final column are returned alongside it.
//
// Resolution fails closed with ErrUnknownField on the first segment that does
// not exist.
func (s *Schema) ResolveField(path string) (string, []string, error) {
	parts := strings.Split(path, ".")

	var joins []string
	current := s
	for _, segment := range parts[:len(parts)-1] {
		relation, ok := current.Relations[segment]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q has no relation %q", ErrUnknownField, current.Table, segment)
		}

		joins = append(joins, relation.Join)
		current = relation.Schema
	}

	field := parts[len(parts)-1]
	column, ok := current.Columns[field]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q has no field %q", ErrUnknownField, current.Table, field)
	}

	return column, joins, nil
}

// ResolveJoin returns the join fragment of a directly declared relation.
// Used for explicit eager-loading joins requested by a list query.
func (s *Schema) ResolveJoin(field string) (string, error) {
	relation, ok := s.Relations[field]
	if !ok {
		return "", fmt.Errorf("%w: %q has no relation %q", ErrUnknownField, s.Table, field)
	}

	return relation.Join, nil
}
