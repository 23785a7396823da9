// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/models"
)

// RowScanner is the subset of *sql.Row / *sql.Rows needed by row mappers.
type RowScanner interface {
	Scan(dest ...any) error
}

// RowMapper binds a record type to its SQL representation: how a full row is
// scanned back, how the primary key is extracted and which mutable columns a
// record contributes to INSERT and UPDATE statements.
type RowMapper[T any] struct {
	// Scan reads one row in the order of the schema's SelectColumns.
	Scan func(row RowScanner) (T, error)

	// ID extracts the primary key value of a record.
	ID func(record T) any

	// Values returns the mutable columns of a record, keyed by unqualified
	// column name. Server-assigned columns (id, timestamps) are omitted.
	Values func(record T) map[string]any
}

// ListQuery describes one filtered, ordered, windowed list request.
// The zero value lists everything ordered by the primary key ascending.
type ListQuery struct {
	// Offset skips that many rows; values <= 0 leave the clause out.
	Offset int

	// Limit caps the number of returned rows; values <= 0 leave the clause out.
	Limit int

	// Filters are translated into predicates; an empty slice matches all rows.
	Filters []models.Filter

	// CombineOr joins the filter predicates with OR instead of the default AND.
	CombineOr bool

	// OrderBy names the field to order by; empty falls back to the schema's
	// primary key. Ties beyond the ordered field keep no further guarantee,
	// so callers wanting a fully deterministic order should pick a unique field.
	OrderBy string

	// OrderDesc flips the order direction to descending.
	OrderDesc bool

	// Joins lists relation field names to eagerly join.
	Joins []string
}

// Repository is the generic, schema-driven data access object. One instance
// serves one record type; all state is read-only after construction, so a
// Repository is safe for concurrent use.
type Repository[T any] struct {
	db     *DB
	schema *Schema
	mapper RowMapper[T]
	logger *logger.Logger
}

// NewRepository constructs a repository for the record type described by
// schema, using mapper to move records in and out of SQL rows.
func NewRepository[T any](db *DB, schema *Schema, mapper RowMapper[T], log *logger.Logger) *Repository[T] {
	log.Debug().Str("table", schema.Table).Msg("creating repository")
	return &Repository[T]{
		db:     db,
		schema: schema,
		mapper: mapper,
		logger: log,
	}
}

// List returns the records matching query.
//
// Filters are AND-combined unless query.CombineOr is set, relationship joins
// requested explicitly or implied by dotted filter paths are applied, the
// result is ordered deterministically and windowed by offset/limit. An empty
// result is a valid outcome: the method returns an empty slice, not an error.
func (r *Repository[T]) List(ctx context.Context, query ListQuery) ([]T, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(r.schema.SelectColumns...).From(r.schema.Table)

	joins := newJoinSet()
	for _, field := range query.Joins {
		join, err := r.schema.ResolveJoin(field)
		if err != nil {
			return nil, err
		}
		joins.add(join)
	}

	conditions, filterJoins, err := buildConditions(r.schema, query.Filters)
	if err != nil {
		return nil, err
	}
	joins.add(filterJoins...)

	orderField := query.OrderBy
	if orderField == "" {
		orderField = r.schema.IDField
	}
	orderColumn, orderJoins, err := r.schema.ResolveField(orderField)
	if err != nil {
		return nil, err
	}
	joins.add(orderJoins...)

	for _, join := range joins.ordered {
		builder = builder.Join(join)
	}

	if len(conditions) > 0 {
		if query.CombineOr {
			builder = builder.Where(sq.Or(conditions))
		} else {
			builder = builder.Where(sq.And(conditions))
		}
	}

	direction := "ASC"
	if query.OrderDesc {
		direction = "DESC"
	}
	builder = builder.OrderBy(orderColumn + " " + direction)

	if query.Offset > 0 {
		builder = builder.Offset(uint64(query.Offset))
	}
	if query.Limit > 0 {
		builder = builder.Limit(uint64(query.Limit))
	}

	sqlQuery, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	log.Debug().Str("table", r.schema.Table).Str("query", sqlQuery).Msg("listing records")

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("table", r.schema.Table).Msg("error executing list query")
		return nil, r.db.classifyError(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		record, err := r.mapper.Scan(rows)
		if err != nil {
			log.Err(err).Str("table", r.schema.Table).Msg("error scanning listed record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.classifyError(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return records, nil
}

// Count returns the number of records matching the AND-combined filters.
// No match is not an error; the count is simply 0.
func (r *Repository[T]) Count(ctx context.Context, filters []models.Filter) (int, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("COUNT(*)").From(r.schema.Table)

	conditions, joins, err := buildConditions(r.schema, filters)
	if err != nil {
		return 0, err
	}
	for _, join := range joins {
		builder = builder.Join(join)
	}
	if len(conditions) > 0 {
		builder = builder.Where(sq.And(conditions))
	}

	sqlQuery, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		log.Err(err).Str("table", r.schema.Table).Msg("error executing count query")
		return 0, r.db.classifyError(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return count, nil
}

// GetByID returns the single record with the given primary key.
// Returns ErrElementNotFound when no row matches.
func (r *Repository[T]) GetByID(ctx context.Context, id any) (T, error) {
	return r.GetOneByField(ctx, r.schema.IDField, id)
}

// GetOneByField returns the single record whose field equals value.
// Returns ErrElementNotFound when no row matches. The field is expected to be
// unique; behaviour for multi-row matches is not defined.
func (r *Repository[T]) GetOneByField(ctx context.Context, field string, value any) (T, error) {
	return r.GetOneByFields(ctx, []models.Filter{
		{Field: field, Operator: models.OperatorEq, Value: value},
	})
}

// GetOneByFields returns the single record matching all given filters.
// Returns ErrElementNotFound when no row matches.
func (r *Repository[T]) GetOneByFields(ctx context.Context, filters []models.Filter) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	builder := sq.Select(r.schema.SelectColumns...).From(r.schema.Table)

	conditions, joins, err := buildConditions(r.schema, filters)
	if err != nil {
		return zero, err
	}
	for _, join := range joins {
		builder = builder.Join(join)
	}
	if len(conditions) > 0 {
		builder = builder.Where(sq.And(conditions))
	}

	sqlQuery, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := r.mapper.Scan(r.db.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("table", r.schema.Table).Msg("no record matched unique lookup")
			return zero, fmt.Errorf("%w: table %q", ErrElementNotFound, r.schema.Table)
		}

		log.Err(err).Str("table", r.schema.Table).Msg("error executing unique lookup")
		return zero, r.db.classifyError(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return record, nil
}

// Create persists a new record inside its own transaction and returns the
// canonical database representation, including server-assigned columns.
// On any failure the transaction is rolled back and the error re-raised
// wrapped.
func (r *Repository[T]) Create(ctx context.Context, record T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	builder := sq.Insert(r.schema.Table).
		SetMap(r.mapper.Values(record)).
		Suffix("RETURNING " + strings.Join(r.schema.SelectColumns, ", "))

	sqlQuery, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.mutateReturning(ctx, sqlQuery, args)
	if err != nil {
		log.Err(err).Str("table", r.schema.Table).Msg("error creating record")
		return zero, err
	}

	log.Debug().Str("table", r.schema.Table).Msg("record created")
	return created, nil
}

// Update overwrites the mutable columns of an existing record inside its own
// transaction and returns the refreshed row. The schema's modified column,
// when declared, is stamped with now().
// Returns ErrElementNotFound when the record does not exist.
func (r *Repository[T]) Update(ctx context.Context, record T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	builder := sq.Update(r.schema.Table).SetMap(r.mapper.Values(record))
	if r.schema.ModifiedColumn != "" {
		builder = builder.Set(r.schema.ModifiedColumn, sq.Expr("now()"))
	}
	builder = builder.
		Where(sq.Eq{unqualified(r.schema.IDColumn()): r.mapper.ID(record)}).
		Suffix("RETURNING " + strings.Join(r.schema.SelectColumns, ", "))

	sqlQuery, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := r.mutateReturning(ctx, sqlQuery, args)
	if err != nil {
		log.Err(err).Str("table", r.schema.Table).Msg("error updating record")
		return zero, err
	}

	log.Debug().Str("table", r.schema.Table).Msg("record updated")
	return updated, nil
}

// Delete removes the record with the given primary key inside its own
// transaction. Returns ErrElementNotFound when no row was deleted.
func (r *Repository[T]) Delete(ctx context.Context, id any) error {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := sq.Delete(r.schema.Table).
		Where(sq.Eq{unqualified(r.schema.IDColumn()): id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, sqlQuery, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: table %q", ErrElementNotFound, r.schema.Table)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("table", r.schema.Table).Msg("error deleting record")
		return err
	}

	log.Debug().Str("table", r.schema.Table).Msg("record deleted")
	return nil
}

// SoftDelete marks the record with the given primary key as logically
// deleted by stamping the schema's deleted_on column, inside its own
// transaction, and returns the refreshed row.
//
// Returns ErrSoftDeleteUnsupported when the record type lacks the capability
// and ErrElementNotFound when the record does not exist.
func (r *Repository[T]) SoftDelete(ctx context.Context, id any) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	if !r.schema.SoftDeletable() {
		log.Error().Str("table", r.schema.Table).Msg("record type does not support soft delete")
		return zero, ErrSoftDeleteUnsupported
	}

	builder := sq.Update(r.schema.Table).Set(r.schema.DeletedOnColumn, sq.Expr("now()"))
	if r.schema.ModifiedColumn != "" {
		builder = builder.Set(r.schema.ModifiedColumn, sq.Expr("now()"))
	}
	builder = builder.
		Where(sq.Eq{unqualified(r.schema.IDColumn()): id}).
		Suffix("RETURNING " + strings.Join(r.schema.SelectColumns, ", "))

	sqlQuery, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := r.mutateReturning(ctx, sqlQuery, args)
	if err != nil {
		log.Err(err).Str("table", r.schema.Table).Msg("error soft-deleting record")
		return zero, err
	}

	log.Debug().Str("table", r.schema.Table).Msg("record soft-deleted")
	return deleted, nil
}

// mutateReturning runs a single RETURNING mutation inside a transaction,
// scanning the returned row through the mapper. A missing row surfaces as
// ErrElementNotFound; any other failure rolls the transaction back and is
// re-raised wrapped.
func (r *Repository[T]) mutateReturning(ctx context.Context, sqlQuery string, args []any) (T, error) {
	var record T

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		scanned, err := r.mapper.Scan(tx.QueryRowContext(ctx, sqlQuery, args...))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: table %q", ErrElementNotFound, r.schema.Table)
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		record = scanned
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return record, nil
}

// withTx runs fn inside a transaction and rolls back whenever fn or the
// commit fails. Every failure goes through the error classifier so transient
// driver errors carry ErrRetryableStoreFailure on the way out.
func (r *Repository[T]) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return r.db.classifyError(fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return r.db.classifyError(err)
	}

	if err := tx.Commit(); err != nil {
		return r.db.classifyError(fmt.Errorf("%w: %w", ErrCommittingTransaction, err))
	}

	return nil
}

// joinSet keeps join fragments unique while preserving first-seen order so
// the generated SQL stays deterministic.
type joinSet struct {
	ordered []string
	seen    map[string]struct{}
}

func newJoinSet() *joinSet {
	return &joinSet{seen: make(map[string]struct{})}
}

func (j *joinSet) add(joins ...string) {
	for _, join := range joins {
		if _, ok := j.seen[join]; ok {
			continue
		}
		j.seen[join] = struct{}{}
		j.ordered = append(j.ordered, join)
	}
}

// unqualified strips the table prefix from a qualified column name.
func unqualified(column string) string {
	if idx := strings.LastIndex(column, "."); idx >= 0 {
		return column[idx+1:]
	}

	return column
}
