package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrElementNotFound is returned by unique-key lookups (GetByID,
	// GetOneByField, GetOneByFields) when zero rows match. List queries and
	// counts never return it; they yield an empty result instead.
	ErrElementNotFound = errors.New("element not found")

	// ErrUnsupportedOperator is returned when a filter carries an operator
	// outside the enumerated set.
	ErrUnsupportedOperator = errors.New("unsupported filter operator")

	// ErrUnknownField is returned when a filter field, order-by field or join
	// name cannot be resolved against the record schema. Dot-paths fail
	// closed on the first unknown segment.
	ErrUnknownField = errors.New("unknown field")

	// ErrSoftDeleteUnsupported is returned when a soft delete is requested
	// for a record type whose schema lacks the soft-delete capability
	// (a deleted_on timestamp column).
	ErrSoftDeleteUnsupported = errors.New("record type does not support soft delete")

	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrRetryableStoreFailure marks a failure the error classifier considers
	// transient (dropped connection, deadlock, serialization conflict). The
	// store never retries on its own; callers match with [errors.Is] and
	// decide whether to retry the whole operation.
	ErrRetryableStoreFailure = errors.New("retryable store failure")
)
