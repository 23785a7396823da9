// Package store implements the persistence layer of the application.
//
// Its centre is a generic, schema-driven repository: record types declare a
// [Schema] (table, column mapping, relationship edges, soft-delete
// capability) and get filtered list queries, counts, unique-key lookups and
// transactional mutations without writing SQL by hand. Queries are composed
// with squirrel and executed over database/sql with the pgx stdlib driver.
package store
