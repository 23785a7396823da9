// Package pagination implements offset/limit page arithmetic and hyperlink
// generation for list endpoints.
//
// All functions are pure: results depend only on their inputs, nothing is
// cached and no shared state exists, so the package is safe for concurrent
// use without locking.
package pagination
