// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces. Database errors are translated into store errors
// through MapError so callers never see driver-level error types.
package postgres
