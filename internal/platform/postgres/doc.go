// Package postgres provides PostgreSQL-backed implementations of the
// persistence interfaces defined in internal/store. It handles query
// execution, data mapping between domain entities and rows, and the
// translation of PostgreSQL errors into store sentinel errors.
package postgres
