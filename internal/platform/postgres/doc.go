// Package postgres stores the dataset in PostgreSQL.
//
// The schema is managed with goose migrations embedded in the binary. The
// DatasetStore seeds the tables from a catalog and loads them back into one at
// startup, so request handling stays in memory.
package postgres
