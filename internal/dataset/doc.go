// Package dataset provides the read-only lookup capability over the reference
// dataset. The HTTP layer depends only on the Facade interface; Catalog is the
// in-memory implementation, built either from the CSV files embedded in this
// package or from rows loaded out of Postgres at startup.
//
// A Catalog never changes after construction, so a single instance can be
// shared by every request goroutine without locking.
package dataset
