// Package store defines the persistence boundary for the dataset.
// Implementations load the catalog served by the API and write it back when
// seeding a database. Request handling never touches a store directly.
package store
