//go:build integration

// Package testdb provides helpers for tests that need a real PostgreSQL
// database.
//
// Tests using it are compiled only with the integration build tag and skip
// themselves when no database URL is configured:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.OpenTestDatabase(t)
//	    testdb.SetupTestDatabaseSchema(t, db)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        // changes made through tx are rolled back afterwards
//	    })
//	}
package testdb
