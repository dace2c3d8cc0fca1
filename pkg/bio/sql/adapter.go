/*
Package sql reads tables of training data from SQL databases and writes
them onto them. Database specifics are provided by an Adapter, such as the
ones in the sqlite3adapter and pgadapter packages.

Every column is read and written as text, and NULL values are rejected.
*/
package sql

import "database/sql"

/*
Adapter is an interface providing the database-specific
pieces needed to read and write tables.
*/
type Adapter interface {
	// DB returns the database handle the adapter works on.
	DB() *sql.DB
	// QuoteIdentifier returns the given table or column name
	// quoted to be used in a statement, or an error if the name
	// cannot be used.
	QuoteIdentifier(string) (string, error)
	// Placeholder returns the parameter placeholder for the
	// i-th (starting at 1) argument of a statement.
	Placeholder(i int) string
	// TextColumnType returns the column type used to store values.
	TextColumnType() string
	// Close releases the database handle.
	Close() error
}
