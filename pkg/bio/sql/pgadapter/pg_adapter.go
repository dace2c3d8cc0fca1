/*
Package pgadapter provides an implementation of the Adapter interface in
the sql package that works over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	biosql "github.com/pbanos/id3tree/pkg/bio/sql"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns an Adapter
that works on the database or an error if the URL cannot be used.
*/
func New(url string) (biosql.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

// QuoteIdentifier quotes the name with pq.QuoteIdentifier.
func (a *adapter) QuoteIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	return pq.QuoteIdentifier(name), nil
}

func (a *adapter) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}

func (a *adapter) TextColumnType() string {
	return "TEXT"
}

func (a *adapter) Close() error {
	return a.db.Close()
}
