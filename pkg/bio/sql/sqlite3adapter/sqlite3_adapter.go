/*
Package sqlite3adapter provides an implementation of the Adapter interface
in the sql package that works over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"
	"strings"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	biosql "github.com/pbanos/id3tree/pkg/bio/sql"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and returns an Adapter that
works on the file's database or an error if it fails to open it.
*/
func New(path string) (biosql.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) QuoteIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("identifier %q contains a NUL character", name)
	}
	return `"` + strings.Replace(name, `"`, `""`, -1) + `"`, nil
}

func (a *adapter) Placeholder(int) string {
	return "?"
}

func (a *adapter) TextColumnType() string {
	return "TEXT"
}

func (a *adapter) Close() error {
	return a.db.Close()
}
