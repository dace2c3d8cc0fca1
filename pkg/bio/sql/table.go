package sql

import (
	"bytes"
	"context"
	"database/sql"

	"github.com/pbanos/id3tree/pkg/bio"
	"github.com/pkg/errors"
)

/*
ReadTable takes a context, an Adapter, a table name and a slice of column
names and returns a bio.Table with the values of those columns for every
row of the database table. When no columns are given, all the columns of
the database table are read in their declared order.
*/
func ReadTable(ctx context.Context, a Adapter, table string, columns []string) (*bio.Table, error) {
	query, err := selectStatement(a, table, columns)
	if err != nil {
		return nil, err
	}
	rows, err := a.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "querying table %s", table)
	}
	defer rows.Close()
	names, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrapf(err, "reading columns of table %s", table)
	}
	result := &bio.Table{Columns: names}
	values := make([]sql.NullString, len(names))
	dest := make([]interface{}, len(names))
	for i := range values {
		dest[i] = &values[i]
	}
	for n := 1; rows.Next(); n++ {
		if err = rows.Scan(dest...); err != nil {
			return nil, errors.Wrapf(err, "scanning row %d of table %s", n, table)
		}
		row := make([]string, 0, len(names))
		for i, v := range values {
			if !v.Valid {
				return nil, errors.Errorf("row %d of table %s has no value for %s", n, table, names[i])
			}
			row = append(row, v.String)
		}
		result.Rows = append(result.Rows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "iterating table %s", table)
	}
	return result, nil
}

/*
WriteTable takes a context, an Adapter, a table name and a bio.Table and
inserts the rows of the bio.Table onto the database table in a single
transaction, creating the table first if it does not exist.
*/
func WriteTable(ctx context.Context, a Adapter, table string, t *bio.Table) error {
	createStmt, err := createStatement(a, table, t.Columns)
	if err != nil {
		return err
	}
	if _, err = a.DB().ExecContext(ctx, createStmt); err != nil {
		return errors.Wrapf(err, "ensuring table %s exists", table)
	}
	insertStmt, err := insertStatement(a, table, t.Columns)
	if err != nil {
		return err
	}
	tx, err := a.DB().BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	stmt, err := tx.PrepareContext(ctx, insertStmt)
	if err != nil {
		tx.Rollback()
		return errors.Wrapf(err, "preparing insert statement for table %s", table)
	}
	defer stmt.Close()
	args := make([]interface{}, len(t.Columns))
	for n, row := range t.Rows {
		if len(row) != len(t.Columns) {
			tx.Rollback()
			return errors.Errorf("row %d has %d values for %d columns", n+1, len(row), len(t.Columns))
		}
		for i, v := range row {
			args[i] = v
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "inserting row %d into table %s", n+1, table)
		}
	}
	return errors.Wrap(tx.Commit(), "committing transaction")
}

func selectStatement(a Adapter, table string, columns []string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("SELECT ")
	if len(columns) == 0 {
		buf.WriteString("*")
	}
	for i, c := range columns {
		qc, err := a.QuoteIdentifier(c)
		if err != nil {
			return "", err
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(qc)
	}
	qt, err := a.QuoteIdentifier(table)
	if err != nil {
		return "", err
	}
	buf.WriteString(" FROM ")
	buf.WriteString(qt)
	return buf.String(), nil
}

func createStatement(a Adapter, table string, columns []string) (string, error) {
	if len(columns) == 0 {
		return "", errors.Errorf("cannot create table %s without columns", table)
	}
	var buf bytes.Buffer
	qt, err := a.QuoteIdentifier(table)
	if err != nil {
		return "", err
	}
	buf.WriteString("CREATE TABLE IF NOT EXISTS ")
	buf.WriteString(qt)
	buf.WriteString(" (")
	for i, c := range columns {
		qc, err := a.QuoteIdentifier(c)
		if err != nil {
			return "", err
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(qc)
		buf.WriteString(" ")
		buf.WriteString(a.TextColumnType())
		buf.WriteString(" NOT NULL")
	}
	buf.WriteString(")")
	return buf.String(), nil
}

func insertStatement(a Adapter, table string, columns []string) (string, error) {
	var buf bytes.Buffer
	qt, err := a.QuoteIdentifier(table)
	if err != nil {
		return "", err
	}
	buf.WriteString("INSERT INTO ")
	buf.WriteString(qt)
	buf.WriteString(" (")
	for i, c := range columns {
		qc, err := a.QuoteIdentifier(c)
		if err != nil {
			return "", err
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(qc)
	}
	buf.WriteString(") VALUES (")
	for i := range columns {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(a.Placeholder(i + 1))
	}
	buf.WriteString(")")
	return buf.String(), nil
}
