package bio

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
)

/*
ReadCSVTable takes an io.Reader for a CSV stream and returns the Table
read from it or an error.

The header or first row of the CSV content is expected to consist of the
names of the columns. Every other row must have a value for each column.
*/
func ReadCSVTable(reader io.Reader) (*Table, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	t := &Table{Columns: header}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading line %d", l)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

/*
ReadCSVTableFromFilePath takes a filepath string, opens the file it points
to and uses ReadCSVTable to return the Table in it. STDIN is read when the
filepath is empty.
*/
func ReadCSVTableFromFilePath(filepath string) (*Table, error) {
	if filepath == "" {
		t, err := ReadCSVTable(os.Stdin)
		return t, errors.Wrap(err, "parsing CSV from STDIN")
	}
	f, err := os.Open(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "opening CSV file")
	}
	defer f.Close()
	t, err := ReadCSVTable(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing CSV file %s", filepath)
	}
	return t, nil
}

/*
WriteCSVTable takes an io.Writer and a Table and writes the table onto it
in CSV format, its columns as header.
*/
func WriteCSVTable(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return errors.Wrap(err, "writing header")
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return errors.Wrap(err, "writing rows")
	}
	return nil
}

/*
WriteCSVTableToFilePath creates a file on the given filepath (or uses
STDOUT if empty) and writes the table onto it with WriteCSVTable.
*/
func WriteCSVTableToFilePath(filepath string, t *Table) error {
	if filepath == "" {
		return WriteCSVTable(os.Stdout, t)
	}
	f, err := os.Create(filepath)
	if err != nil {
		return errors.Wrap(err, "creating CSV file")
	}
	defer f.Close()
	return WriteCSVTable(f, t)
}
