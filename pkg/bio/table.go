/*
Package bio reads and writes the data around the id3 package: tables of
training data, the metadata describing which of their columns to use, and
grown trees.
*/
package bio

import (
	"fmt"

	"github.com/pbanos/id3tree/pkg/id3"
)

/*
Table is a named-column table of string values, as read from a CSV file,
a database table or a document collection.
*/
type Table struct {
	Columns []string
	Rows    [][]string
}

/*
Input is the data needed to grow a tree: a dataset, the names of its
attribute columns and its tag column.
*/
type Input struct {
	Dataset   id3.Dataset
	Names     []string
	TagColumn int
}

/*
Project takes a Metadata and returns the Input made of the metadata label
column and attribute columns of the table. When the metadata lists no
attributes every column other than the label is used. Columns keep the
order they have on the table.

An error is returned if the label or an attribute is not a column of the
table, or if a row does not have a value for every column.
*/
func (t *Table) Project(md *Metadata) (*Input, error) {
	positions := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		positions[c] = i
	}
	if _, ok := positions[md.Label]; !ok {
		return nil, fmt.Errorf("label %q is not a column of the table", md.Label)
	}
	selected := make(map[string]bool)
	if len(md.Attributes) == 0 {
		for _, c := range t.Columns {
			selected[c] = true
		}
	}
	for _, a := range md.Attributes {
		if _, ok := positions[a]; !ok {
			return nil, fmt.Errorf("attribute %q is not a column of the table", a)
		}
		if a == md.Label {
			return nil, fmt.Errorf("attribute %q is also the label", a)
		}
		selected[a] = true
	}
	selected[md.Label] = true
	var columns []int
	input := &Input{TagColumn: id3.LastColumn}
	for i, c := range t.Columns {
		if !selected[c] {
			continue
		}
		if c == md.Label {
			input.TagColumn = len(columns)
		} else {
			input.Names = append(input.Names, c)
		}
		columns = append(columns, i)
	}
	if input.TagColumn == len(columns)-1 {
		input.TagColumn = id3.LastColumn
	}
	input.Dataset = make(id3.Dataset, 0, len(t.Rows))
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("row %d has %d values for %d columns", i+1, len(row), len(t.Columns))
		}
		r := make(id3.Record, 0, len(columns))
		for _, c := range columns {
			r = append(r, row[c])
		}
		input.Dataset = append(input.Dataset, r)
	}
	return input, nil
}

// Select returns a table with only the given columns of t, in the given order.
func (t *Table) Select(columns []string) (*Table, error) {
	if len(columns) == 0 {
		return t, nil
	}
	positions := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		positions[c] = i
	}
	indexes := make([]int, 0, len(columns))
	for _, c := range columns {
		i, ok := positions[c]
		if !ok {
			return nil, fmt.Errorf("%q is not a column of the table", c)
		}
		indexes = append(indexes, i)
	}
	result := &Table{Columns: columns, Rows: make([][]string, 0, len(t.Rows))}
	for n, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("row %d has %d values for %d columns", n+1, len(row), len(t.Columns))
		}
		selected := make([]string, 0, len(indexes))
		for _, i := range indexes {
			selected = append(selected, row[i])
		}
		result.Rows = append(result.Rows, selected)
	}
	return result, nil
}
