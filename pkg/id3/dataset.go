package id3

import "fmt"

/*
LastColumn can be used as tag column to designate the last position of
the records, whatever their length. It is the default tag column.
*/
const LastColumn = -1

/*
Record is a sequence of discrete attribute values plus one label value
placed at the tag column.
*/
type Record []string

/*
Dataset is an ordered collection of records of equal length.

Operations on a Dataset never modify it: partitioning produces new,
shorter records.
*/
type Dataset []Record

// Width returns the length of the dataset records, 0 for an empty dataset.
func (d Dataset) Width() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0])
}

/*
Labels returns the distinct values found on the given tag column of the
dataset in the order they are first seen.
*/
func (d Dataset) Labels(tag int) []string {
	tag = resolveTag(tag, d.Width())
	var labels []string
	seen := make(map[string]bool)
	for _, r := range d {
		if !seen[r[tag]] {
			seen[r[tag]] = true
			labels = append(labels, r[tag])
		}
	}
	return labels
}

/*
Pure returns whether every record in the dataset shares the same label. An
empty dataset is not pure.
*/
func (d Dataset) Pure(tag int) bool {
	if len(d) == 0 {
		return false
	}
	tag = resolveTag(tag, d.Width())
	for _, r := range d[1:] {
		if r[tag] != d[0][tag] {
			return false
		}
	}
	return true
}

/*
AttributeColumns returns the indexes of the columns of the dataset that are
not the tag column, in ascending order. Attribute names are aligned with
this slice.
*/
func (d Dataset) AttributeColumns(tag int) []int {
	return attributeColumns(d.Width(), tag)
}

func attributeColumns(width, tag int) []int {
	tag = resolveTag(tag, width)
	columns := make([]int, 0, width)
	for c := 0; c < width; c++ {
		if c != tag {
			columns = append(columns, c)
		}
	}
	return columns
}

func resolveTag(tag, width int) int {
	if tag < 0 {
		return width - 1
	}
	return tag
}

// shiftTag returns the tag column of records from which the given column
// has been removed.
func shiftTag(tag, removed int) int {
	if tag < 0 || removed > tag {
		return tag
	}
	return tag - 1
}

func validateDataset(d Dataset, tag int) error {
	if len(d) == 0 {
		return &EmptyDatasetError{Op: "validating dataset"}
	}
	width := len(d[0])
	if width < 1 {
		return &InvalidSchemaError{Reason: "records have no label column"}
	}
	for i, r := range d[1:] {
		if len(r) != width {
			return &InvalidSchemaError{Reason: fmt.Sprintf("record %d has %d values, record 0 has %d", i+1, len(r), width)}
		}
	}
	if tag >= width {
		return &InvalidSchemaError{Reason: fmt.Sprintf("tag column %d out of range for records of %d values", tag, width)}
	}
	return nil
}

func validateColumns(columns []int, width, tag int) error {
	tag = resolveTag(tag, width)
	for _, c := range columns {
		if c < 0 || c >= width {
			return &InvalidSchemaError{Reason: fmt.Sprintf("column %d out of range for records of %d values", c, width)}
		}
		if c == tag {
			return &InvalidSchemaError{Reason: fmt.Sprintf("column %d is the tag column", c)}
		}
	}
	return nil
}

// tupleKey builds an unambiguous map key for a tuple of values.
func tupleKey(r Record, columns []int) string {
	var key []byte
	for _, c := range columns {
		key = append(key, fmt.Sprintf("%d:", len(r[c]))...)
		key = append(key, r[c]...)
	}
	return string(key)
}
