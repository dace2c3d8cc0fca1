package id3

/*
Group is a part of a partitioned dataset: the tuple of values its records
had on the grouping columns and the records themselves, without those
columns.
*/
type Group struct {
	Key     []string
	Dataset Dataset
}

/*
Partition is the ordered result of splitting a dataset by one or more
columns. Groups appear in the order their key is first seen on the
original dataset.
*/
type Partition []Group

/*
SplitByAttributes takes a dataset, a slice of column indexes and the tag
column and returns the partition of the dataset by the tuple of values on
those columns.

The grouping columns are removed from the records of every group, all other
columns (the tag column included) keep their relative order. The given
dataset is not modified and every record ends up in exactly one group.
An InvalidSchemaError is returned when a column is out of range or is the
tag column.
*/
func SplitByAttributes(d Dataset, indices []int, tag int) (Partition, error) {
	if len(d) == 0 {
		return Partition{}, nil
	}
	if err := validateDataset(d, tag); err != nil {
		return nil, err
	}
	width := d.Width()
	if err := validateColumns(indices, width, tag); err != nil {
		return nil, err
	}
	removed := make([]bool, width)
	for _, c := range indices {
		removed[c] = true
	}
	var result Partition
	positions := make(map[string]int)
	for _, r := range d {
		k := tupleKey(r, indices)
		i, ok := positions[k]
		if !ok {
			key := make([]string, 0, len(indices))
			for _, c := range indices {
				key = append(key, r[c])
			}
			i = len(result)
			positions[k] = i
			result = append(result, Group{Key: key})
		}
		reduced := make(Record, 0, width-len(indices))
		for c, v := range r {
			if !removed[c] {
				reduced = append(reduced, v)
			}
		}
		result[i].Dataset = append(result[i].Dataset, reduced)
	}
	return result, nil
}

// Len returns the number of records in all groups of the partition.
func (p Partition) Len() int {
	var n int
	for _, g := range p {
		n += len(g.Dataset)
	}
	return n
}
