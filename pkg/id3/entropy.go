package id3

import "math"

type labelCounts struct {
	count  int
	order  []string
	counts map[string]int
}

/*
Entropy takes a dataset, a slice of conditioning column indexes and the tag
column and returns the Shannon entropy (in bits) of the dataset labels
conditioned on the given columns.

With no conditioning columns the result is the entropy of the labels:
-Σ p(label) x log2(p(label)). Otherwise records are grouped by their tuple of
values on the conditioning columns and the result is the sum of the label
entropy of every group weighted by its share of records.

Groups and labels are visited in the order they are first seen, so results
are reproducible to the last bit. An EmptyDatasetError is returned for an
empty dataset and an InvalidSchemaError when a conditioning column is out of
range or is the tag column.
*/
func Entropy(d Dataset, conditioning []int, tag int) (float64, error) {
	if len(d) == 0 {
		return 0, &EmptyDatasetError{Op: "computing entropy"}
	}
	if err := validateDataset(d, tag); err != nil {
		return 0, err
	}
	if err := validateColumns(conditioning, d.Width(), tag); err != nil {
		return 0, err
	}
	return entropy(d, conditioning, resolveTag(tag, d.Width())), nil
}

// entropy expects a validated, non-empty dataset and a resolved tag.
func entropy(d Dataset, conditioning []int, tag int) float64 {
	var groupOrder []string
	groups := make(map[string]*labelCounts)
	for _, r := range d {
		key := tupleKey(r, conditioning)
		g, ok := groups[key]
		if !ok {
			g = &labelCounts{counts: make(map[string]int)}
			groups[key] = g
			groupOrder = append(groupOrder, key)
		}
		g.add(r[tag])
	}
	var result float64
	total := float64(len(d))
	for _, key := range groupOrder {
		g := groups[key]
		result += g.entropy() * float64(g.count) / total
	}
	return result
}

func (lc *labelCounts) add(label string) {
	if _, ok := lc.counts[label]; !ok {
		lc.order = append(lc.order, label)
	}
	lc.counts[label]++
	lc.count++
}

func (lc *labelCounts) entropy() float64 {
	var result float64
	for _, label := range lc.order {
		p := float64(lc.counts[label]) / float64(lc.count)
		if p > 0 {
			result -= p * math.Log2(p)
		}
	}
	return result
}
