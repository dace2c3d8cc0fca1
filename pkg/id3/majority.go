package id3

/*
MajorityLabel returns the most frequent value on the tag column of the
dataset. Among labels sharing the highest count, the first one seen wins.
It returns an EmptyDatasetError for an empty dataset.
*/
func MajorityLabel(d Dataset, tag int) (string, error) {
	if len(d) == 0 {
		return "", &EmptyDatasetError{Op: "voting majority label"}
	}
	if err := validateDataset(d, tag); err != nil {
		return "", err
	}
	tag = resolveTag(tag, d.Width())
	lc := &labelCounts{counts: make(map[string]int)}
	for _, r := range d {
		lc.add(r[tag])
	}
	var label string
	best := -1
	for _, l := range lc.order {
		if c := lc.counts[l]; c > best {
			label = l
			best = c
		}
	}
	return label, nil
}
