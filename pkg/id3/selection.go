package id3

import "sync"

// gainTolerance absorbs floating point noise when comparing gains, so that
// mathematically equal gains tie and are resolved by column index.
const gainTolerance = 1e-12

/*
Selection is the result of choosing the attribute to split a dataset on:
the column index of the attribute, the information gain its split brings
and the entropy of the dataset once split.
*/
type Selection struct {
	Attribute int
	Gain      float64
	Entropy   float64
}

type candidate struct {
	column  int
	entropy float64
}

/*
BestAttribute takes a dataset, the column indexes already used to condition
it, the tag column and a minimum gain and returns the Selection of the
attribute column with the greatest information gain:

	gain(c) = Entropy(d, used) - Entropy(d, used ∪ {c})

Candidates are evaluated in ascending column order and one only replaces
the current best when its gain is strictly greater, so on ties the lowest
column wins. A candidate whose gain does not exceed minGain is never
selected. When no candidate qualifies the result is nil: there is no
productive split for the dataset.
*/
func BestAttribute(d Dataset, used []int, tag int, minGain float64) (*Selection, error) {
	return bestAttribute(d, used, tag, minGain, 1)
}

func bestAttribute(d Dataset, used []int, tag int, minGain float64, concurrency int) (*Selection, error) {
	if len(d) == 0 {
		return nil, &EmptyDatasetError{Op: "selecting attribute"}
	}
	if err := validateDataset(d, tag); err != nil {
		return nil, err
	}
	width := d.Width()
	if err := validateColumns(used, width, tag); err != nil {
		return nil, err
	}
	tag = resolveTag(tag, width)
	isUsed := make(map[int]bool, len(used))
	for _, c := range used {
		isUsed[c] = true
	}
	var candidates []*candidate
	for _, c := range attributeColumns(width, tag) {
		if !isUsed[c] {
			candidates = append(candidates, &candidate{column: c})
		}
	}
	base := entropy(d, used, tag)
	scoreCandidates(d, used, tag, candidates, concurrency)
	var result *Selection
	for _, c := range candidates {
		gain := base - c.entropy
		if gain <= minGain+gainTolerance {
			continue
		}
		if result == nil || gain > result.Gain+gainTolerance {
			result = &Selection{Attribute: c.column, Gain: gain, Entropy: c.entropy}
		}
	}
	return result, nil
}

// scoreCandidates fills in the conditional entropy of every candidate,
// running up to concurrency evaluations at a time.
func scoreCandidates(d Dataset, used []int, tag int, candidates []*candidate, concurrency int) {
	conditioning := func(c int) []int {
		return append(append(make([]int, 0, len(used)+1), used...), c)
	}
	if concurrency <= 1 || len(candidates) <= 1 {
		for _, c := range candidates {
			c.entropy = entropy(d, conditioning(c.column), tag)
		}
		return
	}
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	wg.Add(len(candidates))
	for _, c := range candidates {
		sem <- struct{}{}
		go func(c *candidate) {
			defer func() {
				<-sem
				wg.Done()
			}()
			c.entropy = entropy(d, conditioning(c.column), tag)
		}(c)
	}
	wg.Wait()
}
