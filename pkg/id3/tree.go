package id3

import (
	"fmt"
	"strings"
)

/*
Tree represents a decision tree or subtree thereof. It is either a *Leaf
holding the predicted label or an *Internal node that splits on an attribute.

Its Predict method takes a sample, a map of attribute names to values, and
returns the label the tree predicts for it.

Its Depth method returns the number of Internal nodes on the longest path
from the tree root to a leaf.
*/
type Tree interface {
	Predict(sample map[string]string) (string, error)
	Depth() int
	Leaves() int
	String() string
	tree()
}

/*
Leaf is a terminal tree node with a single predicted label.
*/
type Leaf struct {
	Label string
}

/*
Internal is a tree node that asks for the value of an attribute and
continues on the branch for that value. Branches keep the order in which
their values were first seen on the training data.
*/
type Internal struct {
	Attribute string
	Branches  []Branch
}

// Branch links an attribute value to the subtree for samples taking it.
type Branch struct {
	Value   string
	Subtree Tree
}

func (*Leaf) tree()     {}
func (*Internal) tree() {}

func (l *Leaf) Predict(map[string]string) (string, error) {
	return l.Label, nil
}

func (l *Leaf) Depth() int {
	return 0
}

func (l *Leaf) Leaves() int {
	return 1
}

func (l *Leaf) String() string {
	return fmt.Sprintf("{ %s }\n", l.Label)
}

/*
Predict takes a sample and follows the branch for the sample's value on the
node attribute. It returns ErrCannotPredictFromSample when the sample does
not define the attribute or takes a value no branch exists for.
*/
func (n *Internal) Predict(sample map[string]string) (string, error) {
	v, ok := sample[n.Attribute]
	if !ok {
		return "", ErrCannotPredictFromSample
	}
	st, ok := n.Child(v)
	if !ok {
		return "", ErrCannotPredictFromSample
	}
	return st.Predict(sample)
}

// Child returns the subtree for the given attribute value, if any.
func (n *Internal) Child(value string) (Tree, bool) {
	for _, b := range n.Branches {
		if b.Value == value {
			return b.Subtree, true
		}
	}
	return nil, false
}

func (n *Internal) Depth() int {
	var depth int
	for _, b := range n.Branches {
		if d := b.Subtree.Depth(); d > depth {
			depth = d
		}
	}
	return depth + 1
}

func (n *Internal) Leaves() int {
	var leaves int
	for _, b := range n.Branches {
		leaves += b.Subtree.Leaves()
	}
	return leaves
}

func (n *Internal) String() string {
	result := fmt.Sprintf("[%s]\n", n.Attribute)
	for i, b := range n.Branches {
		subtree := fmt.Sprintf("%s is %s\n%s", n.Attribute, b.Value, b.Subtree.String())
		for j, line := range strings.Split(subtree, "\n") {
			if len(line) == 0 {
				continue
			}
			switch {
			case j == 0:
				result = fmt.Sprintf("%s|__%s\n", result, line)
			case i == len(n.Branches)-1:
				result = fmt.Sprintf("%s   %s\n", result, line)
			default:
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}

/*
ToMap returns the tree as nested maps: a leaf becomes its label and an
internal node a map with its attribute as only key, whose value maps every
branch value to the nested representation of its subtree.
*/
func ToMap(t Tree) interface{} {
	switch t := t.(type) {
	case *Leaf:
		return t.Label
	case *Internal:
		branches := make(map[string]interface{}, len(t.Branches))
		for _, b := range t.Branches {
			branches[b.Value] = ToMap(b.Subtree)
		}
		return map[string]interface{}{t.Attribute: branches}
	}
	return nil
}

/*
Sample takes a record, the attribute names aligned with its attribute
columns and its tag column and returns the record as a sample for Predict.
*/
func Sample(r Record, names []string, tag int) map[string]string {
	sample := make(map[string]string, len(names))
	for i, c := range attributeColumns(len(r), tag) {
		if i < len(names) {
			sample[names[i]] = r[c]
		}
	}
	return sample
}

/*
Test takes a tree, a dataset, its attribute names and its tag column and
returns three values:
  - the prediction success rate of the tree over the dataset
  - the number of records the tree could not predict because of
    ErrCannotPredictFromSample errors
  - an InvalidSchemaError or EmptyDatasetError if the dataset cannot be
    tested against, in which case the other values are 0.0 and 0
*/
func Test(t Tree, d Dataset, names []string, tag int) (float64, int, error) {
	if err := validateInput(d, names, tag, 0); err != nil {
		return 0.0, 0, err
	}
	tag = resolveTag(tag, d.Width())
	var hits float64
	var failures int
	for _, r := range d {
		label, err := t.Predict(Sample(r, names, tag))
		if err != nil {
			if err != ErrCannotPredictFromSample {
				return 0.0, 0, err
			}
			failures++
			continue
		}
		if label == r[tag] {
			hits += 1.0
		}
	}
	return hits / float64(len(d)), failures, nil
}
