package id3

import (
	"fmt"
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

/*
Grower holds the configuration with which trees are grown.

TagColumn is the index of the label column on the records given to Grow,
LastColumn for the last one.

MinGain is the information gain an attribute must exceed to be used to
split a node. With the default of 0 any positive gain is enough.

Concurrency is the maximum number of candidate attributes whose gain is
evaluated at the same time for a node. Values below 2 evaluate them
sequentially. The grown tree does not depend on it.

Logger receives a debug entry for every node grown. It may be nil.
*/
type Grower struct {
	TagColumn   int
	MinGain     float64
	Concurrency int
	Logger      logrus.FieldLogger
}

/*
NewGrower returns a Grower for records labeled on their last column that
accepts any split with positive information gain and evaluates candidate
attributes sequentially.
*/
func NewGrower() *Grower {
	return &Grower{TagColumn: LastColumn}
}

/*
Grow takes a dataset and the names of its attribute columns and returns the
ID3 decision tree for it using a default Grower.
*/
func Grow(d Dataset, names []string) (Tree, error) {
	return NewGrower().Grow(d, names)
}

/*
Grow takes a dataset and the names of its attribute columns, in column
order skipping the tag column, and returns the ID3 decision tree that
predicts the label of its records.

A node becomes a leaf with the shared label when all its records share
it, and a leaf with the majority label when no attribute remains or none
brings a gain over MinGain. Otherwise it splits on the attribute with the
greatest gain, lowest column first on ties, and a subtree is grown for
every value of the attribute in the order values are first seen.

Grow returns an InvalidSchemaError when records differ in length or names
do not match the attribute columns, and an EmptyDatasetError when given no
records. Both carry the recursion depth and remaining attributes.
*/
func (g *Grower) Grow(d Dataset, names []string) (Tree, error) {
	return g.grow(d, append([]string(nil), names...), g.TagColumn, 0)
}

func (g *Grower) grow(d Dataset, names []string, tag, depth int) (Tree, error) {
	err := validateInput(d, names, tag, depth)
	if err != nil {
		return nil, err
	}
	log := g.logger().WithFields(logrus.Fields{"depth": depth, "records": len(d)})
	if d.Pure(tag) {
		label := d[0][resolveTag(tag, d.Width())]
		log.WithField("label", label).Debug("pure node")
		return &Leaf{Label: label}, nil
	}
	if len(names) == 0 {
		return g.majorityLeaf(d, tag, log.WithField("reason", "no attributes left"))
	}
	selection, err := bestAttribute(d, nil, tag, g.MinGain, g.Concurrency)
	if err != nil {
		return nil, err
	}
	if selection == nil {
		return g.majorityLeaf(d, tag, log.WithField("reason", "no productive split"))
	}
	var nameIndex int
	for i, c := range attributeColumns(d.Width(), tag) {
		if c == selection.Attribute {
			nameIndex = i
			break
		}
	}
	name := names[nameIndex]
	log.WithFields(logrus.Fields{
		"attribute": name,
		"gain":      selection.Gain,
		"entropy":   selection.Entropy,
	}).Debug("splitting node")
	subtreeNames := make([]string, 0, len(names)-1)
	subtreeNames = append(subtreeNames, names[:nameIndex]...)
	subtreeNames = append(subtreeNames, names[nameIndex+1:]...)
	partition, err := SplitByAttributes(d, []int{selection.Attribute}, tag)
	if err != nil {
		return nil, err
	}
	subtreeTag := shiftTag(tag, selection.Attribute)
	n := &Internal{Attribute: name, Branches: make([]Branch, 0, len(partition))}
	for _, group := range partition {
		st, err := g.grow(group.Dataset, append([]string(nil), subtreeNames...), subtreeTag, depth+1)
		if err != nil {
			return nil, err
		}
		n.Branches = append(n.Branches, Branch{Value: group.Key[0], Subtree: st})
	}
	return n, nil
}

func (g *Grower) majorityLeaf(d Dataset, tag int, log logrus.FieldLogger) (Tree, error) {
	label, err := MajorityLabel(d, tag)
	if err != nil {
		return nil, err
	}
	log.WithField("label", label).Debug("majority node")
	return &Leaf{Label: label}, nil
}

func (g *Grower) logger() logrus.FieldLogger {
	if g.Logger != nil {
		return g.Logger
	}
	return discardLogger
}

var discardLogger = &logrus.Logger{
	Out:       ioutil.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

func validateInput(d Dataset, names []string, tag, depth int) error {
	if len(d) == 0 {
		return &EmptyDatasetError{Op: "growing tree", Depth: depth, Attributes: names}
	}
	err := validateDataset(d, tag)
	switch err := err.(type) {
	case nil:
	case *InvalidSchemaError:
		err.Depth, err.Attributes = depth, names
		return err
	default:
		return err
	}
	if len(names) != d.Width()-1 {
		return &InvalidSchemaError{
			Reason:     fmt.Sprintf("%d attribute names for %d attribute columns", len(names), d.Width()-1),
			Depth:      depth,
			Attributes: names,
		}
	}
	return nil
}
