package bio

import (
	"bufio"
	"io"
	"strings"

	"github.com/pbanos/id3tree/pkg/id3"
	"github.com/pkg/errors"
)

/*
ValueRequester is an interface for objects that ask for the value of an
attribute of a sample being predicted, and that are notified when the
provided value is not one the tree knows about.
*/
type ValueRequester interface {
	RequestValueFor(attribute string, values []string) error
	RejectValueFor(attribute, value string, values []string) error
}

/*
PredictFromReader takes a tree, an io.Reader and a ValueRequester and walks
the tree asking the ValueRequester for the value of every attribute on the
path and reading it as a line from the reader. Values with no branch on the
tree are rejected and asked for again. It returns the predicted label, or an
error if the reader is exhausted before reaching a leaf.
*/
func PredictFromReader(t id3.Tree, r io.Reader, vr ValueRequester) (string, error) {
	scanner := bufio.NewScanner(r)
	for {
		n, ok := t.(*id3.Internal)
		if !ok {
			return t.Predict(nil)
		}
		values := make([]string, 0, len(n.Branches))
		for _, b := range n.Branches {
			values = append(values, b.Value)
		}
		if err := vr.RequestValueFor(n.Attribute, values); err != nil {
			return "", err
		}
		for {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return "", errors.Wrapf(err, "reading value for %s", n.Attribute)
				}
				return "", errors.Errorf("no value provided for %s", n.Attribute)
			}
			value := strings.TrimSpace(scanner.Text())
			st, ok := n.Child(value)
			if ok {
				t = st
				break
			}
			if err := vr.RejectValueFor(n.Attribute, value, values); err != nil {
				return "", err
			}
		}
	}
}
