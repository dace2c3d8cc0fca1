package id3

import (
	"fmt"
	"strings"
)

/*
EmptyDatasetError is returned when an operation that needs at least one
record (entropy, majority vote, growing a tree) is given an empty dataset.

Depth is the recursion depth at which the grower found the empty dataset
(0 for the root or for direct calls) and Attributes the attribute names still
available at that point.
*/
type EmptyDatasetError struct {
	Op         string
	Depth      int
	Attributes []string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("%s: empty dataset%s", e.Op, errorContext(e.Depth, e.Attributes))
}

/*
InvalidSchemaError is returned when the records of a dataset do not share a
length, when the attribute names do not match the attribute columns or when
a column index is not valid for the dataset.
*/
type InvalidSchemaError struct {
	Reason     string
	Depth      int
	Attributes []string
}

func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("invalid schema: %s%s", e.Reason, errorContext(e.Depth, e.Attributes))
}

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictFromSample is the error returned by the Predict method of a tree
when the sample takes a value the tree has no branch for, or does not define
a value for an attribute the tree asks about.
*/
const ErrCannotPredictFromSample = PredictionError("no prediction available for this kind of sample")

func (pe PredictionError) Error() string {
	return string(pe)
}

func errorContext(depth int, attributes []string) string {
	if depth == 0 && attributes == nil {
		return ""
	}
	return fmt.Sprintf(" (depth %d, attributes [%s])", depth, strings.Join(attributes, ", "))
}
