package id3

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowWeather(t *testing.T) {
	tree, err := Grow(weather(), weatherNames)
	require.NoError(t, err)
	assert.Equal(t, weatherTree(), tree)
	assert.Equal(t, 2, tree.Depth())
	assert.Equal(t, 5, tree.Leaves())
}

func TestGrowDoesNotModifyNames(t *testing.T) {
	names := append([]string(nil), weatherNames...)
	_, err := Grow(weather(), names)
	require.NoError(t, err)
	assert.Equal(t, weatherNames, names)
}

func TestGrowWithTagColumn(t *testing.T) {
	var d Dataset
	for _, r := range weather() {
		d = append(d, append(Record{r[4]}, r[:4]...))
	}
	g := NewGrower()
	g.TagColumn = 0
	tree, err := g.Grow(d, weatherNames)
	require.NoError(t, err)
	assert.Equal(t, weatherTree(), tree)

	// label in the middle of the records
	d = nil
	for _, r := range weather() {
		d = append(d, Record{r[0], r[1], r[4], r[2], r[3]})
	}
	g.TagColumn = 2
	tree, err = g.Grow(d, weatherNames)
	require.NoError(t, err)
	assert.Equal(t, weatherTree(), tree)
}

func TestGrowPureDataset(t *testing.T) {
	d := Dataset{
		{"sunny", "yes"},
		{"rainy", "yes"},
		{"overcast", "yes"},
	}
	tree, err := Grow(d, []string{"outlook"})
	require.NoError(t, err)
	assert.Equal(t, &Leaf{Label: "yes"}, tree)
}

func TestGrowExhaustedDataset(t *testing.T) {
	d := Dataset{{"yes"}, {"no"}, {"yes"}, {"yes"}}
	tree, err := Grow(d, nil)
	require.NoError(t, err)
	assert.Equal(t, &Leaf{Label: "yes"}, tree)
}

func TestGrowWithoutProductiveSplit(t *testing.T) {
	d := Dataset{
		{"a", "no"},
		{"a", "yes"},
		{"a", "yes"},
	}
	tree, err := Grow(d, []string{"constant"})
	require.NoError(t, err)
	assert.Equal(t, &Leaf{Label: "yes"}, tree)
}

func TestGrowWithMinGain(t *testing.T) {
	g := NewGrower()
	g.MinGain = 0.3
	tree, err := g.Grow(weather(), weatherNames)
	require.NoError(t, err)
	assert.Equal(t, &Leaf{Label: "yes"}, tree)
}

func TestGrowWithConcurrency(t *testing.T) {
	g := NewGrower()
	g.Concurrency = 3
	tree, err := g.Grow(weather(), weatherNames)
	require.NoError(t, err)
	assert.Equal(t, weatherTree(), tree)
}

func TestGrowLogsNodes(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.Out = &buf
	logger.Level = logrus.DebugLevel
	g := NewGrower()
	g.Logger = logger
	_, err := g.Grow(weather(), weatherNames)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "splitting node")
	assert.Contains(t, buf.String(), "attribute=outlook")
	assert.Contains(t, buf.String(), "pure node")
}

func TestGrowErrors(t *testing.T) {
	_, err := Grow(Dataset{}, nil)
	var empty *EmptyDatasetError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, 0, empty.Depth)

	_, err = Grow(Dataset{{"a", "yes"}, {"b", "c", "no"}}, []string{"x"})
	var invalid *InvalidSchemaError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []string{"x"}, invalid.Attributes)

	_, err = Grow(weather(), weatherNames[:3])
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, err.Error(), "3 attribute names for 4 attribute columns")

	g := NewGrower()
	g.TagColumn = 5
	_, err = g.Grow(weather(), weatherNames)
	assert.IsType(t, &InvalidSchemaError{}, err)
}

func TestGrowProperties(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		attributes := r.Intn(6)
		d, names := randomDataset(r, attributes)
		tree, err := Grow(d, names)
		require.NoError(t, err)
		assert.True(t, tree.Depth() <= attributes, "depth %d over %d attributes", tree.Depth(), attributes)

		again, err := Grow(d, names)
		require.NoError(t, err)
		assert.Equal(t, tree, again)

		accuracy, failures, err := Test(tree, d, names, LastColumn)
		require.NoError(t, err)
		assert.Equal(t, 0, failures)
		assert.True(t, accuracy > 0)
	}
}
