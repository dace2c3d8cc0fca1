package id3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreePredict(t *testing.T) {
	tree := weatherTree()
	tests := []struct {
		sample   map[string]string
		expected string
	}{
		{map[string]string{"outlook": "sunny", "humidity": "high"}, "no"},
		{map[string]string{"outlook": "sunny", "humidity": "normal"}, "yes"},
		{map[string]string{"outlook": "overcast"}, "yes"},
		{map[string]string{"outlook": "rainy", "windy": "true", "humidity": "high"}, "no"},
	}
	for _, tt := range tests {
		label, err := tree.Predict(tt.sample)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, label)
	}

	_, err := tree.Predict(map[string]string{"outlook": "foggy"})
	assert.Equal(t, ErrCannotPredictFromSample, err)
	_, err = tree.Predict(map[string]string{"outlook": "rainy"})
	assert.Equal(t, ErrCannotPredictFromSample, err)
}

func TestTreeString(t *testing.T) {
	expected := "[outlook]\n" +
		"|__outlook is sunny\n" +
		"|  [humidity]\n" +
		"|  |__humidity is high\n" +
		"|  |  { no }\n" +
		"|  |__humidity is normal\n" +
		"|     { yes }\n" +
		"|__outlook is overcast\n" +
		"|  { yes }\n" +
		"|__outlook is rainy\n" +
		"   [windy]\n" +
		"   |__windy is false\n" +
		"   |  { yes }\n" +
		"   |__windy is true\n" +
		"      { no }\n"
	assert.Equal(t, expected, weatherTree().String())
}

func TestToMap(t *testing.T) {
	expected := map[string]interface{}{
		"outlook": map[string]interface{}{
			"sunny":    map[string]interface{}{"humidity": map[string]interface{}{"high": "no", "normal": "yes"}},
			"overcast": "yes",
			"rainy":    map[string]interface{}{"windy": map[string]interface{}{"false": "yes", "true": "no"}},
		},
	}
	assert.Equal(t, expected, ToMap(weatherTree()))
	assert.Equal(t, "yes", ToMap(&Leaf{Label: "yes"}))
}

func TestTest(t *testing.T) {
	accuracy, failures, err := Test(weatherTree(), weather(), weatherNames, LastColumn)
	require.NoError(t, err)
	assert.Equal(t, 1.0, accuracy)
	assert.Equal(t, 0, failures)

	d := Dataset{
		{"sunny", "hot", "high", "false", "yes"},
		{"foggy", "hot", "high", "false", "no"},
	}
	accuracy, failures, err = Test(weatherTree(), d, weatherNames, LastColumn)
	require.NoError(t, err)
	assert.Equal(t, 0.0, accuracy)
	assert.Equal(t, 1, failures)

	_, _, err = Test(weatherTree(), Dataset{}, weatherNames, LastColumn)
	assert.IsType(t, &EmptyDatasetError{}, err)
}
