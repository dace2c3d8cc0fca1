package id3

import "math/rand"

var weatherNames = []string{"outlook", "temperature", "humidity", "windy"}

func weather() Dataset {
	return Dataset{
		{"sunny", "hot", "high", "false", "no"},
		{"sunny", "hot", "high", "true", "no"},
		{"overcast", "hot", "high", "false", "yes"},
		{"rainy", "mild", "high", "false", "yes"},
		{"rainy", "cool", "normal", "false", "yes"},
		{"rainy", "cool", "normal", "true", "no"},
		{"overcast", "cool", "normal", "true", "yes"},
		{"sunny", "mild", "high", "false", "no"},
		{"sunny", "cool", "normal", "false", "yes"},
		{"rainy", "mild", "normal", "false", "yes"},
		{"sunny", "mild", "normal", "true", "yes"},
		{"overcast", "mild", "high", "true", "yes"},
		{"overcast", "hot", "normal", "false", "yes"},
		{"rainy", "mild", "high", "true", "no"},
	}
}

func weatherTree() Tree {
	return &Internal{
		Attribute: "outlook",
		Branches: []Branch{
			{Value: "sunny", Subtree: &Internal{
				Attribute: "humidity",
				Branches: []Branch{
					{Value: "high", Subtree: &Leaf{Label: "no"}},
					{Value: "normal", Subtree: &Leaf{Label: "yes"}},
				},
			}},
			{Value: "overcast", Subtree: &Leaf{Label: "yes"}},
			{Value: "rainy", Subtree: &Internal{
				Attribute: "windy",
				Branches: []Branch{
					{Value: "false", Subtree: &Leaf{Label: "yes"}},
					{Value: "true", Subtree: &Leaf{Label: "no"}},
				},
			}},
		},
	}
}

// randomDataset returns a dataset of discrete values with the given number
// of attribute columns and the label on the last column.
func randomDataset(r *rand.Rand, attributes int) (Dataset, []string) {
	values := []string{"a", "b", "c"}
	labels := []string{"yes", "no", "maybe"}
	records := 1 + r.Intn(40)
	cardinality := 1 + r.Intn(len(values))
	labelCardinality := 1 + r.Intn(len(labels))
	d := make(Dataset, 0, records)
	for i := 0; i < records; i++ {
		rec := make(Record, 0, attributes+1)
		for a := 0; a < attributes; a++ {
			rec = append(rec, values[r.Intn(cardinality)])
		}
		rec = append(rec, labels[r.Intn(labelCardinality)])
		d = append(d, rec)
	}
	names := make([]string, 0, attributes)
	for a := 0; a < attributes; a++ {
		names = append(names, string(rune('A'+a)))
	}
	return d, names
}
