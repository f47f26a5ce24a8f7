package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timepp/uu/value"
)

func rows() *value.Array {
	return value.NewArray(
		value.NewObject().
			Set("id", 1).
			Set("name", "Straße").
			Set("address", value.NewObject().Set("city", "Berlin").Set("zip", "10115")),
		value.NewObject().
			Set("id", 22).
			Set("active", true).
			Set("address", value.NewObject().Set("city", "Paris")),
		"scalar row",
	)
}

func TestFuzzyFind(t *testing.T) {
	data := rows()

	tests := []struct {
		name          string
		keyword       string
		caseSensitive bool
		want          []string
		found         bool
	}{
		{"substring in string", "erl", true, []string{"0", "address", "city"}, true},
		{"numbers match exactly", "22", true, []string{"1", "id"}, true},
		{"numbers do not match by substring", "2", true, nil, false},
		{"case sensitive miss", "paris", true, nil, false},
		{"case insensitive hit", "paris", false, []string{"1", "address", "city"}, true},
		{"unicode folding", "STRASSE", false, []string{"0", "name"}, true},
		{"booleans by text", "tru", true, []string{"1", "active"}, true},
		{"scalar element", "row", true, []string{"2"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FuzzyFind(data, tt.keyword, tt.caseSensitive)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFuzzyFind_IgnoresNullAndLoops(t *testing.T) {
	o := value.NewObject().Set("n", nil)
	o.Set("self", o)
	_, ok := FuzzyFind(o, "null", true)
	assert.False(t, ok)
}

func TestDataProperties(t *testing.T) {
	items := rows().Items
	items = append(items, value.NewArray("x", "y"))
	assert.Equal(t, []string{"id", "name", "address", "active", "0", "1"}, DataProperties(items))
	assert.Empty(t, DataProperties(nil))
}

func TestFlattenedProperties(t *testing.T) {
	assert.Equal(t,
		[]string{"id", "name", "address.city", "address.zip", "active"},
		FlattenedProperties(rows()))
	assert.Nil(t, FlattenedProperties(nil))

	// Each flattened path resolves against every row that has it.
	for _, p := range FlattenedProperties(rows()) {
		_, ok := value.LookupDotted(rows().At(0), p)
		if p == "active" {
			assert.False(t, ok)
			continue
		}
		assert.True(t, ok, p)
	}
}

func TestCollectLeaves(t *testing.T) {
	data, _ := person()

	leaves := CollectLeaves(data, -1)
	require.Len(t, leaves, 4)
	assert.Equal(t, "address.city", leaves[1].DottedPath())
	assert.Equal(t, "Oslo", leaves[1].Value)

	assert.Len(t, CollectLeaves(data, 1), 1)
}

func TestCollectStats(t *testing.T) {
	data, _ := person()

	stats := CollectStats(data)
	assert.Equal(t, 4, stats.Leaves)
	assert.Equal(t, 3, stats.Objects)
	assert.Equal(t, 1, stats.Loops)
	assert.Equal(t, 2, stats.MaxDepth)
	assert.Equal(t, []string{"address", "city"}, stats.DeepestPath)

	empty := CollectStats(nil)
	assert.Equal(t, 1, empty.Leaves)
	assert.Equal(t, []string{}, empty.DeepestPath)
}

func TestFindCycle(t *testing.T) {
	data, _ := person()

	path, ok := FindCycle(data)
	require.True(t, ok)
	assert.Equal(t, []string{"address", "recursive"}, path)
	assert.True(t, HasCycle(data))

	shared := value.NewObject()
	assert.False(t, HasCycle(value.NewArray(shared, shared)))
}
