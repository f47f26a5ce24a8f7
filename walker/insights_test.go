package walker

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timepp/uu/value"
)

func TestDataInsights(t *testing.T) {
	record := func(id int, status string, tags *value.Array, k int) *value.Object {
		return value.NewObject().
			Set("id", id).
			Set("status", status).
			Set("tags", tags).
			Set("meta", value.NewObject().Set("k", k))
	}
	items := []any{
		record(1, "open", value.NewArray("x", "y"), 1),
		record(2, "open", value.NewArray("x"), 1),
		record(3, "closed", value.NewArray(), 2),
		"scalar row",
	}

	got := DataInsights(items)
	assert.Equal(t, []PropStat{
		{Property: "status", UniqueValues: []ValueCount{{"open", 2}, {"closed", 1}}},
		{Property: "tags", UniqueValues: []ValueCount{{"x", 2}, {"y", 1}}},
		{Property: "meta", UniqueValues: []ValueCount{{`{"k":1}`, 2}, {`{"k":2}`, 1}}},
	}, got, "id has only unique values and is dropped")
}

func TestDataInsights_SortedByDistinctValues(t *testing.T) {
	var items []any
	for i := range 12 {
		items = append(items, value.NewObject().
			Set("wide", strconv.Itoa(i%4)).
			Set("narrow", i%2 == 0))
	}

	got := DataInsights(items)
	require.Len(t, got, 2)
	assert.Equal(t, "narrow", got[0].Property)
	assert.Equal(t, []ValueCount{{"true", 6}, {"false", 6}}, got[0].UniqueValues)
	assert.Equal(t, "wide", got[1].Property)
	assert.Len(t, got[1].UniqueValues, 4)
}

func TestDataInsights_Keys(t *testing.T) {
	cyclic := value.NewObject()
	cyclic.Set("self", cyclic)

	items := []any{
		value.NewObject().Set("v", value.NewArray(1, "1", nil, value.NewArray(1, 2))),
		value.NewObject().Set("v", value.NewArray(nil, value.NewArray(1, 2), cyclic)),
		value.NewArray("a", "b"),
		value.NewArray("a"),
	}

	got := DataInsights(items)
	require.Len(t, got, 1)
	assert.Equal(t, "v", got[0].Property)
	assert.Equal(t, []ValueCount{
		{"1", 2},
		{"null", 2},
		{"[1,2]", 2},
		{`{"self":"<<circular ref to the root object>>"}`, 1},
	}, got[0].UniqueValues)
}

func TestInformative(t *testing.T) {
	stat := func(counts ...int) PropStat {
		s := PropStat{Property: "p"}
		for i, c := range counts {
			s.UniqueValues = append(s.UniqueValues, ValueCount{Value: strconv.Itoa(i), Count: c})
		}
		return s
	}
	ones := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = 1
		}
		return out
	}

	tests := []struct {
		name string
		stat PropStat
		want bool
	}{
		{"no values", stat(), false},
		{"single value", stat(50), false},
		{"all unique", stat(ones(5)...), false},
		{"top count above ten", stat(append([]int{11}, ones(19)...)...), true},
		{"top count of ten with few repeats", stat(append([]int{10}, ones(19)...)...), false},
		{"exactly ten percent repeat", stat(append([]int{2}, ones(9)...)...), true},
		{"just under ten percent repeat", stat(append([]int{2}, ones(10)...)...), false},
		{"two repeated values", stat(3, 2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, informative(tt.stat))
		})
	}
}
