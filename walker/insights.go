package walker

import (
	"slices"
	"strconv"

	"github.com/timepp/uu/serializer"
	"github.com/timepp/uu/value"
)

// ValueCount is one distinct property value and how many times it occurs.
type ValueCount struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// PropStat is the value histogram of one property across a set of records.
type PropStat struct {
	Property string `json:"property" yaml:"property"`
	// UniqueValues is ordered by descending count; equal counts keep the
	// order in which the values were first seen.
	UniqueValues []ValueCount `json:"unique_values" yaml:"unique_values"`
}

// DataInsights builds a value histogram for every property of items and
// returns the informative ones, fewest distinct values first.
//
// An array-valued property contributes each of its elements; objects and
// nested arrays are keyed by their single-line JSON text. Scalars are keyed
// by their text, so the string "1" and the number 1 share a bucket. Array
// records contribute their indices as properties; scalar records are skipped.
//
// A property is informative when it has at least two distinct values and
// either its most common value occurs more than 10 times or at least 10% of
// its distinct values repeat.
func DataInsights(items []any) []PropStat {
	var h histograms
	for _, item := range items {
		switch t := item.(type) {
		case *value.Object:
			if t == nil {
				continue
			}
			t.Range(func(k string, v any) bool {
				h.add(k, v)
				return true
			})
		case *value.Array:
			if t == nil {
				continue
			}
			for i, v := range t.Items {
				h.add(strconv.Itoa(i), v)
			}
		}
	}

	var stats []PropStat
	for _, p := range h.props {
		stat := p.stat()
		if informative(stat) {
			stats = append(stats, stat)
		}
	}
	slices.SortStableFunc(stats, func(a, b PropStat) int {
		return len(a.UniqueValues) - len(b.UniqueValues)
	})
	return stats
}

func informative(stat PropStat) bool {
	n := len(stat.UniqueValues)
	if n < 2 {
		return false
	}
	repeated := 0
	for _, vc := range stat.UniqueValues {
		if vc.Count > 1 {
			repeated++
		}
	}
	top := stat.UniqueValues[0].Count
	return top > 10 || float64(repeated)/float64(n) >= 0.1
}

type histograms struct {
	index map[string]*histogram
	props []*histogram
}

type histogram struct {
	name   string
	index  map[string]int
	values []ValueCount
}

func (h *histograms) add(prop string, v any) {
	if h.index == nil {
		h.index = make(map[string]*histogram)
	}
	p, ok := h.index[prop]
	if !ok {
		p = &histogram{name: prop, index: make(map[string]int)}
		h.index[prop] = p
		h.props = append(h.props, p)
	}
	if arr, ok := v.(*value.Array); ok && arr != nil {
		for _, item := range arr.Items {
			p.inc(insightKey(item))
		}
		return
	}
	p.inc(insightKey(v))
}

func (p *histogram) inc(key string) {
	if i, ok := p.index[key]; ok {
		p.values[i].Count++
		return
	}
	p.index[key] = len(p.values)
	p.values = append(p.values, ValueCount{Value: key, Count: 1})
}

func (p *histogram) stat() PropStat {
	values := slices.Clone(p.values)
	slices.SortStableFunc(values, func(a, b ValueCount) int {
		return b.Count - a.Count
	})
	return PropStat{Property: p.name, UniqueValues: values}
}

func insightKey(v any) string {
	switch value.KindOf(v) {
	case value.KindNull:
		return "null"
	case value.KindString:
		return v.(string)
	case value.KindBool:
		return strconv.FormatBool(v.(bool))
	case value.KindNumber:
		text, _ := value.FormatNumber(v)
		return text
	case value.KindOpaque:
		return value.OpaqueText(v)
	default:
		return serializer.Stringify(v)
	}
}
