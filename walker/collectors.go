package walker

import (
	"strconv"
	"strings"

	"github.com/timepp/uu/value"
	"golang.org/x/text/cases"
)

// LeafInfo describes a leaf reached during a walk.
type LeafInfo struct {
	// Path is the location of the leaf from the root.
	Path []string

	// Value is the leaf value.
	Value any
}

// DottedPath returns the leaf's path joined with ".".
func (l LeafInfo) DottedPath() string {
	return strings.Join(l.Path, ".")
}

// Stats summarizes the shape of a value graph.
type Stats struct {
	// Leaves is the number of non-reference nodes visited.
	Leaves int

	// Objects is the number of arrays and objects visited.
	// A shared subgraph counts once per path that reaches it.
	Objects int

	// Loops is the number of back references to an ancestor.
	Loops int

	// MaxDepth is the length of the longest visited path.
	MaxDepth int

	// DeepestPath is the first visited path of length MaxDepth.
	DeepestPath []string
}

// FuzzyFind returns the path of the first leaf that matches keyword.
//
// Number leaves match when their canonical text equals keyword exactly. Other
// non-null leaves match when their text contains keyword. Case-insensitive
// matching uses Unicode case folding.
func FuzzyFind(v any, keyword string, caseSensitive bool) ([]string, bool) {
	var (
		found []string
		ok    bool
	)
	fold := cases.Fold()
	needle := keyword
	if !caseSensitive {
		needle = fold.String(keyword)
	}

	Traverse(v, -1, func(path []string, leaf any, kind NodeKind) Action {
		if kind != Leaf || leaf == nil {
			return Continue
		}
		if text, isNumber := value.FormatNumber(leaf); isNumber {
			if text == keyword {
				found, ok = path, true
				return Stop
			}
			return Continue
		}
		text := leafText(leaf)
		if !caseSensitive {
			text = fold.String(text)
		}
		if strings.Contains(text, needle) {
			found, ok = path, true
			return Stop
		}
		return Continue
	})
	return found, ok
}

func leafText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	default:
		return value.OpaqueText(v)
	}
}

// DataProperties returns the union of the top-level keys of items, in the
// order they are first seen. Array elements contribute their indices;
// scalars contribute nothing.
func DataProperties(items []any) []string {
	seen := make(map[string]bool)
	var props []string
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			props = append(props, k)
		}
	}
	for _, item := range items {
		switch t := item.(type) {
		case *value.Object:
			if t == nil {
				continue
			}
			for _, k := range t.Keys() {
				add(k)
			}
		case *value.Array:
			if t == nil {
				continue
			}
			for i := range t.Items {
				add(strconv.Itoa(i))
			}
		}
	}
	return props
}

// FlattenedProperties returns the dotted leaf paths found below each element
// of items, in the order they are first seen. The element index is not part
// of the path, so "address.city" names the same column for every row.
// Scalar elements have no property path and are ignored.
func FlattenedProperties(items *value.Array) []string {
	if items == nil {
		return nil
	}
	seen := make(map[string]bool)
	var props []string
	Traverse(items, -1, func(path []string, _ any, kind NodeKind) Action {
		if kind != Leaf || len(path) < 2 {
			return Continue
		}
		p := strings.Join(path[1:], ".")
		if !seen[p] {
			seen[p] = true
			props = append(props, p)
		}
		return Continue
	})
	return props
}

// CollectLeaves returns every leaf reachable within maxDepth, in traversal order.
// A negative maxDepth means unlimited.
func CollectLeaves(v any, maxDepth int) []LeafInfo {
	var leaves []LeafInfo
	Traverse(v, maxDepth, func(path []string, leaf any, kind NodeKind) Action {
		if kind == Leaf {
			leaves = append(leaves, LeafInfo{Path: path, Value: leaf})
		}
		return Continue
	})
	return leaves
}

// CollectStats walks v without a depth limit and returns its shape summary.
func CollectStats(v any) Stats {
	var stats Stats
	stats.DeepestPath = []string{}
	Traverse(v, -1, func(path []string, _ any, kind NodeKind) Action {
		switch kind {
		case Leaf:
			stats.Leaves++
		case Object:
			stats.Objects++
		case Loop:
			stats.Loops++
		}
		if len(path) > stats.MaxDepth {
			stats.MaxDepth = len(path)
			stats.DeepestPath = path
		}
		return Continue
	})
	return stats
}

// FindCycle returns the path of the first node that refers back to one of
// its ancestors.
func FindCycle(v any) ([]string, bool) {
	var (
		found []string
		ok    bool
	)
	Traverse(v, -1, func(path []string, _ any, kind NodeKind) Action {
		if kind == Loop {
			found, ok = path, true
			return Stop
		}
		return Continue
	})
	return found, ok
}

// HasCycle reports whether v contains a reference to one of its own ancestors.
func HasCycle(v any) bool {
	_, ok := FindCycle(v)
	return ok
}
