package value

import (
	"fmt"

	"github.com/timepp/uu/internal/ancestry"
	"github.com/timepp/uu/uuerrors"
)

// checkExpansion counts the nodes a depth-first walk of v would visit,
// descending into a shared subtree once per path and stopping at references
// back to an ancestor. It fails as soon as the count passes limit, so the
// cost is bounded by limit rather than by the expansion.
func checkExpansion(v any, limit int) error {
	c := &expansionCounter{limit: limit, stack: ancestry.New(16)}
	if c.count(v) {
		return nil
	}
	return &uuerrors.ResourceLimitError{
		ResourceType: "expanded_nodes",
		Limit:        int64(limit),
		Actual:       int64(c.seen),
		Message:      fmt.Sprintf("aliases expand the document past %d nodes", limit),
	}
}

type expansionCounter struct {
	limit int
	seen  int
	stack *ancestry.Stack
}

// count reports false once the budget is exhausted.
func (c *expansionCounter) count(v any) bool {
	c.seen++
	if c.seen > c.limit {
		return false
	}
	if !IsReference(v) || c.stack.Contains(v) {
		return true
	}
	c.stack.Push(v)
	defer c.stack.Pop()

	switch t := v.(type) {
	case *Array:
		for _, item := range t.Items {
			if !c.count(item) {
				return false
			}
		}
	case *Object:
		for _, k := range t.keys {
			if !c.count(t.values[k]) {
				return false
			}
		}
	}
	return true
}
