// Package ancestry tracks the reference-typed values on the active recursion
// path of a single traversal.
//
// Membership is decided by identity (pointer equality), never by structural
// equality. A Stack belongs to exactly one top-level call and must not be
// shared between goroutines.
package ancestry

// Stack is an ordered set of ancestors. Index 0 is the root.
type Stack struct {
	items []any
	index map[any]int
}

// New returns an empty Stack with room for the given depth hint.
func New(capacity int) *Stack {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack{
		items: make([]any, 0, capacity),
		index: make(map[any]int, capacity),
	}
}

// Push appends v as the innermost ancestor.
// v must be a comparable reference (e.g. *value.Array or *value.Object).
func (s *Stack) Push(v any) {
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
}

// Pop removes the innermost ancestor. It is a no-op on an empty stack.
func (s *Stack) Pop() {
	n := len(s.items)
	if n == 0 {
		return
	}
	delete(s.index, s.items[n-1])
	s.items[n-1] = nil
	s.items = s.items[:n-1]
}

// IndexOf returns the position of v on the stack, or -1 when v is not an ancestor.
func (s *Stack) IndexOf(v any) int {
	if i, ok := s.index[v]; ok {
		return i
	}
	return -1
}

// Contains reports whether v is currently an ancestor.
func (s *Stack) Contains(v any) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of ancestors.
func (s *Stack) Len() int {
	return len(s.items)
}
