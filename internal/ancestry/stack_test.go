package ancestry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type node struct{ name string }

func TestStack_PushPopIndex(t *testing.T) {
	a, b, c := &node{"a"}, &node{"b"}, &node{"c"}
	s := New(4)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.IndexOf(a))

	s.Push(a)
	s.Push(b)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 0, s.IndexOf(a))
	assert.Equal(t, 1, s.IndexOf(b))
	assert.False(t, s.Contains(c))

	s.Pop()
	assert.Equal(t, -1, s.IndexOf(b))
	assert.True(t, s.Contains(a))

	s.Pop()
	s.Pop() // no-op on empty
	assert.Equal(t, 0, s.Len())
}

func TestStack_IdentityNotEquality(t *testing.T) {
	x, y := &node{"same"}, &node{"same"}
	s := New(0)
	s.Push(x)

	assert.True(t, s.Contains(x))
	assert.False(t, s.Contains(y), "structurally equal values must not match")
}
