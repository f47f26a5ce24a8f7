package value

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timepp/uu/uuerrors"
	"github.com/vmihailenco/msgpack/v5"
)

func sampleDocument() *Object {
	shared := NewObject().Set("id", 7)
	return NewObject().
		Set("name", "widget").
		Set("price", 9.5).
		Set("count", uint64(3)).
		Set("tags", NewArray("a", "b", nil, false)).
		Set("owner", shared).
		Set("backup", shared)
}

func TestMsgpack_RoundTripPreservesOrder(t *testing.T) {
	doc := sampleDocument()

	data, err := EncodeMsgpack(doc)
	require.NoError(t, err)

	back, err := Decode(data, FormatMsgpack)
	require.NoError(t, err)
	assert.True(t, Equal(doc, back))
	assert.Equal(t, doc.Keys(), back.(*Object).Keys())
}

func TestMsgpack_DecodeForeignPayload(t *testing.T) {
	data, err := msgpack.Marshal([]any{1, "two", []byte("three"), map[string]any{"k": true}})
	require.NoError(t, err)

	v, err := Decode(data, FormatMsgpack)
	require.NoError(t, err)

	arr := v.(*Array)
	require.Equal(t, 4, arr.Len())
	assert.Equal(t, "three", arr.At(2))
	k, ok := LookupDotted(v, "3.k")
	require.True(t, ok)
	assert.Equal(t, true, k)
}

func TestMsgpack_Errors(t *testing.T) {
	t.Run("cycle", func(t *testing.T) {
		o := NewObject().Set("child", NewObject())
		child, _ := o.Get("child")
		child.(*Object).Set("parent", o)

		_, err := EncodeMsgpack(o)
		require.Error(t, err)
		var cycleErr *uuerrors.CycleError
		require.True(t, errors.As(err, &cycleErr))
		assert.Equal(t, []string{"child", "parent"}, cycleErr.Path)
		assert.True(t, errors.Is(err, uuerrors.ErrCircularReference))
	})

	t.Run("trailing data", func(t *testing.T) {
		data, err := EncodeMsgpack(int64(1))
		require.NoError(t, err)
		_, err = Decode(append(data, data...), FormatMsgpack)
		assert.True(t, errors.Is(err, uuerrors.ErrParse))
	})

	t.Run("truncated", func(t *testing.T) {
		data, err := EncodeMsgpack(NewArray("abc", "def"))
		require.NoError(t, err)
		_, err = Decode(data[:len(data)-2], FormatMsgpack)
		assert.True(t, errors.Is(err, uuerrors.ErrParse))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Decode(nil, FormatMsgpack)
		assert.True(t, errors.Is(err, uuerrors.ErrParse))
	})
}
