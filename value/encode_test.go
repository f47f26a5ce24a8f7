package value

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timepp/uu/uuerrors"
)

func TestEncodeYAML_RoundTrip(t *testing.T) {
	doc := sampleDocument().Set("numeric string", "123").Set("empty", NewObject())

	out, err := EncodeYAML(doc)
	require.NoError(t, err)

	text := string(out)
	assert.Less(t, strings.Index(text, "name:"), strings.Index(text, "price:"))

	back, err := Decode(out, FormatYAML)
	require.NoError(t, err)
	assert.True(t, Equal(doc, back), "yaml:\n%s", text)
}

func TestEncodeYAML_Scalars(t *testing.T) {
	node, err := ToYAMLNode(NewArray(1, 1.5, "x", nil, true))
	require.NoError(t, err)
	require.Len(t, node.Content, 5)

	tags := make([]string, 0, len(node.Content))
	for _, c := range node.Content {
		tags = append(tags, c.Tag)
	}
	assert.Equal(t, []string{"!!int", "!!float", "!!str", "!!null", "!!bool"}, tags)
}

func TestEncodeYAML_Cycle(t *testing.T) {
	arr := NewArray(1)
	arr.Append(arr)

	_, err := EncodeYAML(arr)
	var cycleErr *uuerrors.CycleError
	require.True(t, errors.As(err, &cycleErr))
	assert.Equal(t, []string{"1"}, cycleErr.Path)
	assert.Equal(t, "encode yaml: circular reference at 1", err.Error())
}
