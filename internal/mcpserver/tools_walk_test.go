package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWalk(t *testing.T, input walkInput) (*mcp.CallToolResult, walkOutput) {
	t.Helper()
	result, out, err := handleWalk(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	if out == nil {
		return result, walkOutput{}
	}
	wo, ok := out.(walkOutput)
	require.True(t, ok)
	return result, wo
}

func TestWalk_AllNodes(t *testing.T) {
	withCache(t)
	result, out := callWalk(t, walkInput{Doc: docInput{Content: cyclicDoc}})
	assert.Nil(t, result)

	assert.Equal(t, 5, out.Total)
	assert.Equal(t, 5, out.Matched)
	require.Len(t, out.Nodes, 5)

	type visit struct {
		path []string
		kind string
	}
	var got []visit
	for _, n := range out.Nodes {
		got = append(got, visit{n.Path, n.Kind})
	}
	assert.Equal(t, []visit{
		{[]string{}, "object"},
		{[]string{"name"}, "leaf"},
		{[]string{"address"}, "object"},
		{[]string{"address", "city"}, "leaf"},
		{[]string{"address", "recursive"}, "loop"},
	}, got)
	assert.JSONEq(t, `"Ann"`, string(out.Nodes[1].Value))
	assert.Nil(t, out.Nodes[0].Value)

	assert.Equal(t, walkStats{
		Leaves:      2,
		Objects:     2,
		Loops:       1,
		MaxDepth:    2,
		DeepestPath: []string{"address", "city"},
	}, out.Stats)
}

func TestWalk_KindFilter(t *testing.T) {
	withCache(t)
	_, out := callWalk(t, walkInput{Doc: docInput{Content: cyclicDoc}, Kind: "Loop"})
	assert.Equal(t, 5, out.Total)
	require.Len(t, out.Nodes, 1)
	assert.Equal(t, []string{"address", "recursive"}, out.Nodes[0].Path)
}

func TestWalk_MaxDepth(t *testing.T) {
	withCache(t)
	_, out := callWalk(t, walkInput{Doc: docInput{Content: cyclicDoc}, MaxDepth: intPtr(1)})
	var paths [][]string
	for _, n := range out.Nodes {
		paths = append(paths, n.Path)
	}
	assert.Equal(t, [][]string{{}, {"name"}, {"address"}}, paths)
}

func TestWalk_LeafValuesAreBounded(t *testing.T) {
	withCache(t)
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'z'
	}
	_, out := callWalk(t, walkInput{Doc: docInput{Content: `{"s":"` + string(long) + `"}`}, Kind: "leaf"})
	require.Len(t, out.Nodes, 1)

	var s string
	require.NoError(t, json.Unmarshal(out.Nodes[0].Value, &s))
	assert.Contains(t, s, "…312 more chars…")
}

func TestWalk_Pagination(t *testing.T) {
	withCache(t)
	_, out := callWalk(t, walkInput{Doc: docInput{Content: `[1,2,3,4,5]`}, Kind: "leaf", Offset: 1, Limit: 2})
	assert.Equal(t, 5, out.Matched)
	assert.Equal(t, 2, out.Returned)
	assert.Equal(t, []string{"1"}, out.Nodes[0].Path)
	assert.Equal(t, []string{"2"}, out.Nodes[1].Path)
}

func TestWalk_InvalidKind(t *testing.T) {
	result, _ := callWalk(t, walkInput{Doc: docInput{Content: `{}`}, Kind: "branch"})
	assert.Contains(t, errorText(t, result), "invalid kind")
}
