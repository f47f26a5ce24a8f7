package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callFind(t *testing.T, input findInput) (*mcp.CallToolResult, findOutput) {
	t.Helper()
	result, out, err := handleFind(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	if out == nil {
		return result, findOutput{}
	}
	fo, ok := out.(findOutput)
	require.True(t, ok)
	return result, fo
}

func TestFind(t *testing.T) {
	withCache(t)
	doc := docInput{Content: usersDoc}

	tests := []struct {
		name          string
		keyword       string
		caseSensitive *bool
		wantFound     bool
		wantPath      string
		wantValue     string
	}{
		{name: "substring in string", keyword: "example", wantFound: true, wantPath: "users.1.email", wantValue: `"bob@example.com"`},
		{name: "number matches exactly", keyword: "31", wantFound: true, wantPath: "users.0.age", wantValue: `31`},
		{name: "number never matches by substring", keyword: "3", wantFound: false},
		{name: "case sensitive by default", keyword: "paris", wantFound: false},
		{name: "case insensitive", keyword: "paris", caseSensitive: boolPtr(false), wantFound: true, wantPath: "users.0.address.city", wantValue: `"Paris"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, out := callFind(t, findInput{Doc: doc, Keyword: tt.keyword, CaseSensitive: tt.caseSensitive})
			assert.Nil(t, result)
			assert.Equal(t, tt.wantFound, out.Found)
			assert.Equal(t, tt.wantPath, out.Path)
			if tt.wantValue != "" {
				assert.JSONEq(t, tt.wantValue, string(out.Value))
			}
		})
	}
}

func TestFind_ThroughCycle(t *testing.T) {
	withCache(t)
	_, out := callFind(t, findInput{Doc: docInput{Content: cyclicDoc}, Keyword: "Par"})
	assert.True(t, out.Found)
	assert.Equal(t, "address.city", out.Path)
}

func TestFind_EmptyKeyword(t *testing.T) {
	result, _ := callFind(t, findInput{Doc: docInput{Content: `{}`}})
	assert.Contains(t, errorText(t, result), "keyword")
}
