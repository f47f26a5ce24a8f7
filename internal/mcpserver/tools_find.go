package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timepp/uu/serializer"
	"github.com/timepp/uu/value"
	"github.com/timepp/uu/walker"
)

type findInput struct {
	Doc           docInput `json:"doc"                      jsonschema:"The document to search"`
	Keyword       string   `json:"keyword"                  jsonschema:"Text to look for"`
	CaseSensitive *bool    `json:"case_sensitive,omitempty" jsonschema:"Match case exactly (default from config\\, true)"`
}

type findOutput struct {
	Found bool            `json:"found"`
	Path  string          `json:"path,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

func handleFind(_ context.Context, _ *mcp.CallToolRequest, input findInput) (*mcp.CallToolResult, any, error) {
	if input.Keyword == "" {
		return errResult(fmt.Errorf("keyword must not be empty")), nil, nil
	}
	v, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	caseSensitive := cfg.CaseSensitive
	if input.CaseSensitive != nil {
		caseSensitive = *input.CaseSensitive
	}

	path, ok := walker.FuzzyFind(v, input.Keyword, caseSensitive)
	if !ok {
		return nil, findOutput{}, nil
	}
	out := findOutput{Found: true, Path: strings.Join(path, ".")}
	if leaf, ok := value.Lookup(v, path); ok {
		out.Value = json.RawMessage(serializer.Serialize(leaf, serializer.WithMaxStringLength(leafPreviewLength)).Text)
	}
	return nil, out, nil
}
