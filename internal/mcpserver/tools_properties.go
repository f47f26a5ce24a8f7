package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timepp/uu/value"
	"github.com/timepp/uu/walker"
)

type propertiesInput struct {
	Doc     docInput `json:"doc"               jsonschema:"The document holding the records"`
	Path    string   `json:"path,omitempty"    jsonschema:"Dotted path to the array of records (default: the document root)"`
	Flatten bool     `json:"flatten,omitempty" jsonschema:"Return dotted leaf paths below each record instead of top-level keys"`
}

type propertiesOutput struct {
	Rows       int      `json:"rows"`
	Properties []string `json:"properties"`
}

func handleProperties(_ context.Context, _ *mcp.CallToolRequest, input propertiesInput) (*mcp.CallToolResult, any, error) {
	v, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	arr, err := recordsAt(v, input.Path)
	if err != nil {
		return errResult(err), nil, nil
	}

	var props []string
	if input.Flatten {
		props = walker.FlattenedProperties(arr)
	} else {
		props = walker.DataProperties(arr.Items)
	}
	if props == nil {
		props = []string{}
	}
	return nil, propertiesOutput{Rows: arr.Len(), Properties: props}, nil
}

// recordsAt resolves the dotted path to the array of records.
func recordsAt(v any, path string) (*value.Array, error) {
	target := v
	if path != "" {
		var ok bool
		target, ok = value.LookupDotted(v, path)
		if !ok {
			return nil, fmt.Errorf("path %q not found", path)
		}
	}
	arr, ok := target.(*value.Array)
	if !ok || arr == nil {
		return nil, fmt.Errorf("value at %q is %s, not an array", displayPath(path), value.KindOf(target))
	}
	return arr, nil
}

func displayPath(p string) string {
	if p == "" {
		return "<root>"
	}
	return p
}
