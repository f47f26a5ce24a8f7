package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timepp/uu/serializer"
)

type stringifyInput struct {
	Doc             docInput `json:"doc"                         jsonschema:"The document to serialize"`
	Indent          *int     `json:"indent,omitempty"            jsonschema:"Spaces per nesting level; 0 renders a single line (default from config\\, 2)"`
	Compact         *bool    `json:"compact,omitempty"           jsonschema:"Keep short containers on one line (default true)"`
	MaxStringLength int      `json:"max_string_length,omitempty" jsonschema:"Trim strings longer than this many characters (0 = config default\\, negative = unbounded)"`
	MaxArraySize    int      `json:"max_array_size,omitempty"    jsonschema:"Trim arrays longer than this many elements (0 = config default\\, negative = unbounded)"`
}

type stringifyOutput struct {
	Text           string `json:"text"`
	CircularRefs   int    `json:"circular_refs"`
	TrimmedStrings int    `json:"trimmed_strings"`
	TrimmedArrays  int    `json:"trimmed_arrays"`
}

func handleStringify(_ context.Context, _ *mcp.CallToolRequest, input stringifyInput) (*mcp.CallToolResult, any, error) {
	v, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	res := serializer.Serialize(v, stringifyOptions(input)...)
	return nil, stringifyOutput{
		Text:           res.Text,
		CircularRefs:   res.CircularRefs,
		TrimmedStrings: res.TrimmedStrings,
		TrimmedArrays:  res.TrimmedArrays,
	}, nil
}

// stringifyOptions merges per-call settings over the configured defaults.
func stringifyOptions(input stringifyInput) []serializer.Option {
	indent := cfg.Indent
	if input.Indent != nil && *input.Indent >= 0 {
		indent = *input.Indent
	}
	compact := cfg.Compact
	if input.Compact != nil {
		compact = *input.Compact
	}
	maxString := cfg.MaxStringLength
	if input.MaxStringLength != 0 {
		maxString = input.MaxStringLength
	}
	maxArray := cfg.MaxArraySize
	if input.MaxArraySize != 0 {
		maxArray = input.MaxArraySize
	}
	return []serializer.Option{
		serializer.WithIndentWidth(indent),
		serializer.WithCompact(compact),
		serializer.WithMaxStringLength(maxString),
		serializer.WithMaxArraySize(maxArray),
	}
}
