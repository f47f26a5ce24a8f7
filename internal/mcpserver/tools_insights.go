package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timepp/uu/walker"
)

type insightsInput struct {
	Doc       docInput `json:"doc"                  jsonschema:"The document holding the records"`
	Path      string   `json:"path,omitempty"       jsonschema:"Dotted path to the array of records (default: the document root)"`
	MaxValues int      `json:"max_values,omitempty" jsonschema:"Most common values to return per property (default: all)"`
	Offset    int      `json:"offset,omitempty"     jsonschema:"Skip the first N properties"`
	Limit     int      `json:"limit,omitempty"      jsonschema:"Maximum properties to return (default: UU_RESULT_LIMIT)"`
}

type insightsOutput struct {
	Rows       int               `json:"rows"`
	Total      int               `json:"total"`
	Returned   int               `json:"returned"`
	Properties []walker.PropStat `json:"properties"`
}

func handleInsights(_ context.Context, _ *mcp.CallToolRequest, input insightsInput) (*mcp.CallToolResult, any, error) {
	v, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}
	arr, err := recordsAt(v, input.Path)
	if err != nil {
		return errResult(err), nil, nil
	}

	stats := walker.DataInsights(arr.Items)
	page := paginate(stats, input.Offset, input.Limit)
	out := make([]walker.PropStat, 0, len(page))
	for _, s := range page {
		if input.MaxValues > 0 && len(s.UniqueValues) > input.MaxValues {
			s.UniqueValues = s.UniqueValues[:input.MaxValues]
		}
		out = append(out, s)
	}
	return nil, insightsOutput{Rows: arr.Len(), Total: len(stats), Returned: len(out), Properties: out}, nil
}
