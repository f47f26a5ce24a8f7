package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timepp/uu/serializer"
	"github.com/timepp/uu/walker"
)

// leafPreviewLength bounds string leaves echoed back by walk.
const leafPreviewLength = 200

type walkInput struct {
	Doc      docInput `json:"doc"                 jsonschema:"The document to walk"`
	MaxDepth *int     `json:"max_depth,omitempty" jsonschema:"Do not descend below this depth; 0 visits only the root (default from config\\, unlimited)"`
	Kind     string   `json:"kind,omitempty"      jsonschema:"Only return nodes of this kind: leaf\\, object or loop"`
	Limit    int      `json:"limit,omitempty"     jsonschema:"Maximum number of nodes to return (default 100)"`
	Offset   int      `json:"offset,omitempty"    jsonschema:"Skip the first N nodes (for pagination)"`
}

type walkNode struct {
	Path  []string        `json:"path"`
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

type walkStats struct {
	Leaves      int      `json:"leaves"`
	Objects     int      `json:"objects"`
	Loops       int      `json:"loops"`
	MaxDepth    int      `json:"max_depth"`
	DeepestPath []string `json:"deepest_path"`
}

type walkOutput struct {
	Total    int        `json:"total"`
	Matched  int        `json:"matched"`
	Returned int        `json:"returned"`
	Nodes    []walkNode `json:"nodes,omitempty"`
	Stats    walkStats  `json:"stats"`
}

func handleWalk(_ context.Context, _ *mcp.CallToolRequest, input walkInput) (*mcp.CallToolResult, any, error) {
	kind := strings.ToLower(strings.TrimSpace(input.Kind))
	switch kind {
	case "", walker.Leaf.String(), walker.Object.String(), walker.Loop.String():
	default:
		return errResult(fmt.Errorf("invalid kind %q; valid values: leaf, object, loop", input.Kind)), nil, nil
	}

	v, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	maxDepth := cfg.WalkMaxDepth
	if input.MaxDepth != nil {
		maxDepth = *input.MaxDepth
	}

	total := 0
	var matched []walkNode
	walker.Traverse(v, maxDepth, func(path []string, node any, k walker.NodeKind) walker.Action {
		total++
		if kind != "" && k.String() != kind {
			return walker.Continue
		}
		if path == nil {
			path = []string{}
		}
		n := walkNode{Path: path, Kind: k.String()}
		if k == walker.Leaf {
			n.Value = json.RawMessage(serializer.Serialize(node, serializer.WithMaxStringLength(leafPreviewLength)).Text)
		}
		matched = append(matched, n)
		return walker.Continue
	})

	stats := walker.CollectStats(v)
	page := paginate(matched, input.Offset, input.Limit)
	return nil, walkOutput{
		Total:    total,
		Matched:  len(matched),
		Returned: len(page),
		Nodes:    page,
		Stats: walkStats{
			Leaves:      stats.Leaves,
			Objects:     stats.Objects,
			Loops:       stats.Loops,
			MaxDepth:    stats.MaxDepth,
			DeepestPath: stats.DeepestPath,
		},
	}, nil
}
