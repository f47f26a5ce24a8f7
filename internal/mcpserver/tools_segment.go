package mcpserver

import (
	"context"
	"fmt"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timepp/uu/segmenter"
)

type ruleInput struct {
	Pattern  string `json:"pattern"  jsonschema:"Regular expression (RE2 syntax)"`
	Category string `json:"category" jsonschema:"Category assigned to matches"`
}

type segmentJSONInput struct {
	Text    string      `json:"text"              jsonschema:"JSON text to segment"`
	Markers bool        `json:"markers,omitempty" jsonschema:"Also tag stringify markers (…N more chars…\\, <<circular ref …>>) with category marker"`
	Rules   []ruleInput `json:"rules,omitempty"   jsonschema:"Extra rules tried before the built-in JSON rules\\, in order"`
	Limit   int         `json:"limit,omitempty"   jsonschema:"Maximum number of segments to return (default 100)"`
	Offset  int         `json:"offset,omitempty"  jsonschema:"Skip the first N segments (for pagination)"`
}

type segmentJSONOutput struct {
	Total    int                 `json:"total"`
	Returned int                 `json:"returned"`
	Segments []segmenter.Segment `json:"segments,omitempty"`
}

func handleSegmentJSON(_ context.Context, _ *mcp.CallToolRequest, input segmentJSONInput) (*mcp.CallToolResult, any, error) {
	extra, err := compileRules(input.Rules)
	if err != nil {
		return errResult(err), nil, nil
	}
	if input.Markers {
		extra = append(extra, segmenter.MarkerRule())
	}

	all := segmenter.SegmentJSON(input.Text, extra...)
	page := paginate(all, input.Offset, input.Limit)
	return nil, segmentJSONOutput{
		Total:    len(all),
		Returned: len(page),
		Segments: page,
	}, nil
}

func compileRules(rules []ruleInput) ([]segmenter.Rule, error) {
	if len(rules) == 0 {
		return nil, nil
	}
	out := make([]segmenter.Rule, 0, len(rules))
	for i, r := range rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("rule %d: pattern must not be empty", i)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d: invalid pattern: %w", i, err)
		}
		out = append(out, segmenter.Rule{Pattern: re, Category: r.Category})
	}
	return out, nil
}
