// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes uu capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timepp/uu"
	"github.com/timepp/uu/internal/config"
)

const serverInstructions = `uu MCP server: inspects JSON, YAML and msgpack documents, including ones whose YAML aliases form cycles.

Every tool takes a doc object with exactly one of file (a local path, optionally .gz or .zst) or content (inline text), plus an optional format (auto, json, yaml, msgpack).

Configuration: defaults come from the TOML file named by UU_CONFIG and from UU_* environment variables set in your MCP client config.

Key settings:
- UU_MAX_STRING_LENGTH / UU_MAX_ARRAY_SIZE: default budgets for stringify
- UU_WALK_MAX_DEPTH: default depth limit for walk (negative = unlimited)
- UU_DECODE_MAX_NODES (default: 1000000): ceiling on a document's size once YAML aliases are expanded
- UU_RESULT_LIMIT (default: 100): default page size for list results
- UU_CACHE_ENABLED (default: true): disable document caching entirely

Caching: decoded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change); inline content is keyed by its SHA-256 digest.`

// maxResultLimit caps any requested page size.
const maxResultLimit = 1000

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. A nil config selects the defaults.
func Run(ctx context.Context, c *config.Config) error {
	if c != nil {
		cfg = c
	}
	if err := resetCache(); err != nil {
		return err
	}
	defer closeCache()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "uu", Version: uu.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "stringify",
		Description: "Serialize a document as JSON text that never fails. Circular references become <<circular ref ...>> markers, long strings are trimmed with a \"…N more chars…\" marker and long arrays with a \"…N more items…\" element. Short containers are kept on one line when compact is true. Returns the text and counters of everything that was elided.",
	}, handleStringify)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "segment_json",
		Description: "Split JSON text into categorized segments (key, string, number, true, false, null, punctuation) using regex rules. Custom rules are tried before the built-in ones; markers=true also tags stringify markers. Text not claimed by any rule is returned as segments with an empty category, so concatenating every segment restores the input.",
	}, handleSegmentJSON)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "walk",
		Description: "Walk a document depth-first and list every visited node with its path and kind (leaf, object, loop). A loop is a reference back to one of the node's own ancestors. Use max_depth to stop descending, kind to filter, and offset/limit to paginate. Also returns leaf/object/loop counts and the deepest path.",
	}, handleWalk)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find",
		Description: "Find the first leaf (in walk order) whose value contains the keyword. Numbers must match their text exactly; strings and booleans match by substring. Set case_sensitive=false for Unicode case-insensitive matching. Returns the path of the match.",
	}, handleFind)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "properties",
		Description: "List the column names of an array of records: the union of element keys in first-seen order, or with flatten=true the dotted leaf paths below each element. Use path (dotted, e.g. data.items) to select a nested array.",
	}, handleProperties)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "insights",
		Description: "Summarize an array of records: for each property, a histogram of its distinct values (array values are counted per element, objects by their JSON text), sorted by count. Only informative properties are returned (at least two distinct values, and either a value occurring more than 10 times or at least 10% of values repeating), fewest distinct values first. Use max_values to shorten histograms and offset/limit to paginate.",
	}, handleInsights)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ResultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ResultLimit
	}
	if limit > maxResultLimit {
		limit = maxResultLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
