// Package uu provides structural introspection and bounded serialization for
// JSON-like value graphs that may contain shared and cyclic references.
//
// # Overview
//
// The library consists of three core packages:
//
//   - walker: depth-limited, cycle-aware traversal with Leaf / Object / Loop
//     classification and early-stop control
//   - serializer: JSON rendering that never fails, with circular-reference
//     markers and string/array truncation budgets
//   - segmenter: ordered, priority-resolved regex tokenization into
//     category-tagged segments (used for JSON highlighting)
//
// Supporting packages:
//
//   - value: the value model (*value.Object keeps key order), decoding from
//     JSON, YAML (anchors become shared references) and msgpack
//   - logging: the Logger interface accepted by walker and serializer
//   - uuerrors: structured error types
//
// # Quick Start
//
// Serialize a cyclic document with budgets:
//
//	doc, err := value.Parse([]byte(`{"items": [1, 2, 3, 4, 5]}`))
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc.(*value.Object).Set("self", doc)
//
//	res := serializer.Serialize(doc,
//		serializer.WithIndentWidth(2),
//		serializer.WithMaxArraySize(3),
//	)
//	fmt.Println(res.Text, res.CircularRefs, res.TrimmedArrays)
//
// Find the first leaf mentioning a keyword:
//
//	path, ok := walker.FuzzyFind(doc, "grace", false)
//
// Highlight JSON text:
//
//	segs := segmenter.SegmentJSON(res.Text, segmenter.MarkerRule())
//
// # Command Line
//
// The uu command (cmd/uu) exposes the same operations: stringify, highlight,
// walk, find, props, convert, and an MCP server (mcp).
package uu
