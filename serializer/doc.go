// Package serializer renders value graphs as JSON text that never fails.
//
// Unlike encoding/json, the serializer is total: cycles, oversized strings and
// oversized arrays are replaced by diagnostic markers instead of producing an
// error, and opaque values fall back to their string form.
//
// # Markers
//
// The output is JSON with four kinds of lossy marker text:
//
//   - "<<circular ref to the root object>>" ([RootCircularMarker])
//   - "<<circular ref to parent level N>>" ([CircularMarker])
//   - a truncated string ending in " …K more chars…" ([MoreCharsMarker])
//   - a final array element "…K more items…" ([MoreItemsMarker])
//
// Markers are for humans; they are never meant to be parsed back as data.
//
// # Layout
//
// Without an indent unit every container is written on one line. With an
// indent unit each container is expanded one child per line, unless compact
// mode is on and the rendered children are short (under 60 characters in
// total, no line breaks), in which case the container stays on one line with
// ", " separators.
//
//	res := serializer.Serialize(doc,
//	    serializer.WithIndentWidth(2),
//	    serializer.WithMaxStringLength(80),
//	    serializer.WithMaxArraySize(20),
//	)
//	fmt.Println(res.Text, res.TrimmedStrings)
//
// [Stringify] and [StringifyIndent] produce unbounded, non-compact output
// equivalent to JSON.stringify-style pretty printing.
package serializer
