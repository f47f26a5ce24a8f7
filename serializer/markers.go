package serializer

import "fmt"

// RootCircularMarker replaces a reference back to the root value.
const RootCircularMarker = "<<circular ref to the root object>>"

// CircularMarker returns the marker for a reference back to the ancestor at
// the given level (0 is the root).
func CircularMarker(level int) string {
	if level == 0 {
		return RootCircularMarker
	}
	return fmt.Sprintf("<<circular ref to parent level %d>>", level)
}

// MoreCharsMarker returns the suffix text appended to a truncated string,
// without the separating space.
func MoreCharsMarker(k int) string {
	return fmt.Sprintf("…%d more chars…", k)
}

// MoreItemsMarker returns the pseudo-element text appended to a truncated array.
func MoreItemsMarker(k int) string {
	return fmt.Sprintf("…%d more items…", k)
}
