package value

import (
	"strconv"
	"strings"
)

// Lookup resolves path against v. Array elements are addressed by their
// decimal index. The second result is false when any step is missing.
func Lookup(v any, path []string) (any, bool) {
	cur := v
	for _, key := range path {
		switch c := cur.(type) {
		case *Object:
			if c == nil {
				return nil, false
			}
			next, ok := c.Get(key)
			if !ok {
				return nil, false
			}
			cur = next
		case *Array:
			if c == nil {
				return nil, false
			}
			i, ok := parseIndex(key)
			if !ok || i >= len(c.Items) {
				return nil, false
			}
			cur = c.Items[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// LookupDotted resolves a dot-separated path such as "address.lines.0".
// The empty string addresses v itself.
func LookupDotted(v any, dotted string) (any, bool) {
	if dotted == "" {
		return v, true
	}
	return Lookup(v, strings.Split(dotted, "."))
}

// parseIndex accepts canonical non-negative decimal indices only ("0", "12",
// not "+1" or "01").
func parseIndex(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}
