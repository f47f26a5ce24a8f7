// Package segmenter splits text into category-tagged segments using ordered,
// priority-resolved regular expressions.
//
// Rules are applied in order; a match from a later rule is dropped when it
// overlaps a match already accepted from an earlier rule. Text not covered by
// any match is emitted as segments with an empty category, so the segment
// contents always concatenate back to the input.
//
//	segs := segmenter.SegmentJSON(`{"name": "value3389"}`)
//	for _, s := range segs {
//	    fmt.Printf("%q %s\n", s.Content, s.Category)
//	}
package segmenter

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

// Rule tags every match of Pattern with Category.
type Rule struct {
	Pattern  *regexp.Regexp
	Category string
}

// Segment is a contiguous piece of the input text.
// Gap text between matches has an empty Category.
type Segment struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

type span struct {
	start, end int
	category   string
}

// Split segments text with rules, earlier rules taking priority.
// Zero-length matches are ignored. Rules with a nil Pattern are skipped.
func Split(text string, rules []Rule) []Segment {
	// accepted is kept sorted by start; spans never overlap, so ends are sorted too.
	var accepted []span
	for _, r := range rules {
		if r.Pattern == nil {
			continue
		}
		for _, m := range r.Pattern.FindAllStringIndex(text, -1) {
			start, end := m[0], m[1]
			if start == end {
				continue
			}
			i, _ := slices.BinarySearchFunc(accepted, end, func(s span, target int) int {
				return cmp.Compare(s.start, target)
			})
			if i > 0 && accepted[i-1].end > start {
				continue
			}
			accepted = slices.Insert(accepted, i, span{start: start, end: end, category: r.Category})
		}
	}

	segs := make([]Segment, 0, 2*len(accepted)+1)
	cursor := 0
	for _, s := range accepted {
		if s.start > cursor {
			segs = append(segs, Segment{Content: text[cursor:s.start]})
		}
		segs = append(segs, Segment{Content: text[s.start:s.end], Category: s.category})
		cursor = s.end
	}
	if cursor < len(text) {
		segs = append(segs, Segment{Content: text[cursor:]})
	}
	return segs
}

// Join concatenates segment contents.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Content)
	}
	return b.String()
}
