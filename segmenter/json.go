package segmenter

import "regexp"

// Categories produced by JSONRules and MarkerRule.
const (
	CategoryKey         = "key"
	CategoryString      = "string"
	CategoryNumber      = "number"
	CategoryTrue        = "true"
	CategoryFalse       = "false"
	CategoryNull        = "null"
	CategoryPunctuation = "punctuation"
	CategoryMarker      = "marker"
)

var (
	keyPattern         = regexp.MustCompile(`"[^"]+":`)
	stringPattern      = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)
	numberPattern      = regexp.MustCompile(`\d+`)
	truePattern        = regexp.MustCompile(`true`)
	falsePattern       = regexp.MustCompile(`false`)
	nullPattern        = regexp.MustCompile(`null`)
	punctuationPattern = regexp.MustCompile(`[{}[\]:,]`)

	markerPattern = regexp.MustCompile(`…[0-9]+ more (?:chars|items)…|<<circular ref to (?:the root object|parent level [0-9]+)>>`)
)

// JSONRules returns the rules for JSON text, highest priority first. A key
// (quoted string followed by a colon) is matched before a plain string.
// The returned slice is fresh and may be modified.
func JSONRules() []Rule {
	return []Rule{
		{Pattern: keyPattern, Category: CategoryKey},
		{Pattern: stringPattern, Category: CategoryString},
		{Pattern: numberPattern, Category: CategoryNumber},
		{Pattern: truePattern, Category: CategoryTrue},
		{Pattern: falsePattern, Category: CategoryFalse},
		{Pattern: nullPattern, Category: CategoryNull},
		{Pattern: punctuationPattern, Category: CategoryPunctuation},
	}
}

// MarkerRule matches the truncation and circular-reference markers written
// by package serializer.
func MarkerRule() Rule {
	return Rule{Pattern: markerPattern, Category: CategoryMarker}
}

// SegmentJSON segments JSON text. Extra rules take priority over the JSON
// rules, in the order given.
func SegmentJSON(text string, extra ...Rule) []Segment {
	rules := make([]Rule, 0, len(extra)+7)
	rules = append(rules, extra...)
	rules = append(rules, JSONRules()...)
	return Split(text, rules)
}
