package serializer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/timepp/uu/internal/ancestry"
	"github.com/timepp/uu/logging"
	"github.com/timepp/uu/value"
)

const (
	// compactLineLimit is the total rendered child length below which a
	// container stays on one line in compact mode.
	compactLineLimit = 60

	// charsMarkerReserve is the room kept for the " …K more chars…" suffix.
	charsMarkerReserve = 12
)

// Result holds the serialized text and the budget counters of one call.
type Result struct {
	// Text is the rendered output.
	Text string

	// CircularRefs counts references replaced by a circular marker.
	CircularRefs int

	// TrimmedStrings counts strings cut to the maximum length.
	TrimmedStrings int

	// TrimmedArrays counts arrays cut to the maximum size.
	TrimmedArrays int
}

// Truncated reports whether any string or array was cut.
func (r *Result) Truncated() bool {
	return r.TrimmedStrings > 0 || r.TrimmedArrays > 0
}

// Serializer renders values with a fixed configuration.
// A Serializer is immutable after New and safe for concurrent use.
type Serializer struct {
	indent       string
	compact      bool
	maxStringLen int
	maxArrayLen  int
	logger       logging.Logger
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithIndent sets the indent unit. An empty unit means single-line output.
func WithIndent(unit string) Option {
	return func(s *Serializer) { s.indent = unit }
}

// WithIndentWidth sets the indent unit to n spaces. Non-positive n means
// single-line output.
func WithIndentWidth(n int) Option {
	return func(s *Serializer) {
		if n > 0 {
			s.indent = strings.Repeat(" ", n)
		} else {
			s.indent = ""
		}
	}
}

// WithCompact keeps short containers on one line when an indent is set.
// Default is true.
func WithCompact(compact bool) Option {
	return func(s *Serializer) { s.compact = compact }
}

// WithMaxStringLength bounds string length in characters.
// Non-positive values mean unbounded.
func WithMaxStringLength(n int) Option {
	return func(s *Serializer) { s.maxStringLen = n }
}

// WithMaxArraySize bounds the number of rendered array elements, the trailing
// marker included. Non-positive values mean unbounded.
func WithMaxArraySize(n int) Option {
	return func(s *Serializer) { s.maxArrayLen = n }
}

// WithLogger sets the logger for truncation diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(s *Serializer) { s.logger = logging.ForComponent(l, "serializer") }
}

// New creates a Serializer. By default output is single-line, compact and
// unbounded.
func New(opts ...Option) *Serializer {
	s := &Serializer{
		compact: true,
		logger:  logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serialize renders v with the given options.
func Serialize(v any, opts ...Option) *Result {
	return New(opts...).Serialize(v)
}

// Serialize renders v. It never fails.
func (s *Serializer) Serialize(v any) *Result {
	st := &state{
		Serializer: s,
		stack:      ancestry.New(16),
		res:        &Result{},
	}
	st.res.Text = st.render(v)
	if st.res.CircularRefs > 0 || st.res.Truncated() {
		s.logger.Debug("serialization replaced content with markers",
			"circular_refs", st.res.CircularRefs,
			"trimmed_strings", st.res.TrimmedStrings,
			"trimmed_arrays", st.res.TrimmedArrays,
		)
	}
	return st.res
}

// Stringify renders v on a single line without budgets.
func Stringify(v any) string {
	return StringifyIndent(v, "")
}

// StringifyIndent renders v without budgets, one child per line using the
// given indent unit. Cycles are rendered as circular markers.
func StringifyIndent(v any, indent string) string {
	return New(WithIndent(indent), WithCompact(false)).Serialize(v).Text
}

// state is the per-call rendering context.
type state struct {
	*Serializer
	stack *ancestry.Stack
	res   *Result
}

func (st *state) render(v any) string {
	switch value.KindOf(v) {
	case value.KindNull:
		return "null"
	case value.KindBool:
		return strconv.FormatBool(v.(bool))
	case value.KindNumber:
		text, _ := value.FormatNumber(v)
		return text
	case value.KindString:
		return quote(st.trimString(v.(string)))
	case value.KindOpaque:
		return quote(value.OpaqueText(v))
	}

	if i := st.stack.IndexOf(v); i >= 0 {
		st.res.CircularRefs++
		return quote(CircularMarker(i))
	}

	depth := st.stack.Len()
	st.stack.Push(v)
	defer st.stack.Pop()

	switch t := v.(type) {
	case *value.Array:
		return st.compose(st.renderItems(t.Items), '[', ']', depth)
	default:
		o := v.(*value.Object)
		parts := make([]string, 0, o.Len())
		sep := ":"
		if st.indent != "" {
			sep = ": "
		}
		o.Range(func(k string, child any) bool {
			parts = append(parts, quote(k)+sep+st.render(child))
			return true
		})
		return st.compose(parts, '{', '}', depth)
	}
}

func (st *state) renderItems(items []any) []string {
	n := len(items)
	if st.maxArrayLen <= 0 || n <= st.maxArrayLen {
		parts := make([]string, 0, n)
		for _, item := range items {
			parts = append(parts, st.render(item))
		}
		return parts
	}

	st.res.TrimmedArrays++
	keep := st.maxArrayLen - 1
	parts := make([]string, 0, st.maxArrayLen)
	for _, item := range items[:keep] {
		parts = append(parts, st.render(item))
	}
	// The marker is an ordinary string element, so the string budget applies to it.
	return append(parts, quote(st.trimString(MoreItemsMarker(n-keep))))
}

// trimString cuts s to the configured length, counting characters (runes).
func (st *state) trimString(s string) string {
	if st.maxStringLen <= 0 {
		return s
	}
	n := utf8.RuneCountInString(s)
	if n <= st.maxStringLen {
		return s
	}
	st.res.TrimmedStrings++
	// Below the reserve nothing is kept and K is the whole length, not
	// length-max+reserve, so the count stays the number of runes removed.
	keep := max(st.maxStringLen-charsMarkerReserve, 0)
	cut := 0
	for i := 0; i < keep; i++ {
		_, size := utf8.DecodeRuneInString(s[cut:])
		cut += size
	}
	return s[:cut] + " " + MoreCharsMarker(n-keep)
}

// compose joins rendered children into a container at the given depth.
func (st *state) compose(parts []string, lbrack, rbrack byte, depth int) string {
	if len(parts) == 0 {
		return string([]byte{lbrack, rbrack})
	}

	var b strings.Builder
	b.WriteByte(lbrack)
	if st.indent == "" || (st.compact && fitsOnLine(parts)) {
		sep := ","
		if st.indent != "" {
			sep = ", "
		}
		for i, p := range parts {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(p)
		}
		b.WriteByte(rbrack)
		return b.String()
	}

	pad := strings.Repeat(st.indent, depth)
	b.WriteByte('\n')
	for i, p := range parts {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(pad)
		b.WriteString(st.indent)
		b.WriteString(p)
	}
	b.WriteByte('\n')
	b.WriteString(pad)
	b.WriteByte(rbrack)
	return b.String()
}

func fitsOnLine(parts []string) bool {
	total := 0
	for _, p := range parts {
		if strings.IndexByte(p, '\n') >= 0 {
			return false
		}
		total += utf8.RuneCountInString(p)
	}
	return total < compactLineLimit
}
