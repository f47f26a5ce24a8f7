// Package highlight renders segmented text for the terminal.
//
// Each segment category maps to a lipgloss style. Gap segments (empty
// category) are written verbatim, so with colour disabled the output is
// byte-for-byte the input text.
package highlight

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/timepp/uu/segmenter"
)

// Colour modes.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

var (
	colorTeal   = lipgloss.Color("36")  // keys
	colorGreen  = lipgloss.Color("35")  // strings
	colorBlue   = lipgloss.Color("75")  // numbers
	colorAmber  = lipgloss.Color("220") // booleans
	colorGray   = lipgloss.Color("245") // null
	colorDim    = lipgloss.Color("240") // punctuation
	colorRed    = lipgloss.Color("167") // markers
	colorOrange = lipgloss.Color("208") // caller-defined categories
)

// Highlighter renders segments with a fixed theme.
type Highlighter struct {
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
	fallback lipgloss.Style
	plain    bool
}

// New creates a Highlighter for output written to w. mode is one of
// ModeAuto (detect from w), ModeAlways or ModeNever.
func New(w io.Writer, mode string) *Highlighter {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ModeAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ModeNever:
		r.SetColorProfile(termenv.Ascii)
	}

	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Highlighter{
		renderer: r,
		styles: map[string]lipgloss.Style{
			segmenter.CategoryKey:         base.Foreground(colorTeal),
			segmenter.CategoryString:      base.Foreground(colorGreen),
			segmenter.CategoryNumber:      base.Foreground(colorBlue),
			segmenter.CategoryTrue:        base.Foreground(colorAmber),
			segmenter.CategoryFalse:       base.Foreground(colorAmber),
			segmenter.CategoryNull:        base.Foreground(colorGray).Italic(true),
			segmenter.CategoryPunctuation: base.Foreground(colorDim),
			segmenter.CategoryMarker:      base.Foreground(colorRed).Bold(true),
		},
		fallback: base.Foreground(colorOrange),
		plain:    r.ColorProfile() == termenv.Ascii,
	}
}

// NewStyle returns an empty style bound to the highlighter's output.
func (h *Highlighter) NewStyle() lipgloss.Style {
	return h.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// SetStyle overrides the style of a category. Use NewStyle to build styles
// that follow the highlighter's colour profile.
func (h *Highlighter) SetStyle(category string, style lipgloss.Style) {
	h.styles[category] = style
}

// Render returns the highlighted text.
func (h *Highlighter) Render(segs []segmenter.Segment) string {
	if h.plain {
		return segmenter.Join(segs)
	}
	var b strings.Builder
	for _, s := range segs {
		if s.Category == "" {
			b.WriteString(s.Content)
			continue
		}
		style, ok := h.styles[s.Category]
		if !ok {
			style = h.fallback
		}
		b.WriteString(style.Render(s.Content))
	}
	return b.String()
}

// Write renders segs to w.
func (h *Highlighter) Write(w io.Writer, segs []segmenter.Segment) error {
	_, err := io.WriteString(w, h.Render(segs))
	return err
}
