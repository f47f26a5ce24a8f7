package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/timepp/uu/internal/cliutil"
	"github.com/timepp/uu/internal/config"
	"github.com/timepp/uu/internal/fileutil"
	"github.com/timepp/uu/internal/highlight"
	"github.com/timepp/uu/segmenter"
	"github.com/timepp/uu/serializer"
)

// HighlightFlags contains flags for the highlight command
type HighlightFlags struct {
	CommonFlags
	Color     string
	Raw       bool
	MaxString int
	MaxArray  int
	Rules     []segmenter.Rule
}

// SetupHighlightFlags creates and configures a FlagSet for the highlight command.
// Returns the FlagSet and a HighlightFlags struct with bound flag variables.
func SetupHighlightFlags() (*flag.FlagSet, *HighlightFlags) {
	fs := flag.NewFlagSet("highlight", flag.ContinueOnError)
	flags := &HighlightFlags{}
	def := config.Default()

	registerCommonFlags(fs, &flags.CommonFlags)
	fs.StringVar(&flags.Color, "color", def.Color, "colour mode: auto, always, never")
	fs.BoolVar(&flags.Raw, "raw", false, "highlight the input text as is instead of decoding and re-serializing it")
	fs.IntVar(&flags.MaxString, "max-string", def.MaxStringLength, "trim strings longer than this many characters (0 = unbounded)")
	fs.IntVar(&flags.MaxArray, "max-array", def.MaxArraySize, "trim arrays longer than this many elements (0 = unbounded)")
	fs.Func("rule", "extra rule as category=regexp, tried before the JSON rules (repeatable)", func(s string) error {
		r, err := parseRule(s)
		if err != nil {
			return err
		}
		flags.Rules = append(flags.Rules, r)
		return nil
	})

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: uu highlight [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Print a document as syntax-highlighted JSON.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  uu highlight data.json\n")
		cliutil.Writef(fs.Output(), "  uu highlight -raw -rule 'id=\"id\":' response.json\n")
		cliutil.Writef(fs.Output(), "  uu highlight -color always data.yaml | less -R\n")
	}

	return fs, flags
}

// parseRule parses "category=regexp".
func parseRule(s string) (segmenter.Rule, error) {
	category, pattern, ok := strings.Cut(s, "=")
	if !ok || category == "" || pattern == "" {
		return segmenter.Rule{}, fmt.Errorf("rule %q: expected category=regexp", s)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return segmenter.Rule{}, fmt.Errorf("rule %q: %w", s, err)
	}
	return segmenter.Rule{Pattern: re, Category: category}, nil
}

// HandleHighlight executes the highlight command
func HandleHighlight(args []string) error {
	fs, flags := SetupHighlightFlags()
	if ok, err := parseArgs(fs, args); !ok {
		return err
	}
	if err := requireArgs(fs, 1, "exactly one file path or '-' for stdin"); err != nil {
		return err
	}

	e, err := setup(fs, &flags.CommonFlags)
	if err != nil {
		return err
	}
	if !e.given("color") {
		flags.Color = e.cfg.Color
	}
	if !e.given("max-string") {
		flags.MaxString = e.cfg.MaxStringLength
	}
	if !e.given("max-array") {
		flags.MaxArray = e.cfg.MaxArraySize
	}

	text, err := flags.text(e, fs.Arg(0))
	if err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	return renderHighlighted(os.Stdout, text, flags.Color, flags.Rules)
}

// text returns the JSON text to highlight.
func (f *HighlightFlags) text(e *env, path string) (string, error) {
	if f.Raw {
		in, err := fileutil.Read(path, e.cfg.MaxInputSize)
		if err != nil {
			return "", err
		}
		return string(in.Data), nil
	}
	v, err := e.loadDocument(path, f.Input)
	if err != nil {
		return "", err
	}
	return serializer.Serialize(v,
		serializer.WithIndentWidth(e.cfg.Indent),
		serializer.WithCompact(e.cfg.Compact),
		serializer.WithMaxStringLength(f.MaxString),
		serializer.WithMaxArraySize(f.MaxArray),
		serializer.WithLogger(e.logger),
	).Text, nil
}

// renderHighlighted segments text and writes it with colours. Markers are
// highlighted ahead of caller rules so elided content stands out.
func renderHighlighted(w io.Writer, text, mode string, rules []segmenter.Rule) error {
	extra := make([]segmenter.Rule, 0, len(rules)+1)
	extra = append(extra, segmenter.MarkerRule())
	extra = append(extra, rules...)
	segs := segmenter.SegmentJSON(text, extra...)

	h := highlight.New(w, mode)
	if err := h.Write(w, segs); err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		cliutil.Writef(w, "\n")
	}
	return nil
}
