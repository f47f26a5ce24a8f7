package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/timepp/uu/internal/cliutil"
	"github.com/timepp/uu/value"
	"github.com/timepp/uu/walker"
)

// PropsFlags contains flags for the props command
type PropsFlags struct {
	CommonFlags
	Path    string
	Flatten  bool
	Insights bool
	Format   string
}

// insightPreviewValues is how many of the most common values the text
// rendering of -insights shows per property.
const insightPreviewValues = 5

// SetupPropsFlags creates and configures a FlagSet for the props command.
// Returns the FlagSet and a PropsFlags struct with bound flag variables.
func SetupPropsFlags() (*flag.FlagSet, *PropsFlags) {
	fs := flag.NewFlagSet("props", flag.ContinueOnError)
	flags := &PropsFlags{}

	registerCommonFlags(fs, &flags.CommonFlags)
	fs.StringVar(&flags.Path, "path", "", "dotted path to the array of records (default: the document root)")
	fs.BoolVar(&flags.Flatten, "flatten", false, "list dotted leaf paths below each record instead of top-level keys")
	fs.BoolVar(&flags.Insights, "insights", false, "report value histograms of the informative properties instead of names")
	fs.StringVar(&flags.Format, "format", cliutil.FormatText, "output format: text, json, yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: uu props [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "List the column names of an array of records, in first-seen order.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  uu props users.json\n")
		cliutil.Writef(fs.Output(), "  uu props -path data.items -flatten response.json\n")
		cliutil.Writef(fs.Output(), "  uu props -insights -format json users.json\n")
	}

	return fs, flags
}

// HandleProps executes the props command
func HandleProps(args []string) error {
	fs, flags := SetupPropsFlags()
	if ok, err := parseArgs(fs, args); !ok {
		return err
	}
	if err := cliutil.ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if err := requireArgs(fs, 1, "exactly one file path or '-' for stdin"); err != nil {
		return err
	}

	e, err := setup(fs, &flags.CommonFlags)
	if err != nil {
		return err
	}
	v, err := e.loadDocument(fs.Arg(0), flags.Input)
	if err != nil {
		return fmt.Errorf("props: %w", err)
	}

	if flags.Insights {
		if flags.Flatten {
			return fmt.Errorf("props: -insights and -flatten cannot be combined")
		}
		stats, err := collectInsights(v, flags.Path)
		if err != nil {
			return fmt.Errorf("props: %w", err)
		}
		return renderInsights(os.Stdout, stats, flags.Format)
	}

	props, err := collectProps(v, flags.Path, flags.Flatten)
	if err != nil {
		return fmt.Errorf("props: %w", err)
	}
	return renderProps(os.Stdout, props, flags.Format)
}

func recordsAt(v any, path string) (*value.Array, error) {
	target, ok := value.LookupDotted(v, path)
	if !ok {
		return nil, fmt.Errorf("path %q not found", path)
	}
	arr, ok := target.(*value.Array)
	if !ok || arr == nil {
		return nil, fmt.Errorf("value at %q is %s, not an array", displayPath(path), value.KindOf(target))
	}
	return arr, nil
}

func collectProps(v any, path string, flatten bool) ([]string, error) {
	arr, err := recordsAt(v, path)
	if err != nil {
		return nil, err
	}
	if flatten {
		return walker.FlattenedProperties(arr), nil
	}
	return walker.DataProperties(arr.Items), nil
}

func renderProps(w io.Writer, props []string, format string) error {
	if props == nil {
		props = []string{}
	}
	if format != cliutil.FormatText {
		return cliutil.OutputStructured(w, props, format)
	}
	for _, p := range props {
		cliutil.Writef(w, "%s\n", p)
	}
	return nil
}

func collectInsights(v any, path string) ([]walker.PropStat, error) {
	arr, err := recordsAt(v, path)
	if err != nil {
		return nil, err
	}
	return walker.DataInsights(arr.Items), nil
}

func renderInsights(w io.Writer, stats []walker.PropStat, format string) error {
	if stats == nil {
		stats = []walker.PropStat{}
	}
	if format != cliutil.FormatText {
		return cliutil.OutputStructured(w, stats, format)
	}
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		top := make([]string, 0, insightPreviewValues)
		for _, vc := range s.UniqueValues[:min(len(s.UniqueValues), insightPreviewValues)] {
			top = append(top, fmt.Sprintf("%s (%d)", vc.Value, vc.Count))
		}
		rows = append(rows, []string{s.Property, strconv.Itoa(len(s.UniqueValues)), strings.Join(top, ", ")})
	}
	RenderTable(w, []string{"PROPERTY", "DISTINCT", "TOP VALUES"}, rows, false)
	return nil
}

// displayPath shows an empty dotted path as "$".
func displayPath(p string) string {
	if p == "" {
		return "$"
	}
	return p
}
