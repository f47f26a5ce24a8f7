package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/timepp/uu/internal/cliutil"
	"github.com/timepp/uu/internal/config"
	"github.com/timepp/uu/serializer"
	"github.com/timepp/uu/walker"
)

// valuePreviewLength bounds leaf values shown by walk.
const valuePreviewLength = 60

// WalkFlags contains flags for the walk command
type WalkFlags struct {
	CommonFlags
	MaxDepth int
	Kind     string
	Format   string
	Quiet    bool
	Stats    bool
}

// walkRow is one visited node in structured output.
type walkRow struct {
	Path  string `json:"path"            yaml:"path"`
	Kind  string `json:"kind"            yaml:"kind"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

type walkSummary struct {
	Leaves      int    `json:"leaves"       yaml:"leaves"`
	Objects     int    `json:"objects"      yaml:"objects"`
	Loops       int    `json:"loops"        yaml:"loops"`
	MaxDepth    int    `json:"max_depth"    yaml:"max_depth"`
	DeepestPath string `json:"deepest_path" yaml:"deepest_path"`
}

// SetupWalkFlags creates and configures a FlagSet for the walk command.
// Returns the FlagSet and a WalkFlags struct with bound flag variables.
func SetupWalkFlags() (*flag.FlagSet, *WalkFlags) {
	fs := flag.NewFlagSet("walk", flag.ContinueOnError)
	flags := &WalkFlags{}

	registerCommonFlags(fs, &flags.CommonFlags)
	fs.IntVar(&flags.MaxDepth, "max-depth", config.Default().WalkMaxDepth, "do not descend below this depth (negative = unlimited)")
	fs.StringVar(&flags.Kind, "kind", "", "only list nodes of this kind: leaf, object, loop")
	fs.StringVar(&flags.Format, "format", cliutil.FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress headers for piping")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress headers for piping")
	fs.BoolVar(&flags.Stats, "stats", false, "print a shape summary instead of the node list")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: uu walk [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "List every node of a document depth-first with its path and kind.\n")
		cliutil.Writef(fs.Output(), "A loop is a reference back to one of the node's own ancestors.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  uu walk data.yaml\n")
		cliutil.Writef(fs.Output(), "  uu walk -kind loop -q graph.yaml\n")
		cliutil.Writef(fs.Output(), "  uu walk -stats -format json big.json.gz\n")
	}

	return fs, flags
}

// HandleWalk executes the walk command
func HandleWalk(args []string) error {
	fs, flags := SetupWalkFlags()
	if ok, err := parseArgs(fs, args); !ok {
		return err
	}
	if err := cliutil.ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if err := validateKind(flags.Kind); err != nil {
		return err
	}
	if err := requireArgs(fs, 1, "exactly one file path or '-' for stdin"); err != nil {
		return err
	}

	e, err := setup(fs, &flags.CommonFlags)
	if err != nil {
		return err
	}
	if !e.given("max-depth") {
		flags.MaxDepth = e.cfg.WalkMaxDepth
	}

	v, err := e.loadDocument(fs.Arg(0), flags.Input)
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}
	if flags.Stats {
		return renderWalkStats(os.Stdout, walker.CollectStats(v), flags.Format)
	}

	rows, err := collectWalkRows(v, flags, e)
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}
	if len(rows) == 0 {
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "No nodes matched the given filters.\n")
		}
		return nil
	}
	return renderWalkRows(os.Stdout, rows, flags)
}

func validateKind(kind string) error {
	switch kind {
	case "", walker.Leaf.String(), walker.Object.String(), walker.Loop.String():
		return nil
	}
	return fmt.Errorf("invalid kind '%s'. Valid kinds: leaf, object, loop", kind)
}

func collectWalkRows(v any, flags *WalkFlags, e *env) ([]walkRow, error) {
	var rows []walkRow
	err := walker.Walk(v,
		walker.WithMaxDepth(flags.MaxDepth),
		walker.WithLogger(e.logger),
		walker.WithVisitor(func(path []string, node any, kind walker.NodeKind) walker.Action {
			if flags.Kind != "" && kind.String() != flags.Kind {
				return walker.Continue
			}
			row := walkRow{Path: displayDotted(path), Kind: kind.String()}
			if kind == walker.Leaf {
				row.Value = serializer.Serialize(node, serializer.WithMaxStringLength(valuePreviewLength)).Text
			}
			rows = append(rows, row)
			return walker.Continue
		}),
	)
	return rows, err
}

func renderWalkRows(w io.Writer, rows []walkRow, flags *WalkFlags) error {
	if flags.Format != cliutil.FormatText {
		return cliutil.OutputStructured(w, rows, flags.Format)
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{r.Path, r.Kind, r.Value})
	}
	RenderTable(w, []string{"PATH", "KIND", "VALUE"}, table, flags.Quiet)
	return nil
}

func renderWalkStats(w io.Writer, stats walker.Stats, format string) error {
	summary := walkSummary{
		Leaves:      stats.Leaves,
		Objects:     stats.Objects,
		Loops:       stats.Loops,
		MaxDepth:    stats.MaxDepth,
		DeepestPath: displayDotted(stats.DeepestPath),
	}
	if format != cliutil.FormatText {
		return cliutil.OutputStructured(w, summary, format)
	}
	cliutil.Writef(w, "Leaves: %d\n", summary.Leaves)
	cliutil.Writef(w, "Objects: %d\n", summary.Objects)
	cliutil.Writef(w, "Loops: %d\n", summary.Loops)
	cliutil.Writef(w, "Max Depth: %d\n", summary.MaxDepth)
	cliutil.Writef(w, "Deepest Path: %s\n", summary.DeepestPath)
	return nil
}

// displayDotted joins path with "." and shows the root as "$".
func displayDotted(path []string) string {
	if len(path) == 0 {
		return "$"
	}
	return strings.Join(path, ".")
}
