package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/timepp/uu/internal/cliutil"
	"github.com/timepp/uu/internal/config"
	"github.com/timepp/uu/internal/fileutil"
	"github.com/timepp/uu/serializer"
)

// StringifyFlags contains flags for the stringify command
type StringifyFlags struct {
	CommonFlags
	Indent    int
	Compact   bool
	MaxString int
	MaxArray  int
	Output    string
	Stats     bool
}

// SetupStringifyFlags creates and configures a FlagSet for the stringify command.
// Returns the FlagSet and a StringifyFlags struct with bound flag variables.
func SetupStringifyFlags() (*flag.FlagSet, *StringifyFlags) {
	fs := flag.NewFlagSet("stringify", flag.ContinueOnError)
	flags := &StringifyFlags{}
	def := config.Default()

	registerCommonFlags(fs, &flags.CommonFlags)
	fs.IntVar(&flags.Indent, "indent", def.Indent, "spaces per nesting level; 0 prints a single line")
	fs.BoolVar(&flags.Compact, "compact", def.Compact, "keep short containers on one line")
	fs.IntVar(&flags.MaxString, "max-string", def.MaxStringLength, "trim strings longer than this many characters (0 = unbounded)")
	fs.IntVar(&flags.MaxArray, "max-array", def.MaxArraySize, "trim arrays longer than this many elements (0 = unbounded)")
	fs.StringVar(&flags.Output, "o", "", "output file path; .gz and .zst are compressed (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path; .gz and .zst are compressed (default: stdout)")
	fs.BoolVar(&flags.Stats, "stats", false, "report elided content on stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: uu stringify [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Print a document as JSON. Circular references become markers and\n")
		cliutil.Writef(fs.Output(), "oversized strings and arrays are trimmed when budgets are set.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  uu stringify data.yaml\n")
		cliutil.Writef(fs.Output(), "  uu stringify -max-string 80 -max-array 20 big.json.zst\n")
		cliutil.Writef(fs.Output(), "  cat data.msgpack | uu stringify -i msgpack -indent 0 -\n")
	}

	return fs, flags
}

// HandleStringify executes the stringify command
func HandleStringify(args []string) error {
	fs, flags := SetupStringifyFlags()
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
	flags.applyConfig(e)

	v, err := e.loadDocument(fs.Arg(0), flags.Input)
	if err != nil {
		return fmt.Errorf("stringify: %w", err)
	}
	res := serializer.Serialize(v, flags.options(e)...)

	if flags.Stats {
		cliutil.Writef(os.Stderr, "circular refs: %d, trimmed strings: %d, trimmed arrays: %d\n",
			res.CircularRefs, res.TrimmedStrings, res.TrimmedArrays)
	}
	return writeText(os.Stdout, flags.Output, res.Text)
}

// applyConfig fills flags that were not given on the command line from the
// loaded configuration.
func (f *StringifyFlags) applyConfig(e *env) {
	if !e.given("indent") {
		f.Indent = e.cfg.Indent
	}
	if !e.given("compact") {
		f.Compact = e.cfg.Compact
	}
	if !e.given("max-string") {
		f.MaxString = e.cfg.MaxStringLength
	}
	if !e.given("max-array") {
		f.MaxArray = e.cfg.MaxArraySize
	}
}

func (f *StringifyFlags) options(e *env) []serializer.Option {
	return []serializer.Option{
		serializer.WithIndentWidth(f.Indent),
		serializer.WithCompact(f.Compact),
		serializer.WithMaxStringLength(f.MaxString),
		serializer.WithMaxArraySize(f.MaxArray),
		serializer.WithLogger(e.logger),
	}
}

// writeText writes text plus a newline to path, or to w when path is empty.
func writeText(w io.Writer, path, text string) error {
	if path == "" {
		cliutil.Writef(w, "%s\n", text)
		return nil
	}
	return fileutil.WriteFile(path, []byte(text+"\n"))
}
