package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/timepp/uu/internal/cliutil"
	"github.com/timepp/uu/internal/fileutil"
	"github.com/timepp/uu/serializer"
	"github.com/timepp/uu/uuerrors"
	"github.com/timepp/uu/value"
	"github.com/timepp/uu/walker"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	CommonFlags
	Target string
	Output string
	Indent int
	Quiet  bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	registerCommonFlags(fs, &flags.CommonFlags)
	fs.StringVar(&flags.Target, "t", "", "target format: json, yaml, msgpack (default: from the output name, else json)")
	fs.StringVar(&flags.Target, "to", "", "target format: json, yaml, msgpack (default: from the output name, else json)")
	fs.StringVar(&flags.Output, "o", "", "output file path; .gz and .zst are compressed (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path; .gz and .zst are compressed (default: stdout)")
	fs.IntVar(&flags.Indent, "indent", 2, "JSON indentation width; 0 prints a single line")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: uu convert [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Convert a document between JSON, YAML and msgpack, keeping key order.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  uu convert -to yaml data.json\n")
		cliutil.Writef(fs.Output(), "  uu convert data.yaml -o data.msgpack.zst\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Documents containing cycles cannot be converted; use stringify instead\n")
		cliutil.Writef(fs.Output(), "  - YAML aliases are expanded in every target format\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()
	if ok, err := parseArgs(fs, args); !ok {
		return err
	}
	if err := requireArgs(fs, 1, "exactly one file path or '-' for stdin"); err != nil {
		return err
	}
	target, err := resolveTarget(flags.Target, flags.Output)
	if err != nil {
		return err
	}

	e, err := setup(fs, &flags.CommonFlags)
	if err != nil {
		return err
	}
	if !e.given("indent") {
		flags.Indent = e.cfg.Indent
	}

	v, err := e.loadDocument(fs.Arg(0), flags.Input)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	data, err := encodeDocument(v, target, flags.Indent)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	if flags.Output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("convert: writing output: %w", err)
		}
		return nil
	}
	if err := fileutil.WriteFile(flags.Output, data); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Wrote %s (%s, %d bytes before compression)\n", flags.Output, target, len(data))
	}
	return nil
}

// resolveTarget picks the output format from -to, then from the output name.
func resolveTarget(target, output string) (value.Format, error) {
	if target == "" {
		if f := fileutil.FormatFromName(output); f != value.FormatAuto {
			return f, nil
		}
		return value.FormatJSON, nil
	}
	f, err := value.ParseFormat(target)
	if err != nil {
		return "", err
	}
	if f == value.FormatAuto {
		return "", fmt.Errorf("invalid target format '%s'. Valid formats: json, yaml, msgpack", target)
	}
	return f, nil
}

// encodeDocument renders an acyclic value in the target format.
func encodeDocument(v any, target value.Format, indent int) ([]byte, error) {
	switch target {
	case value.FormatYAML:
		return value.EncodeYAML(v)
	case value.FormatMsgpack:
		return value.EncodeMsgpack(v)
	default:
		if path, ok := walker.FindCycle(v); ok {
			return nil, &uuerrors.CycleError{Path: path, Operation: "encode json"}
		}
		return []byte(serializer.StringifyIndent(v, strings.Repeat(" ", max(indent, 0))) + "\n"), nil
	}
}
