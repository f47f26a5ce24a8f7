package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/timepp/uu/internal/cliutil"
	"github.com/timepp/uu/serializer"
	"github.com/timepp/uu/value"
	"github.com/timepp/uu/walker"
)

// FindFlags contains flags for the find command
type FindFlags struct {
	CommonFlags
	IgnoreCase bool
	ShowValue  bool
}

// SetupFindFlags creates and configures a FlagSet for the find command.
// Returns the FlagSet and a FindFlags struct with bound flag variables.
func SetupFindFlags() (*flag.FlagSet, *FindFlags) {
	fs := flag.NewFlagSet("find", flag.ContinueOnError)
	flags := &FindFlags{}

	registerCommonFlags(fs, &flags.CommonFlags)
	fs.BoolVar(&flags.IgnoreCase, "ignore-case", false, "match regardless of case (default from config case_sensitive)")
	fs.BoolVar(&flags.ShowValue, "show-value", false, "print the matched value after the path")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: uu find [flags] <keyword> <file|->\n\n")
		cliutil.Writef(fs.Output(), "Print the path of the first leaf whose value contains keyword.\n")
		cliutil.Writef(fs.Output(), "Numbers must match exactly; strings and booleans match by substring.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    A match was found\n")
		cliutil.Writef(fs.Output(), "  1    No match, or the document could not be read\n")
	}

	return fs, flags
}

// HandleFind executes the find command
func HandleFind(args []string) error {
	fs, flags := SetupFindFlags()
	if ok, err := parseArgs(fs, args); !ok {
		return err
	}
	if err := requireArgs(fs, 2, "a keyword and one file path or '-' for stdin"); err != nil {
		return err
	}
	keyword := fs.Arg(0)
	if keyword == "" {
		return fmt.Errorf("find: keyword must not be empty")
	}

	e, err := setup(fs, &flags.CommonFlags)
	if err != nil {
		return err
	}
	caseSensitive := e.cfg.CaseSensitive
	if e.given("ignore-case") {
		caseSensitive = !flags.IgnoreCase
	}

	v, err := e.loadDocument(fs.Arg(1), flags.Input)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}

	path, ok := walker.FuzzyFind(v, keyword, caseSensitive)
	if !ok {
		return fmt.Errorf("find: %q: %w", keyword, ErrNoMatch)
	}
	if !flags.ShowValue {
		cliutil.Writef(os.Stdout, "%s\n", displayDotted(path))
		return nil
	}
	leaf, _ := value.Lookup(v, path)
	cliutil.Writef(os.Stdout, "%s\t%s\n", displayDotted(path), serializer.Stringify(leaf))
	return nil
}
