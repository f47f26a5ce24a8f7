// Package commands provides CLI command handlers for uu.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/timepp/uu/internal/config"
	"github.com/timepp/uu/internal/fileutil"
	"github.com/timepp/uu/logging"
	"github.com/timepp/uu/value"
)

// ErrNoMatch is returned by find when no leaf matches the keyword.
var ErrNoMatch = errors.New("no match")

// CommonFlags are accepted by every command that reads a document.
type CommonFlags struct {
	ConfigPath string
	Verbose    bool
	Input      string // Input format: auto, json, yaml, msgpack.
}

func registerCommonFlags(fs *flag.FlagSet, flags *CommonFlags) {
	fs.StringVar(&flags.ConfigPath, "config", "", "TOML config file (default: $"+config.EnvConfigPath+")")
	fs.BoolVar(&flags.Verbose, "v", false, "enable debug logging")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging")
	fs.StringVar(&flags.Input, "i", string(value.FormatAuto), "input format: auto, json, yaml, msgpack")
	fs.StringVar(&flags.Input, "input", string(value.FormatAuto), "input format: auto, json, yaml, msgpack")
}

// env bundles what a command needs after flag parsing.
type env struct {
	cfg    *config.Config
	logger logging.Logger
	set    map[string]bool
}

// setup installs the logger as the slog default and loads the configuration.
// set records the flags given explicitly on the command line, which take
// precedence over configured defaults.
func setup(fs *flag.FlagSet, common *CommonFlags) (*env, error) {
	logger := logging.NewTerminal(os.Stderr, common.Verbose)
	slog.SetDefault(logger.Slog())

	cfg, err := config.Load(common.ConfigPath)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:    cfg,
		logger: logging.ForComponent(logger, fs.Name()),
		set:    explicitFlags(fs),
	}, nil
}

func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// given reports whether any of the named flags was set explicitly.
func (e *env) given(names ...string) bool {
	for _, n := range names {
		if e.set[n] {
			return true
		}
	}
	return false
}

// loadDocument reads and decodes path ("-" for stdin).
func (e *env) loadDocument(path, format string) (any, error) {
	f, err := value.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	in, err := fileutil.Read(path, e.cfg.MaxInputSize)
	if err != nil {
		return nil, err
	}
	v, err := in.Decode(f,
		value.WithMaxDepth(e.cfg.DecodeMaxDepth),
		value.WithMaxNodes(e.cfg.DecodeMaxNodes))
	if err != nil {
		return nil, err
	}
	e.logger.Debug("document loaded",
		"name", in.Name,
		"bytes", len(in.Data),
		"compression", string(in.Compression),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return v, nil
}

// parseArgs parses args, mapping -h to a nil error.
func parseArgs(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// requireArgs checks the positional argument count.
func requireArgs(fs *flag.FlagSet, n int, what string) error {
	if fs.NArg() != n {
		fs.Usage()
		return fmt.Errorf("%s command requires %s", fs.Name(), what)
	}
	return nil
}
