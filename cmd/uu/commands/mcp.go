package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/timepp/uu/internal/cliutil"
	"github.com/timepp/uu/internal/mcpserver"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	CommonFlags
}

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() (*flag.FlagSet, *MCPFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &MCPFlags{}
	registerCommonFlags(fs, &flags.CommonFlags)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: uu mcp [flags]\n\n")
		cliutil.Writef(fs.Output(), "Serve the uu tools over the Model Context Protocol on stdio.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// HandleMCP executes the mcp command. It blocks until the client disconnects
// or the process is interrupted.
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()
	if ok, err := parseArgs(fs, args); !ok {
		return err
	}
	if err := requireArgs(fs, 0, "no arguments"); err != nil {
		return err
	}

	e, err := setup(fs, &flags.CommonFlags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e.logger.Debug("mcp server starting", "cache", e.cfg.CacheEnabled, "result_limit", e.cfg.ResultLimit)
	return mcpserver.Run(ctx, e.cfg)
}
