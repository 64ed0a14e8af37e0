// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mkihara/vitewind/internal/config"
	"github.com/mkihara/vitewind/internal/meta"
	"github.com/mkihara/vitewind/internal/version"
)

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	New     NewCmd     `cmd:"" default:"withargs" help:"Scaffold a new Vite + React + Tailwind project"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// NewCmd scaffolds a project. With no arguments every input is prompted.
type NewCmd struct {
	Name     string `arg:"" optional:"" help:"Project name (prompted when omitted)"`
	Language string `short:"l" help:"Project language: javascript or typescript (prompted when omitted)"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	// Load .env from the working directory when present.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Interactive Vite + React + Tailwind project scaffolder"),
		kong.Exit(func(int) {}),
		kong.Writers(out, out),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	command := ctx.Command()
	switch {
	case command == "version":
		fmt.Fprintln(out, version.GetVersion())
		return 0
	case command == "new" || strings.HasPrefix(command, "new "):
		return runNew(cli, deps, out)
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
