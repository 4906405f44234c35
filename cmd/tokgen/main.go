package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tokgen/internal/diagfmt"
	"tokgen/internal/version"
)

// errStale makes `tokgen check` exit 1 without printing an error.
var errStale = errors.New("artifacts are out of date")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tokgen",
		Short:         "Canonical lexical token table generator",
		Long:          `tokgen keeps an ANTLR tokens file and a Go symbol module in agreement on every token ID`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupColor(cmd)
		},
	}

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().String("trace", "", "write a trace to file (- for stderr, *.ndjson for NDJSON)")
	root.PersistentFlags().String("trace-level", "off", "trace level (off|error|run|stage|debug)")
	root.PersistentFlags().Duration("trace-heartbeat", 0, "heartbeat interval while the grammar compiler runs (0 disables)")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	if !errors.Is(err, errStale) {
		diagfmt.FormatError(os.Stderr, err)
	}
	os.Exit(1)
}

func setupColor(cmd *cobra.Command) error {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(value) {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto", "":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
