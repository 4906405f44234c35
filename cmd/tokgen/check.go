package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tokgen/internal/diagfmt"
	"tokgen/internal/pipeline"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Report artifacts that no longer match the catalog",
		Long:  `check renders both artifacts in memory, compares them with the files on disk and verifies longest-match on every operator prefix pair. It exits 1 when anything is stale.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	cleanup, _, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, err := loadManifest(args)
	if err != nil {
		return err
	}
	drift, err := pipeline.Check(cmd.Context(), &pipeline.Request{Config: cfg})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if drift.Clean() {
		if !quiet {
			fmt.Fprintln(out, "artifacts are up to date")
		}
		return nil
	}
	if !quiet {
		printDrift(out, cfg.Root, drift)
	}
	return errStale
}

var (
	staleColor   = color.New(color.FgRed, color.Bold)
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
)

func printDrift(out io.Writer, root string, drift pipeline.Drift) {
	for _, f := range drift.Files {
		if f.Missing {
			fmt.Fprintf(out, "%s %s (missing)\n", staleColor.Sprint("stale:"), relPath(root, f.Path))
			continue
		}
		fmt.Fprintf(out, "%s %s\n", staleColor.Sprint("stale:"), relPath(root, f.Path))
		for _, line := range strings.Split(strings.TrimRight(f.Diff, "\n"), "\n") {
			switch {
			case strings.HasPrefix(line, "+"):
				fmt.Fprintln(out, addedColor.Sprint(line))
			case strings.HasPrefix(line, "-"):
				fmt.Fprintln(out, removedColor.Sprint(line))
			}
		}
	}
	if drift.LockStale {
		fmt.Fprintf(out, "%s lock file\n", staleColor.Sprint("stale:"))
		diagfmt.FormatLockReport(out, drift.Lock)
	}
}
