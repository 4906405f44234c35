package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"tokgen/internal/diagfmt"
	"tokgen/internal/observ"
	"tokgen/internal/pipeline"
	"tokgen/internal/project"
	"tokgen/internal/watch"
)

type generateOptions struct {
	ui          string
	skipGrammar bool
	frozen      bool
	watch       bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Write the tokens file and symbol module, then build the grammar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ui, "ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().BoolVar(&opts.skipGrammar, "skip-grammar", false, "do not run the grammar compiler")
	cmd.Flags().BoolVar(&opts.frozen, "frozen", false, "fail if a locked token would change its ID")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "regenerate when the keyword list or manifest changes")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts generateOptions) error {
	mode, err := readUIMode(opts.ui)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	cleanup, heartbeat, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	timer := observ.NewTimer()
	idx := timer.Begin("manifest")
	cfg, err := loadManifest(args)
	if err != nil {
		return err
	}
	timer.End(idx, filepath.Base(cfg.Path))

	stdout := cmd.OutOrStdout()
	compilerOut := stdout
	if quiet {
		compilerOut = io.Discard
	}
	req := &pipeline.Request{
		Config:      cfg,
		Frozen:      opts.frozen,
		SkipGrammar: opts.skipGrammar,
		Stdout:      compilerOut,
		Heartbeat:   heartbeat,
	}

	ctx := cmd.Context()
	useTUI := !opts.watch && !quiet && shouldUseTUI(mode)
	res, err := generateOnce(ctx, req, useTUI)
	if err != nil {
		return err
	}
	if !quiet {
		printGenerateSummary(stdout, cfg, res)
	}
	if showTimings {
		recordStageTimings(timer, res.Timings)
		printTimings(stdout, timer)
	}
	if !opts.watch {
		return nil
	}
	return watchAndRegenerate(ctx, cmd, req, quiet)
}

func generateOnce(ctx context.Context, req *pipeline.Request, useTUI bool) (pipeline.Result, error) {
	if useTUI {
		return runGenerateWithUI(ctx, "tokgen generate", req)
	}
	return pipeline.Generate(ctx, req)
}

func printGenerateSummary(out io.Writer, cfg *project.Config, res pipeline.Result) {
	c := res.Catalog
	fmt.Fprintf(out, "generated %d tokens (digest %s)\n", c.Len(), c.Digest().Short())
	fmt.Fprintf(out, "  tokens:  %s\n", relPath(cfg.Root, cfg.TokensFile))
	fmt.Fprintf(out, "  symbols: %s\n", relPath(cfg.Root, cfg.SymbolsFile))
	if res.LockWritten {
		fmt.Fprintf(out, "  lock:    %s\n", relPath(cfg.Root, cfg.LockFile))
		diagfmt.FormatLockReport(out, res.Lock)
	}
	if !res.GrammarRan {
		fmt.Fprintln(out, "  grammar compiler skipped")
	}
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}

// watchAndRegenerate blocks until ctx is cancelled. Failures are reported and
// the loop keeps watching.
func watchAndRegenerate(ctx context.Context, cmd *cobra.Command, req *pipeline.Request, quiet bool) error {
	cfg := req.Config
	w, err := watch.New([]string{cfg.KeywordsFile, cfg.Path}, watch.DefaultDebounce)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !quiet {
		fmt.Fprintf(out, "watching %s and %s\n", relPath(cfg.Root, cfg.KeywordsFile), relPath(cfg.Root, cfg.Path))
	}
	return w.Run(ctx, func(ctx context.Context, changed []string) {
		start := time.Now()
		next := *req
		reloaded, err := project.Load(cfg.Path)
		if err != nil {
			diagfmt.FormatError(cmd.ErrOrStderr(), err)
			return
		}
		next.Config = reloaded
		res, err := pipeline.Generate(ctx, &next)
		if err != nil {
			diagfmt.FormatError(cmd.ErrOrStderr(), err)
			return
		}
		if !quiet {
			fmt.Fprintf(out, "regenerated after change to %s in %s\n", relPath(cfg.Root, changed[0]), time.Since(start).Round(time.Millisecond))
			printGenerateSummary(out, reloaded, res)
		}
	})
}
