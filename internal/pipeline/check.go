package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/kylelemons/godebug/diff"
	"github.com/spf13/afero"

	"tokgen/internal/emit"
	"tokgen/internal/failure"
	"tokgen/internal/lock"
	"tokgen/internal/opmatch"
	"tokgen/internal/trace"
)

// FileDrift describes one artifact whose on-disk content is stale.
type FileDrift struct {
	Path    string
	Missing bool
	Diff    string // line diff from disk to the fresh rendering
}

// Drift is the outcome of Check.
type Drift struct {
	Files []FileDrift
	Lock  lock.Report
	// LockStale is set when a lock file is configured and differs from the catalog.
	LockStale bool
}

// Clean reports whether every artifact is up to date.
func (d Drift) Clean() bool { return len(d.Files) == 0 && !d.LockStale }

// Check renders both artifacts in memory and compares them with the files on
// disk. It also proves the operator pattern picks the longer literal for every
// prefix pair. Nothing is written.
func Check(ctx context.Context, req *Request) (Drift, error) {
	var drift Drift
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := req.normalize()
	if err != nil {
		return drift, err
	}
	cfg := req.Config
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeRun, "check", trace.CurrentSpan(ctx).SpanID)
	defer span.End("")

	c, err := BuildCatalog(req.FS, cfg)
	if err != nil {
		return drift, err
	}

	m, err := opmatch.Compile(c.Operators())
	if err != nil {
		return drift, err
	}
	if err := opmatch.Verify(m, c.Operators()); err != nil {
		return drift, err
	}

	symbols, err := emit.RenderSymbols(c, symbolOptions(cfg))
	if err != nil {
		return drift, err
	}
	artifacts := []struct {
		path string
		want []byte
	}{
		{cfg.TokensFile, emit.RenderTokens(c)},
		{cfg.SymbolsFile, symbols},
	}
	for _, a := range artifacts {
		fd, stale, err := compareFile(req.FS, a.path, a.want)
		if err != nil {
			return drift, err
		}
		if stale {
			drift.Files = append(drift.Files, fd)
		}
	}

	if cfg.LockFile != "" {
		old, err := lock.Load(req.FS, cfg.LockFile)
		if err != nil {
			return drift, err
		}
		rep, err := lock.Compare(old, c)
		if err != nil {
			return drift, err
		}
		drift.Lock = rep
		drift.LockStale = old == nil || !rep.Empty()
	}
	span.WithExtra("stale", strings.Join(stalePaths(drift), ","))
	return drift, nil
}

func compareFile(fsys afero.Fs, path string, want []byte) (FileDrift, bool, error) {
	got, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileDrift{Path: path, Missing: true}, true, nil
		}
		return FileDrift{}, false, failure.Config("check artifact", path, err)
	}
	if string(got) == string(want) {
		return FileDrift{}, false, nil
	}
	return FileDrift{Path: path, Diff: diff.Diff(string(got), string(want))}, true, nil
}

func stalePaths(d Drift) []string {
	out := make([]string, 0, len(d.Files))
	for _, f := range d.Files {
		out = append(out, f.Path)
	}
	return out
}
