// Package pipeline orchestrates a generation run: catalog, artifacts, lock and grammar build.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"tokgen/internal/catalog"
	"tokgen/internal/emit"
	"tokgen/internal/grammarc"
	"tokgen/internal/lock"
	"tokgen/internal/project"
	"tokgen/internal/token"
	"tokgen/internal/trace"
)

// Request configures a generation run.
type Request struct {
	Config      *project.Config
	FS          afero.Fs // defaults to the OS filesystem
	Frozen      bool     // fail instead of renumbering locked tokens
	SkipGrammar bool     // overrides Config.SkipGrammar when set
	Progress    ProgressSink
	Stdout      io.Writer       // grammar compiler output
	Runner      grammarc.Runner // defaults to grammarc.Exec
	Heartbeat   time.Duration   // trace heartbeat while the compiler runs
}

// Result captures what a run produced.
type Result struct {
	Catalog     *catalog.Catalog
	Lock        lock.Report
	LockWritten bool
	GrammarRan  bool
	Timings     Timings
}

type run struct {
	req    *Request
	res    *Result
	tracer trace.Tracer
}

func (r *run) stage(ctx context.Context, st Stage, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		emitStage(r.req.Progress, st, StatusError, err)
		return err
	}
	emitStage(r.req.Progress, st, StatusWorking, nil)
	span := trace.Begin(r.tracer, trace.ScopeStage, string(st), trace.CurrentSpan(ctx).SpanID)
	start := time.Now()
	err := fn(trace.WithSpan(ctx, span))
	elapsed := time.Since(start)
	r.res.Timings.Set(st, elapsed)
	if err != nil {
		span.End("error")
		trace.Fail(r.tracer, string(st), err)
		if r.req.Progress != nil {
			r.req.Progress.OnEvent(Event{Stage: st, Status: StatusError, Err: err, Elapsed: elapsed})
		}
		return err
	}
	span.End("ok")
	if r.req.Progress != nil {
		r.req.Progress.OnEvent(Event{Stage: st, Status: StatusDone, Elapsed: elapsed})
	}
	return nil
}

func (req *Request) normalize() (*Request, error) {
	if req == nil || req.Config == nil {
		return nil, fmt.Errorf("missing generation request")
	}
	cp := *req
	if cp.FS == nil {
		cp.FS = afero.NewOsFs()
	}
	if cp.Runner == nil {
		cp.Runner = grammarc.Exec{}
	}
	if cp.Stdout == nil {
		cp.Stdout = io.Discard
	}
	return &cp, nil
}

func symbolOptions(cfg *project.Config) emit.SymbolOptions {
	return emit.SymbolOptions{Package: cfg.Package}
}

// BuildCatalog loads the keyword list and assembles the validated catalog.
func BuildCatalog(fsys afero.Fs, cfg *project.Config) (*catalog.Catalog, error) {
	keywords, err := catalog.LoadKeywords(fsys, cfg.KeywordsFile)
	if err != nil {
		return nil, err
	}
	c := catalog.Build(token.Special(), token.Operators(), keywords)
	if err := catalog.Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Generate runs every stage in order. The first failure aborts the run;
// artifacts already written stay in place.
func Generate(ctx context.Context, req *Request) (Result, error) {
	var result Result
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := req.normalize()
	if err != nil {
		return result, err
	}
	cfg := req.Config
	r := &run{req: req, res: &result, tracer: trace.FromContext(ctx)}

	root := trace.Begin(r.tracer, trace.ScopeRun, "generate", trace.CurrentSpan(ctx).SpanID)
	root.WithExtra("manifest", cfg.Path)
	ctx = trace.WithSpan(ctx, root)
	defer func() {
		if err != nil {
			root.End("failed")
			return
		}
		root.End("ok")
	}()

	emitQueued(req.Progress)

	var keywords []token.Def
	if err = r.stage(ctx, StageKeywords, func(context.Context) error {
		var loadErr error
		keywords, loadErr = catalog.LoadKeywords(req.FS, cfg.KeywordsFile)
		return loadErr
	}); err != nil {
		return result, err
	}

	var c *catalog.Catalog
	if err = r.stage(ctx, StageCatalog, func(context.Context) error {
		c = catalog.Build(token.Special(), token.Operators(), keywords)
		trace.Point(r.tracer, trace.ScopeArtifact, "catalog", strconv.Itoa(c.Len())+" tokens")
		return nil
	}); err != nil {
		return result, err
	}
	result.Catalog = c

	if err = r.stage(ctx, StageValidate, func(context.Context) error {
		return catalog.Validate(c)
	}); err != nil {
		return result, err
	}

	if cfg.LockFile == "" {
		emitStage(req.Progress, StageLock, StatusSkipped, nil)
	} else if err = r.stage(ctx, StageLock, func(context.Context) error {
		return r.updateLock(c)
	}); err != nil {
		return result, err
	}

	if err = r.stage(ctx, StageEmit, func(ctx context.Context) error {
		return writeArtifacts(ctx, req.FS, cfg, c)
	}); err != nil {
		return result, err
	}

	skip := cfg.SkipGrammar || req.SkipGrammar
	if skip {
		emitStage(req.Progress, StageGrammar, StatusSkipped, nil)
		return result, nil
	}
	if err = r.stage(ctx, StageGrammar, func(ctx context.Context) error {
		hb := trace.StartHeartbeat(r.tracer, "grammar-compiler", req.Heartbeat)
		defer hb.Stop()
		return req.Runner.Run(ctx, cfg.Invocation(), req.Stdout)
	}); err != nil {
		return result, err
	}
	result.GrammarRan = true
	return result, nil
}

func (r *run) updateLock(c *catalog.Catalog) error {
	cfg := r.req.Config
	old, err := lock.Load(r.req.FS, cfg.LockFile)
	if err != nil {
		return err
	}
	rep, err := lock.Compare(old, c)
	if err != nil {
		return err
	}
	r.res.Lock = rep
	if !rep.Clean() && r.req.Frozen {
		return &lock.ShiftError{Report: rep}
	}
	if old != nil && rep.Empty() {
		return nil
	}
	snap, err := lock.FromCatalog(c)
	if err != nil {
		return err
	}
	if err := lock.Save(r.req.FS, cfg.LockFile, snap); err != nil {
		return err
	}
	r.res.LockWritten = true
	return nil
}

// writeArtifacts runs both emitters concurrently over the same immutable catalog.
func writeArtifacts(ctx context.Context, fsys afero.Fs, cfg *project.Config, c *catalog.Catalog) error {
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		span := trace.Begin(tracer, trace.ScopeArtifact, "tokens", parent)
		span.WithExtra("path", cfg.TokensFile)
		err := emit.WriteTokens(fsys, cfg.TokensFile, c)
		span.End(outcome(err))
		return err
	})
	g.Go(func() error {
		span := trace.Begin(tracer, trace.ScopeArtifact, "symbols", parent)
		span.WithExtra("path", cfg.SymbolsFile)
		err := emit.WriteSymbols(fsys, cfg.SymbolsFile, c, symbolOptions(cfg))
		span.End(outcome(err))
		return err
	})
	return g.Wait()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
