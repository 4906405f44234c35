package trace

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "run", "stage", "debug", "STAGE"} {
		if _, err := ParseLevel(s); err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	if LevelRun.ShouldEmit(ScopeStage) {
		t.Fatalf("run level must not emit stage events")
	}
	if !LevelStage.ShouldEmit(ScopeStage) || LevelStage.ShouldEmit(ScopeArtifact) {
		t.Fatalf("stage level emits stages only")
	}
	if !LevelDebug.ShouldEmit(ScopeArtifact) {
		t.Fatalf("debug emits everything")
	}
	if LevelError.ShouldEmit(ScopeRun) || LevelOff.ShouldEmit(ScopeRun) {
		t.Fatalf("error/off levels emit no spans")
	}
}

func TestSpanTextOutput(t *testing.T) {
	var buf syncBuffer
	tr, err := New(Config{Level: LevelStage, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	ctx := WithTracer(context.Background(), tr)
	run := Begin(FromContext(ctx), ScopeRun, "generate", 0)
	ctx = WithSpan(ctx, run)
	st := Begin(FromContext(ctx), ScopeStage, "catalog", CurrentSpan(ctx).SpanID)
	st.WithExtra("entries", "6").WithExtra("base", "1")
	st.End("ok")
	Begin(tr, ScopeArtifact, "hidden", run.ID()).End("")
	run.End("")

	out := buf.String()
	for _, want := range []string{"[run] → generate", "[stage]   → catalog", "← catalog (ok) {base=1, entries=6}", "← generate"} {
		if !strings.Contains(out, want) {
			t.Fatalf("trace output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("artifact scope must be filtered at stage level:\n%s", out)
	}
}

func TestNDJSONAndErrors(t *testing.T) {
	var buf syncBuffer
	tr, err := New(Config{Level: LevelError, Format: FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopeRun, "generate", 0).End("")
	Fail(tr, "grammar", errors.New("exit status 1"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("want only the error event, got %d lines:\n%s", len(lines), buf.String())
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &ev); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if ev["kind"] != "error" || ev["detail"] != "exit status 1" {
		t.Fatalf("unexpected event: %v", ev)
	}
}

func TestNopAndContextDefaults(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("missing tracer must be Nop")
	}
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("off level must give a disabled tracer")
	}
	s := Begin(tr, ScopeRun, "x", 0)
	if s.End("") != 0 || s.ID() != 0 {
		t.Fatalf("nop span must be inert")
	}
	if CurrentSpan(context.Background()).SpanID != 0 {
		t.Fatalf("no current span expected")
	}
}

func TestHeartbeat(t *testing.T) {
	var buf syncBuffer
	tr := NewStreamTracer(&buf, LevelRun, FormatText)
	h := StartHeartbeat(tr, "grammar", 5*time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(buf.String(), "♡ grammar") && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	h.Stop()
	h.Stop()
	if !strings.Contains(buf.String(), "♡ grammar (#1)") {
		t.Fatalf("no heartbeat seen:\n%s", buf.String())
	}
	if StartHeartbeat(Nop, "x", time.Millisecond) != nil {
		t.Fatalf("heartbeat on Nop must be nil")
	}
	var nilHB *Heartbeat
	nilHB.Stop()
}
