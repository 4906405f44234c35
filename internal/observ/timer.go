// Package observ collects wall-clock timings for the --timings summary.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Step is one timed piece of a command.
type Step struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer records steps in the order they began.
type Timer struct {
	steps []Step
}

// NewTimer creates an empty Timer.
func NewTimer() *Timer { return &Timer{steps: make([]Step, 0, 8)} }

// Begin starts a step and returns its index for End.
func (t *Timer) Begin(name string) int {
	t.steps = append(t.steps, Step{Name: name, Start: time.Now()})
	return len(t.steps) - 1
}

// End closes the step at idx. Unknown indexes are ignored.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.steps) {
		return
	}
	s := &t.steps[idx]
	s.Dur = time.Since(s.Start)
	s.Note = note
}

// Record adds a step measured elsewhere, such as a pipeline stage.
func (t *Timer) Record(name string, dur time.Duration, note string) {
	t.steps = append(t.steps, Step{Name: name, Dur: dur, Note: note})
}

// StepReport is the serialized form of a Step.
type StepReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates every step.
type Report struct {
	TotalMS float64      `json:"total_ms"`
	Steps   []StepReport `json:"steps"`
}

// Report converts the steps to milliseconds.
func (t *Timer) Report() Report {
	var report Report
	var total time.Duration
	for _, s := range t.steps {
		total += s.Dur
		report.Steps = append(report.Steps, StepReport{
			Name:       s.Name,
			DurationMS: millis(s.Dur),
			Note:       s.Note,
		})
	}
	report.TotalMS = millis(total)
	return report
}

// Summary renders an aligned table ending with the total.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, s := range report.Steps {
		fmt.Fprintf(&b, "  %-16s %8.2f ms", s.Name, s.DurationMS)
		if s.Note != "" {
			b.WriteString("  (" + s.Note + ")")
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-16s %8.2f ms\n", "total", report.TotalMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
