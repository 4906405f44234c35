package pipeline

import "time"

// Stage describes one step of a generation run.
type Stage string

const (
	// StageKeywords reads the keyword word list.
	StageKeywords Stage = "keywords"
	// StageCatalog assembles the token catalog.
	StageCatalog Stage = "catalog"
	// StageValidate rejects malformed catalogs.
	StageValidate Stage = "validate"
	// StageLock compares the catalog with the lock snapshot and rewrites it.
	StageLock Stage = "lock"
	// StageEmit writes the tokens file and the symbol module.
	StageEmit Stage = "emit"
	// StageGrammar runs the external grammar compiler.
	StageGrammar Stage = "grammar"
)

// Stages lists every stage in execution order.
var Stages = []Stage{StageKeywords, StageCatalog, StageValidate, StageLock, StageEmit, StageGrammar}

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the stage has not started.
	StatusQueued Status = "queued"
	// StatusWorking indicates the stage is running.
	StatusWorking Status = "working"
	// StatusDone indicates the stage finished.
	StatusDone Status = "done"
	// StatusSkipped indicates the stage was turned off.
	StatusSkipped Status = "skipped"
	// StatusError indicates the stage failed.
	StatusError Status = "error"
)

// Event reports progress for one stage.
type Event struct {
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds stage durations.
type Timings struct {
	stages map[Stage]time.Duration
}

// Set stores a duration for the given stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
	t.stages[stage] = dur
}

// Has reports whether a duration for stage is recorded.
func (t Timings) Has(stage Stage) bool {
	_, ok := t.stages[stage]
	return ok
}

// Duration returns the recorded duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	return t.stages[stage]
}

// Sum returns the sum of durations across the provided stages.
func (t Timings) Sum(stages ...Stage) time.Duration {
	var total time.Duration
	for _, stage := range stages {
		total += t.stages[stage]
	}
	return total
}
