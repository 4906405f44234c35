package main

import (
	"fmt"
	"io"

	"tokgen/internal/observ"
	"tokgen/internal/pipeline"
)

// recordStageTimings copies the pipeline stage durations into timer.
func recordStageTimings(timer *observ.Timer, timings pipeline.Timings) {
	for _, stage := range pipeline.Stages {
		if timings.Has(stage) {
			timer.Record(string(stage), timings.Duration(stage), "")
		}
	}
}

func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	fmt.Fprint(out, timer.Summary())
}
