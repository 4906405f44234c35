// Package trace is the structured event log of a generation run.
//
// # Usage
//
//	tokgen generate --trace=- --trace-level=stage
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: failures only
//   - LevelRun: run boundaries
//   - LevelStage: every pipeline stage (keywords, catalog, validate, emit, lock, grammar)
//   - LevelDebug: per-artifact events as well
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "emit", parentID)
//	defer span.End("")
package trace
