// Package trace records what the Varphi compiler is doing while it runs.
//
// The compiler has no logger; tracing is the only runtime log. A compile
// emits a driver span, one pass span per phase (parse, sema) and, at the
// detail level, one point event per accepted transition line.
//
// # Levels
//
//   - LevelOff: nothing is emitted
//   - LevelError: reserved for failures
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-line events
//   - LevelDebug: everything
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
