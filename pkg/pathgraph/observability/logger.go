// Package observability provides structured logging, metrics, and tracing
// for pathgraph searches.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds search context to a logger.
// Returns a new logger with search_id and kind fields.
func EnrichLogger(logger *slog.Logger, kind, searchID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("kind", kind),
		slog.String("search_id", searchID),
	)
}

// LogSearchStart logs the start of a search. startState may be empty for
// searches without a start state (loop scans).
func LogSearchStart(logger *slog.Logger, kind, searchID, startState string, stateCount int) {
	if logger == nil {
		return
	}
	attrs := []any{
		slog.String("kind", kind),
		slog.String("search_id", searchID),
		slog.Int("state_count", stateCount),
	}
	if startState != "" {
		attrs = append(attrs, slog.String("start_state", startState))
	}
	logger.Info("search starting", attrs...)
}

// LogSearchComplete logs successful search completion.
func LogSearchComplete(logger *slog.Logger, kind, searchID string, durationMs float64, resultCount int) {
	if logger == nil {
		return
	}
	logger.Info("search completed",
		slog.String("kind", kind),
		slog.String("search_id", searchID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("results", resultCount),
	)
}

// LogSearchCancelled logs a cancelled search. This is expected control flow,
// so it logs at Info, not Error.
func LogSearchCancelled(logger *slog.Logger, kind, searchID string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("search cancelled",
		slog.String("kind", kind),
		slog.String("search_id", searchID),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogSearchError logs a search failure.
func LogSearchError(logger *slog.Logger, kind, searchID string, err error) {
	if logger == nil {
		return
	}
	logger.Error("search failed",
		slog.String("kind", kind),
		slog.String("search_id", searchID),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
