package pathgraph

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/pathgraph/pkg/pathgraph/event"
	"github.com/randalmurphal/pathgraph/pkg/pathgraph/observability"
	"go.opentelemetry.io/otel/trace"
)

// FindLoops scans every state in the snapshot for a cycle that leads back to
// it. At most one loop is reported per starting state: the first one found
// in rule slice order. Cycles reachable from several states are reported
// once per state, without deduplication; hosts may post-process if they need
// distinct cycles only.
//
// Progress is reported once per completed outer iteration
// (processed/total*100) and cancellation is checked once per outer iteration
// as well, so a cancel request takes effect between state scans rather than
// mid-scan.
//
// WithEndState and WithIntermediateState have no effect here; the remaining
// FindOption values (progress, cancellation, batching tunables, logging,
// observability) apply.
func FindLoops(ctx context.Context, states []State, opts ...FindOption) (loops []Loop, err error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	cfg := defaultFindConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(states) == 0 {
		return nil, ErrNoStates
	}

	searchID := cfg.searchID
	if searchID == "" {
		searchID = uuid.NewString()
	}

	idx := indexStates(states)

	startTime := time.Now()
	observability.LogSearchStart(cfg.logger, phaseLoops, searchID, "", len(states))

	execCtx := ctx
	var span trace.Span
	if cfg.tracing {
		execCtx, span = cfg.spans.StartSearchSpan(ctx, phaseLoops, searchID)
		defer func() {
			cfg.spans.EndSpanWithError(span, err)
		}()
	}

	d := &loopDetector{cfg: &cfg, idx: idx, searchID: searchID}

	if err = d.checkCancelled(execCtx); err == nil {
		d.publish(event.TypeSearchStarted, nil)
		loops, err = d.scan(execCtx, states)
	}

	duration := time.Since(startTime)
	cfg.metrics.RecordSearch(ctx, phaseLoops, err == nil, duration)

	if err != nil {
		cfg.metrics.RecordCancellation(ctx, phaseLoops)
		observability.LogSearchCancelled(cfg.logger, phaseLoops, searchID, float64(duration.Milliseconds()))
		d.publish(event.TypeSearchCancelled, nil)
		return nil, err
	}

	cfg.metrics.RecordResults(ctx, phaseLoops, len(loops))
	observability.LogSearchComplete(cfg.logger, phaseLoops, searchID, float64(duration.Milliseconds()), len(loops))
	d.publish(event.TypeSearchCompleted, len(loops))

	return loops, nil
}

// loopDetector carries the state of one FindLoops call.
type loopDetector struct {
	cfg      *findConfig
	idx      stateIndex
	searchID string
	reported float64
}

// scan runs the outer loop over starting states.
func (d *loopDetector) scan(ctx context.Context, states []State) ([]Loop, error) {
	loops := []Loop{}
	for i := range states {
		if err := d.checkCancelled(ctx); err != nil {
			return nil, err
		}
		if loop := d.findLoopFrom(&states[i]); loop != nil {
			loops = append(loops, *loop)
			d.publish(event.TypeLoopFound, *loop)
		}
		d.reportProgress(float64(i+1) / float64(len(states)) * 100)
	}
	return loops, nil
}

// findLoopFrom looks for the first path, in rule slice order, that leads
// from start back to start. The visited set spans the whole exploration from
// this start state, so each state's subtree is expanded at most once per
// scan; that bounds work at O(states + rules) per starting state but means
// only the first cycle through start is found.
func (d *loopDetector) findLoopFrom(start *State) *Loop {
	visited := map[string]bool{}
	var path []string

	var dfs func(st *State) *Loop
	dfs = func(st *State) *Loop {
		visited[st.ID] = true
		path = append(path, st.Name)
		defer func() {
			path = path[:len(path)-1]
		}()

		for _, r := range st.Rules {
			next := d.idx.resolve(r)
			if next == nil {
				continue
			}
			if next.ID == start.ID {
				states := append(slices.Clone(path), start.Name)
				return &Loop{States: states, LoopState: start.Name}
			}
			if visited[next.ID] {
				continue
			}
			if loop := dfs(next); loop != nil {
				return loop
			}
		}
		return nil
	}
	return dfs(start)
}

// checkCancelled returns a CancelledError if the token or context asks for
// cancellation.
func (d *loopDetector) checkCancelled(ctx context.Context) error {
	if d.cfg.token.Cancelled() {
		return &CancelledError{SearchID: d.searchID, Phase: phaseLoops}
	}
	select {
	case <-ctx.Done():
		return &CancelledError{SearchID: d.searchID, Phase: phaseLoops, Cause: ctx.Err()}
	default:
		return nil
	}
}

// reportProgress delivers a monotonic progress value.
func (d *loopDetector) reportProgress(pct float64) {
	if pct < d.reported {
		pct = d.reported
	}
	d.reported = pct
	if d.cfg.onProgress != nil {
		d.cfg.onProgress(pct)
	}
	d.publish(event.TypeProgress, pct)
}

// publish sends a search event when an emitter is attached.
func (d *loopDetector) publish(t event.Type, data any) {
	if d.cfg.emitter == nil {
		return
	}
	d.cfg.emitter.Publish(event.New(t, d.searchID, data))
}
