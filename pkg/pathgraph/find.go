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

// FindPaths enumerates every simple path through the rule graph starting at
// startStateID. The search mode depends on the options:
//
//   - No options: paths ending at terminal states (states with no outgoing
//     rules).
//   - WithEndState: paths terminating at exactly that state.
//   - WithEndState + WithIntermediateState: paths terminating at the end
//     state that pass through the intermediate state earlier.
//
// Traversal is depth-first in rule slice order, so results are deterministic:
// the first rule's subtree is fully enumerated before the second rule's. A
// path never revisits a state, which makes the search terminate on cyclic
// graphs. Rules whose NextState resolves to no state in the snapshot are
// skipped silently.
//
// The search checks cancellation (token and context) at every recursive step
// and delivers progress and path batches through the registered callbacks.
// On cancellation it returns a CancelledError and no paths; partial results
// are only available through the batch callback.
//
// The states slice is treated as an immutable snapshot. Mutating it while
// the search runs is undefined behavior; pass a copy if concurrent editing
// is possible.
func FindPaths(ctx context.Context, states []State, startStateID string, opts ...FindOption) (paths []Path, err error) {
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
	if cfg.intermediateStateID != "" && cfg.endStateID == "" {
		return nil, ErrEndStateRequired
	}

	idx := indexStates(states)
	start, ok := idx[startStateID]
	if !ok {
		return nil, &NotFoundError{Kind: StateKindStart, ID: startStateID}
	}
	if cfg.endStateID != "" {
		if _, ok := idx[cfg.endStateID]; !ok {
			return nil, &NotFoundError{Kind: StateKindEnd, ID: cfg.endStateID}
		}
	}
	if cfg.intermediateStateID != "" {
		if _, ok := idx[cfg.intermediateStateID]; !ok {
			return nil, &NotFoundError{Kind: StateKindIntermediate, ID: cfg.intermediateStateID}
		}
	}

	searchID := cfg.searchID
	if searchID == "" {
		searchID = uuid.NewString()
	}

	startTime := time.Now()
	observability.LogSearchStart(cfg.logger, phasePaths, searchID, startStateID, len(states))

	execCtx := ctx
	var span trace.Span
	if cfg.tracing {
		execCtx, span = cfg.spans.StartSearchSpan(ctx, phasePaths, searchID)
		defer func() {
			cfg.spans.EndSpanWithError(span, err)
		}()
	}

	s := &searcher{
		cfg:      &cfg,
		idx:      idx,
		searchID: searchID,
		maxDepth: len(states) * cfg.depthMultiplier,
		visited:  make(map[string]bool, len(states)),
		lastTick: startTime,
	}

	// Observe a pre-cancelled token or context before any callback fires.
	if err = s.checkCancelled(execCtx); err == nil {
		s.publish(event.TypeSearchStarted, startStateID)
		err = s.visit(execCtx, start, 0)
	}

	duration := time.Since(startTime)
	cfg.metrics.RecordSearch(ctx, phasePaths, err == nil, duration)

	if err != nil {
		cfg.metrics.RecordCancellation(ctx, phasePaths)
		observability.LogSearchCancelled(cfg.logger, phasePaths, searchID, float64(duration.Milliseconds()))
		s.publish(event.TypeSearchCancelled, nil)
		return nil, err
	}

	s.reportProgress(100)
	cfg.metrics.RecordResults(ctx, phasePaths, len(s.results))
	observability.LogSearchComplete(cfg.logger, phasePaths, searchID, float64(duration.Milliseconds()), len(s.results))
	s.publish(event.TypeSearchCompleted, len(s.results))

	if s.results == nil {
		return []Path{}, nil
	}
	return s.results, nil
}

// Search phase names, used in errors, logs, metrics, and spans.
const (
	phasePaths = "paths"
	phaseLoops = "loops"
)

// searcher carries the mutable accumulators of one FindPaths call. The
// per-path accumulators (pathStates, pathRules, pathFailed, visited) grow on
// descent and shrink on backtrack; completed paths are deep-copied out.
type searcher struct {
	cfg      *findConfig
	idx      stateIndex
	searchID string
	maxDepth int

	pathStates []string
	pathRules  []string
	pathFailed [][]string
	visited    map[string]bool

	results []Path

	// Progress bookkeeping: estimation is by completed top-level branch,
	// delivery is throttled by yieldInterval, and reported values never
	// decrease.
	lastTick time.Time
	topTotal int
	topDone  int
	reported float64
}

// visit explores one state at the end of the current path.
func (s *searcher) visit(ctx context.Context, st *State, depth int) error {
	if err := s.yield(ctx); err != nil {
		return err
	}
	if depth > s.maxDepth {
		return nil
	}

	s.pathStates = append(s.pathStates, st.Name)
	s.visited[st.ID] = true
	defer func() {
		s.pathStates = s.pathStates[:len(s.pathStates)-1]
		delete(s.visited, st.ID)
	}()

	if s.complete(st) {
		s.record()
		if s.cfg.endStateID != "" {
			// Target reached; nothing past it can reach it again.
			return nil
		}
	}

	var prior []string
	for i, r := range st.Rules {
		if depth == 0 {
			s.topTotal = len(st.Rules)
			s.topDone = i
		}
		if i > 0 {
			prior = append(prior, st.Rules[i-1].Condition)
		}

		next := s.idx.resolve(r)
		if next == nil || s.visited[next.ID] {
			continue
		}

		s.pathRules = append(s.pathRules, r.Condition)
		s.pathFailed = append(s.pathFailed, slices.Clone(prior))
		err := s.visit(ctx, next, depth+1)
		s.pathRules = s.pathRules[:len(s.pathRules)-1]
		s.pathFailed = s.pathFailed[:len(s.pathFailed)-1]
		if err != nil {
			return err
		}
	}
	return nil
}

// complete reports whether the current path is a finished result at st.
func (s *searcher) complete(st *State) bool {
	switch {
	case s.cfg.endStateID == "":
		return st.IsTerminal()
	case s.cfg.intermediateStateID == "":
		return st.ID == s.cfg.endStateID
	default:
		// The intermediate must appear strictly before the final state,
		// so it cannot be the end state itself.
		return st.ID == s.cfg.endStateID &&
			s.cfg.intermediateStateID != st.ID &&
			s.visited[s.cfg.intermediateStateID]
	}
}

// record copies the accumulators into the result list and fires the batch
// callback on batch boundaries.
func (s *searcher) record() {
	p := clonePath(s.pathStates, s.pathRules, s.pathFailed)
	s.results = append(s.results, p)
	s.publish(event.TypePathFound, p)

	if s.cfg.onBatch != nil && len(s.results)%s.cfg.batchSize == 0 {
		s.cfg.onBatch(slices.Clone(s.results))
	}
}

// yield is the cooperative checkpoint: cancellation is observed on every
// call, progress is delivered when yieldInterval has elapsed since the last
// delivery.
func (s *searcher) yield(ctx context.Context) error {
	if err := s.checkCancelled(ctx); err != nil {
		return err
	}
	if time.Since(s.lastTick) >= s.cfg.yieldInterval {
		s.lastTick = time.Now()
		s.reportProgress(s.estimate())
	}
	return nil
}

// checkCancelled returns a CancelledError if the token or context asks for
// cancellation.
func (s *searcher) checkCancelled(ctx context.Context) error {
	if s.cfg.token.Cancelled() {
		return &CancelledError{SearchID: s.searchID, Phase: phasePaths}
	}
	select {
	case <-ctx.Done():
		return &CancelledError{SearchID: s.searchID, Phase: phasePaths, Cause: ctx.Err()}
	default:
		return nil
	}
}

// estimate approximates completion as the fraction of fully explored
// top-level branches. Held below 100 until the search actually finishes.
func (s *searcher) estimate() float64 {
	if s.topTotal == 0 {
		return 0
	}
	pct := float64(s.topDone) / float64(s.topTotal) * 100
	if pct > 99 {
		pct = 99
	}
	return pct
}

// reportProgress delivers a monotonic progress value to the callback and the
// emitter.
func (s *searcher) reportProgress(pct float64) {
	if pct < s.reported {
		pct = s.reported
	}
	s.reported = pct
	if s.cfg.onProgress != nil {
		s.cfg.onProgress(pct)
	}
	s.publish(event.TypeProgress, pct)
}

// publish sends a search event when an emitter is attached.
func (s *searcher) publish(t event.Type, data any) {
	if s.cfg.emitter == nil {
		return
	}
	s.cfg.emitter.Publish(event.New(t, s.searchID, data))
}
