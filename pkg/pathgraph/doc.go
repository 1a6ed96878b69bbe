/*
Package pathgraph enumerates paths, detects loops, and answers shortest-path
queries over a state machine's directed rule graph.

# Overview

A graph is a flat snapshot of states, each owning an ordered list of rules
(directed, labeled edges). Hosts — typically flow designers or call-flow
analyzers — pass the snapshot in; pathgraph never mutates it and keeps no
state between calls.

Three algorithms operate on the snapshot:

  - FindPaths: exhaustive depth-first path enumeration, cycle-safe, with
    three modes (to terminal states, to a specific state, through a required
    intermediate state), cooperative cancellation, throttled progress, and
    batched incremental results.
  - FindLoops: per-state cycle detection, reporting the first loop found
    from each state.
  - FindShortestPath / IsReachable: synchronous breadth-first search.

# Basic Usage

	states := []pathgraph.State{
	    {ID: "a", Name: "Welcome", Rules: []pathgraph.Rule{
	        {ID: "r1", Condition: "digit=1", NextState: "b"},
	    }},
	    {ID: "b", Name: "Goodbye"},
	}

	paths, err := pathgraph.FindPaths(context.Background(), states, "a")
	if err != nil {
	    log.Fatal(err)
	}
	for _, p := range paths {
	    fmt.Println(strings.Join(p.States, " -> "))
	}

# Cancellation and Progress

Long searches stay responsive through cooperative checkpoints:

	token := pathgraph.NewToken()
	go func() {
	    <-stopButton
	    token.Cancel()
	}()

	paths, err := pathgraph.FindPaths(ctx, states, "a",
	    pathgraph.WithCancelToken(token),
	    pathgraph.WithProgress(func(pct float64) { bar.Set(pct) }),
	    pathgraph.WithPathBatch(func(found []pathgraph.Path) { table.Render(found) }),
	)
	if errors.Is(err, pathgraph.ErrCancelled) {
	    // expected control flow, reset the UI silently
	}

Context cancellation works the same way; the token exists so hosts can share
one mutable stop flag across UI handlers.

# Observability

Structured logging (log/slog), OpenTelemetry metrics, and trace spans are
opt-in per call via WithLogger, WithMetrics, and WithTracing. Search events
can additionally be streamed to subscribers via WithEmitter.
*/
package pathgraph
