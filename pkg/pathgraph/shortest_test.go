package pathgraph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindShortestPath_LinearChain verifies basic path reconstruction.
func TestFindShortestPath_LinearChain(t *testing.T) {
	p := FindShortestPath(linearChain(), "a", "c")
	require.NotNil(t, p)
	assert.Equal(t, []string{"A", "B", "C"}, p.States)
	assert.Equal(t, []string{"r1", "r2"}, p.Rules)
	assert.Nil(t, p.FailedRules)
}

// TestFindShortestPath_PrefersFewerEdges verifies BFS minimality when a
// longer route exists.
func TestFindShortestPath_PrefersFewerEdges(t *testing.T) {
	states := []State{
		st("a", "A", rl("ab", "long", "b"), rl("ad", "direct", "d")),
		st("b", "B", rl("bd", "bd", "d")),
		st("d", "D"),
	}

	p := FindShortestPath(states, "a", "d")
	require.NotNil(t, p)
	assert.Equal(t, []string{"A", "D"}, p.States)
	assert.Equal(t, []string{"direct"}, p.Rules)
}

// TestFindShortestPath_RuleOrderTiebreak verifies the earlier rule wins
// among equally short routes.
func TestFindShortestPath_RuleOrderTiebreak(t *testing.T) {
	p := FindShortestPath(diamond(), "a", "d")
	require.NotNil(t, p)
	assert.Equal(t, []string{"A", "B", "D"}, p.States)
}

// TestFindShortestPath_SameState verifies the degenerate from==to case.
func TestFindShortestPath_SameState(t *testing.T) {
	p := FindShortestPath(linearChain(), "b", "b")
	require.NotNil(t, p)
	assert.Equal(t, []string{"B"}, p.States)
	assert.Empty(t, p.Rules)
}

// TestFindShortestPath_Disconnected verifies nil for unconnected pairs.
func TestFindShortestPath_Disconnected(t *testing.T) {
	states := []State{
		st("a", "A", rl("r1", "r1", "b")),
		st("b", "B"),
		st("z", "Z"),
	}

	assert.Nil(t, FindShortestPath(states, "a", "z"))
	// Edges are directed; the reverse direction has no path either.
	assert.Nil(t, FindShortestPath(states, "b", "a"))
}

// TestFindShortestPath_MissingStates verifies nil when either ID is absent.
func TestFindShortestPath_MissingStates(t *testing.T) {
	states := linearChain()
	assert.Nil(t, FindShortestPath(states, "ghost", "c"))
	assert.Nil(t, FindShortestPath(states, "a", "ghost"))
	assert.Nil(t, FindShortestPath(nil, "a", "c"))
}

// TestFindShortestPath_CyclicGraph verifies BFS terminates on cycles.
func TestFindShortestPath_CyclicGraph(t *testing.T) {
	p := FindShortestPath(twoCycleWithExit(), "a", "c")
	require.NotNil(t, p)
	assert.Equal(t, []string{"A", "C"}, p.States)
}

// TestIsReachable_ConsistentWithShortestPath verifies the reachability
// definition over all pairs of a fixture.
func TestIsReachable_ConsistentWithShortestPath(t *testing.T) {
	states := twoCycleWithExit()
	ids := []string{"a", "b", "c", "ghost"}

	for _, from := range ids {
		for _, to := range ids {
			got := IsReachable(states, from, to)
			want := FindShortestPath(states, from, to) != nil
			assert.Equal(t, want, got, "pair %s -> %s", from, to)
		}
	}
}

// TestFindShortestPath_MinimalVersusFindPaths verifies no enumerated path
// between a pair is shorter than the BFS result.
func TestFindShortestPath_MinimalVersusFindPaths(t *testing.T) {
	states := []State{
		st("a", "A", rl("ab", "ab", "b"), rl("ac", "ac", "c")),
		st("b", "B", rl("bc", "bc", "c"), rl("bd", "bd", "d")),
		st("c", "C", rl("cd", "cd", "d")),
		st("d", "D"),
	}

	shortest := FindShortestPath(states, "a", "d")
	require.NotNil(t, shortest)

	all, err := FindPaths(context.Background(), states, "a", WithEndState("d"))
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for i, p := range all {
		assert.LessOrEqual(t, shortest.Len(), p.Len(), "path %d shorter than BFS result", i)
	}
}
