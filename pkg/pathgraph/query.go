package pathgraph

// Read-only graph queries. All of these are synchronous and complete in one
// pass over the snapshot; none of them suspend, report progress, or observe
// cancellation.

// TerminalStates returns the states with no outgoing rules, in snapshot
// order.
func TerminalStates(states []State) []State {
	var terminals []State
	for _, s := range states {
		if s.IsTerminal() {
			terminals = append(terminals, s)
		}
	}
	return terminals
}

// ReachableStates returns every state reachable from fromStateID, including
// the start state itself, in breadth-first discovery order. Returns nil when
// fromStateID does not exist in the snapshot.
func ReachableStates(states []State, fromStateID string) []State {
	idx := indexStates(states)
	start, ok := idx[fromStateID]
	if !ok {
		return nil
	}

	visited := map[string]bool{start.ID: true}
	queue := []*State{start}
	reachable := []State{*start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, r := range current.Rules {
			next := idx.resolve(r)
			if next == nil || visited[next.ID] {
				continue
			}
			visited[next.ID] = true
			queue = append(queue, next)
			reachable = append(reachable, *next)
		}
	}
	return reachable
}

// DanglingRules returns the rules whose NextState resolves to no state in
// the snapshot. Traversal skips these silently; hosts use this query to
// surface them in validation views.
func DanglingRules(states []State) []Rule {
	idx := indexStates(states)
	var dangling []Rule
	for _, s := range states {
		for _, r := range s.Rules {
			if idx.resolve(r) == nil {
				dangling = append(dangling, r)
			}
		}
	}
	return dangling
}

// GraphStats summarizes a snapshot.
type GraphStats struct {
	States   int `json:"states"`
	Rules    int `json:"rules"`
	Terminal int `json:"terminal"`
	Dangling int `json:"dangling"`
}

// Stats counts states, rules, terminal states, and dangling rules in one
// pass.
func Stats(states []State) GraphStats {
	idx := indexStates(states)
	stats := GraphStats{States: len(states)}
	for _, s := range states {
		stats.Rules += len(s.Rules)
		if s.IsTerminal() {
			stats.Terminal++
		}
		for _, r := range s.Rules {
			if idx.resolve(r) == nil {
				stats.Dangling++
			}
		}
	}
	return stats
}
