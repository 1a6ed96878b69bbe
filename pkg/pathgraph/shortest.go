package pathgraph

// hop is a predecessor link recorded during BFS, used to reconstruct the
// shortest path backwards from the target.
type hop struct {
	prev string
	rule string
}

// FindShortestPath returns a minimum-edge-count path from fromStateID to
// toStateID, or nil when either ID is missing from the snapshot or no path
// exists. When the two IDs are equal the path is the single state with no
// transitions.
//
// The search is breadth-first with a global visited set, expanding each
// state's rules in slice order, so among equally short paths the one using
// earlier rules wins. Each state is visited at most once, which makes the
// function cheap enough to stay synchronous: no progress reporting, no
// cancellation.
func FindShortestPath(states []State, fromStateID, toStateID string) *Path {
	idx := indexStates(states)
	from, ok := idx[fromStateID]
	if !ok {
		return nil
	}
	if _, ok := idx[toStateID]; !ok {
		return nil
	}

	if fromStateID == toStateID {
		return &Path{States: []string{from.Name}, Rules: []string{}}
	}

	parents := make(map[string]hop, len(states))
	visited := map[string]bool{fromStateID: true}
	queue := []string{fromStateID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, r := range idx[current].Rules {
			next := idx.resolve(r)
			if next == nil || visited[next.ID] {
				continue
			}
			visited[next.ID] = true
			parents[next.ID] = hop{prev: current, rule: r.Condition}

			if next.ID == toStateID {
				return buildPath(idx, parents, fromStateID, toStateID)
			}
			queue = append(queue, next.ID)
		}
	}
	return nil
}

// IsReachable reports whether any path leads from fromStateID to
// toStateID. Equivalent to FindShortestPath(states, from, to) != nil.
func IsReachable(states []State, fromStateID, toStateID string) bool {
	return FindShortestPath(states, fromStateID, toStateID) != nil
}

// buildPath walks the predecessor links backwards from toID and reverses
// them into a Path.
func buildPath(idx stateIndex, parents map[string]hop, fromID, toID string) *Path {
	var names []string
	var rules []string

	current := toID
	for current != fromID {
		link := parents[current]
		names = append(names, idx[current].Name)
		rules = append(rules, link.rule)
		current = link.prev
	}
	names = append(names, idx[fromID].Name)

	// Collected back-to-front; reverse in place.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	for i, j := 0, len(rules)-1; i < j; i, j = i+1, j-1 {
		rules[i], rules[j] = rules[j], rules[i]
	}

	return &Path{States: names, Rules: rules}
}
