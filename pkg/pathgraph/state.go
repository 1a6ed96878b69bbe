package pathgraph

// State is a node in the directed rule graph.
// The core treats the supplied states as an immutable snapshot; no function
// in this package mutates a State or its Rules.
type State struct {
	// ID uniquely identifies the state. Identity is by ID, not by Name.
	ID string `json:"id"`

	// Name is the display label. Uniqueness is by convention only; the
	// core does not enforce it.
	Name string `json:"name"`

	// Rules are the outgoing edges, in priority order. Traversal tries
	// rules in slice order, and that order defines both result ordering
	// and failed-rule reporting.
	Rules []Rule `json:"rules"`
}

// Rule is a directed, labeled edge owned by its source state.
type Rule struct {
	// ID uniquely identifies the rule.
	ID string `json:"id"`

	// Condition is the human-readable transition label.
	Condition string `json:"condition"`

	// NextState is the target state ID. A NextState that resolves to no
	// state in the snapshot is tolerated: the rule is simply not
	// traversable.
	NextState string `json:"nextState"`

	// Priority is carried for hosts that sort rules before passing them
	// in. The core itself traverses rules in slice order.
	Priority int `json:"priority,omitempty"`
}

// IsTerminal reports whether the state has no outgoing rules.
func (s *State) IsTerminal() bool {
	return len(s.Rules) == 0
}

// stateIndex maps state IDs to states for O(1) resolution during traversal.
// Built once per call; indexes into the caller's snapshot without copying.
type stateIndex map[string]*State

// indexStates builds the ID index for a snapshot.
// Later duplicates win, matching last-write semantics of a map build; hosts
// are expected not to supply duplicate IDs.
func indexStates(states []State) stateIndex {
	idx := make(stateIndex, len(states))
	for i := range states {
		idx[states[i].ID] = &states[i]
	}
	return idx
}

// resolve returns the target state of a rule, or nil if the reference
// dangles.
func (idx stateIndex) resolve(r Rule) *State {
	return idx[r.NextState]
}
