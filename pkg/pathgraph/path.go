package pathgraph

// Path records one full traversal through the graph.
//
// States holds the display names of the visited states in order, start to
// finish. Rules holds the condition labels consumed between consecutive
// states, so len(Rules) == len(States)-1. FailedRules, when populated by
// FindPaths, holds for each transition the conditions of the rules that
// precede the chosen rule in the source state's rule order; it mirrors Rules
// index-for-index.
type Path struct {
	States      []string   `json:"states"`
	Rules       []string   `json:"rules"`
	FailedRules [][]string `json:"failedRules,omitempty"`
}

// Len returns the number of transitions in the path.
func (p *Path) Len() int {
	return len(p.Rules)
}

// Loop records a cycle detected by FindLoops.
//
// States is the cyclic sequence including the repeated closing state name,
// so a two-state cycle A -> B -> A is reported as ["A", "B", "A"].
type Loop struct {
	States []string `json:"states"`

	// LoopState is the name of the state the cycle was detected from.
	LoopState string `json:"loopState"`
}

// clonePath deep-copies the mutable accumulators into a result record.
// Returned paths must not alias the searcher's working slices.
func clonePath(states, rules []string, failed [][]string) Path {
	p := Path{
		States: make([]string, len(states)),
		Rules:  make([]string, len(rules)),
	}
	copy(p.States, states)
	copy(p.Rules, rules)
	if failed != nil {
		p.FailedRules = make([][]string, len(failed))
		for i, f := range failed {
			p.FailedRules[i] = make([]string, len(f))
			copy(p.FailedRules[i], f)
		}
	}
	return p
}
