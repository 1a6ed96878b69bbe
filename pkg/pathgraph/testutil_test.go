package pathgraph

// Test fixtures shared across the package tests.

// st builds a State.
func st(id, name string, rules ...Rule) State {
	return State{ID: id, Name: name, Rules: rules}
}

// rl builds a Rule.
func rl(id, condition, nextState string) Rule {
	return Rule{ID: id, Condition: condition, NextState: nextState}
}

// linearChain is A -> B -> C with C terminal.
func linearChain() []State {
	return []State{
		st("a", "A", rl("r1", "r1", "b")),
		st("b", "B", rl("r2", "r2", "c")),
		st("c", "C"),
	}
}

// diamond is A -> {B, C} -> D with D terminal. Rule order at A is B first.
func diamond() []State {
	return []State{
		st("a", "A", rl("ab", "to-b", "b"), rl("ac", "to-c", "c")),
		st("b", "B", rl("bd", "b-to-d", "d")),
		st("c", "C", rl("cd", "c-to-d", "d")),
		st("d", "D"),
	}
}

// twoCycleWithExit is A <-> B plus A -> C with C terminal. The cycle branch
// comes first in A's rule order.
func twoCycleWithExit() []State {
	return []State{
		st("a", "A", rl("r1", "r1", "b"), rl("r3", "r3", "c")),
		st("b", "B", rl("r2", "r2", "a")),
		st("c", "C"),
	}
}

// star is S fanning out to five terminal states.
func star() []State {
	return []State{
		st("s", "S",
			rl("s1", "s1", "t1"),
			rl("s2", "s2", "t2"),
			rl("s3", "s3", "t3"),
			rl("s4", "s4", "t4"),
			rl("s5", "s5", "t5"),
		),
		st("t1", "T1"),
		st("t2", "T2"),
		st("t3", "T3"),
		st("t4", "T4"),
		st("t5", "T5"),
	}
}
