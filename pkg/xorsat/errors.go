package xorsat

import "errors"

var (
	// ErrUnsolvable is returned when a derivation cannot isolate its target
	// variable, because the variable reappears on the right side or cancels
	// itself out. The extractor discards such derivations.
	ErrUnsolvable = errors.New("xorsat: equation is unsolvable for variable")

	// ErrVariableNotFound is returned when a variable is referenced by neither
	// side of an equation, or when no earlier extraction can substitute for
	// any variable of an equation.
	ErrVariableNotFound = errors.New("xorsat: variable not found")

	// ErrUnsatisfiable is returned when the system has no satisfying
	// assignment: the seeded constants contradict each other or the search
	// finds zero solutions.
	ErrUnsatisfiable = errors.New("xorsat: system is unsatisfiable")

	// ErrNotIsolated is returned by IsolateLeft when the left side is not a
	// single variable.
	ErrNotIsolated = errors.New("xorsat: left side is not a single variable")
)
