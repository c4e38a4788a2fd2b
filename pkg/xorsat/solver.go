package xorsat

// solver.go: exhaustive backtracking over the variables left free by
// extraction, pruned by partial-equation validity.

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// ctxCheckInterval is the number of search nodes between context checks.
const ctxCheckInterval = 1024

// Result is the outcome of a successful solve.
type Result struct {
	// Count is the number of assignments satisfying every equation.
	Count int
	// Example is the first solution found, one '0'/'1' per variable in
	// ascending id order. The search tries false before true on the
	// lowest-indexed free variable, so Example is deterministic.
	Example string
	// Solutions holds every solution in discovery order when the solve was
	// configured WithSolutions.
	Solutions []string
	// Stats describes the extraction (when run through Run) and the search.
	Stats Stats
}

// Format renders the two-line output "count\nexample".
func (r Result) Format() string {
	return fmt.Sprintf("%d\n%s", r.Count, r.Example)
}

// Solver enumerates every assignment of the variables that satisfies the
// extracted constants and partial equations.
//
// The search is a plain recursive tree walk. Each node first checks every
// partial equation with the optimistic IsSatisfied; a violated equation
// prunes the branch. A node with every variable bound is a solution. Any
// other node branches on the lowest-indexed unbound variable, false first.
//
// The assignment is shared along the path and each binding is undone when its
// branch returns, which gives every branch the same view a private copy would
// while avoiding a copy per node.
//
// Thread safety: a Solver is not safe for concurrent use. Independent Solvers
// may run in parallel.
type Solver struct {
	variables []int
	constants []Equation
	equations []Equation
	opts      options
}

// NewSolver returns a solver over variables (normally 1..N) constrained by
// constant and partial equations as produced by Extractor.
func NewSolver(variables []int, constants, equations []Equation, opts ...Option) *Solver {
	vs := make([]int, len(variables))
	copy(vs, variables)
	sort.Ints(vs)

	eqs := make([]Equation, len(equations))
	copy(eqs, equations)
	// Cheaper checks first.
	sort.SliceStable(eqs, func(i, j int) bool { return eqs[i].Right.Len() < eqs[j].Right.Len() })

	cs := make([]Equation, len(constants))
	copy(cs, constants)

	return &Solver{
		variables: vs,
		constants: cs,
		equations: eqs,
		opts:      newOptions(opts),
	}
}

// Solve is the context-free entry point: it solves with a fresh Solver and
// no cancellation.
func Solve(variables []int, constants, equations []Equation) (Result, error) {
	return NewSolver(variables, constants, equations).Solve(context.Background())
}

// Solve runs the search. It returns ErrUnsatisfiable when the constants
// contradict each other or no assignment satisfies the equations, and the
// context error if ctx is cancelled before the search completes.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	start := time.Now()

	maxID := 0
	if n := len(s.variables); n > 0 {
		maxID = s.variables[n-1]
	}
	assignment := NewAssignment(maxID)
	if err := s.seed(assignment); err != nil {
		return Result{}, err
	}

	st := &search{
		solver:     s,
		ctx:        ctx,
		assignment: assignment,
	}
	st.stats.FreeVariables = len(s.variables) - s.seededCount(assignment)

	err := st.walk(0, 0)
	st.stats.SearchTime = time.Since(start)
	if s.opts.monitor != nil {
		s.opts.monitor.RecordSearch(st.stats)
	}

	s.opts.log.WithFields(logrus.Fields{
		"variables": len(s.variables),
		"free":      st.stats.FreeVariables,
		"nodes":     st.stats.NodesExplored,
		"pruned":    st.stats.Pruned,
		"solutions": st.count,
	}).Debug("search finished")

	if err != nil {
		return Result{}, fmt.Errorf("search interrupted after %d nodes: %w", st.stats.NodesExplored, err)
	}
	if st.count == 0 {
		return Result{Stats: st.stats}, ErrUnsatisfiable
	}
	return Result{
		Count:     st.count,
		Example:   st.first,
		Solutions: st.solutions,
		Stats:     st.stats,
	}, nil
}

// seed binds the variables fixed by constant equations.
func (s *Solver) seed(a *Assignment) error {
	for _, c := range s.constants {
		left, ok := c.Left.Value()
		if !ok || !left.IsVariable() {
			return fmt.Errorf("%w: %s", ErrNotIsolated, c)
		}
		right, ok := c.Right.Value()
		if !ok {
			return fmt.Errorf("constant equation expected, got %s", c)
		}
		value, ok := right.Bool()
		if !ok {
			return fmt.Errorf("constant equation expected, got %s", c)
		}
		if prev, bound := a.Lookup(left.ID()); bound && prev != value {
			s.opts.log.WithField("equation", c.String()).Debug("contradicting constants")
			return fmt.Errorf("%w: %s contradicts %s = %s", ErrUnsatisfiable, c, left, Const(prev))
		}
		a.Set(left.ID(), value)
	}
	return nil
}

func (s *Solver) seededCount(a *Assignment) int {
	n := 0
	for _, id := range s.variables {
		if _, ok := a.Lookup(id); ok {
			n++
		}
	}
	return n
}

// search holds the mutable state of one Solve call.
type search struct {
	solver     *Solver
	ctx        context.Context
	assignment *Assignment
	count      int
	first      string
	solutions  []string
	stats      Stats
}

// walk explores the subtree below the current assignment. next is the
// position in solver.variables from which to look for an unbound variable;
// every variable before it is bound.
func (st *search) walk(next, depth int) error {
	st.stats.NodesExplored++
	if depth > st.stats.MaxDepth {
		st.stats.MaxDepth = depth
	}
	if st.stats.NodesExplored%ctxCheckInterval == 0 {
		if err := st.ctx.Err(); err != nil {
			return err
		}
	}

	for _, eq := range st.solver.equations {
		if !eq.IsSatisfied(st.assignment) {
			st.stats.Pruned++
			return nil
		}
	}

	vars := st.solver.variables
	for next < len(vars) {
		if _, ok := st.assignment.Lookup(vars[next]); !ok {
			break
		}
		next++
	}
	if next == len(vars) {
		st.record()
		return nil
	}

	id := vars[next]
	for _, value := range [2]bool{false, true} {
		st.assignment.Set(id, value)
		err := st.walk(next+1, depth+1)
		st.assignment.Unset(id)
		if err != nil {
			return err
		}
	}
	return nil
}

func (st *search) record() {
	st.count++
	st.stats.SolutionsFound++
	if st.count == 1 || st.solver.opts.solutions {
		bits := st.assignment.Bits(st.solver.variables)
		if st.count == 1 {
			st.first = bits
		}
		if st.solver.opts.solutions {
			st.solutions = append(st.solutions, bits)
		}
	}
}
