// Package verify cross-checks xorsat results with an independent SAT solver.
//
// Each equation is compiled into an XOR circuit with gini's logic package,
// Tseitin-encoded into CNF, and models are enumerated by adding a blocking
// clause after every satisfying assignment. The encoding shares nothing with
// the extraction engine, which makes it a useful oracle for tests and for
// the --verify flag of the command line tool.
package verify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/gitrdm/gokanxor/pkg/xorsat"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// ErrLimit is returned when enumeration stops at the model limit.
var ErrLimit = errors.New("verify: model limit reached")

// Incomplete is returned when the context ends before enumeration finishes.
var Incomplete = errors.New("verify: cancelled before enumeration finished")

// Mismatch describes a disagreement between the engine and the oracle.
type Mismatch struct {
	Engine int
	Oracle int
	Detail string
}

func (m *Mismatch) Error() string {
	if m.Detail != "" {
		return fmt.Sprintf("verify: engine counted %d solutions, oracle %d: %s", m.Engine, m.Oracle, m.Detail)
	}
	return fmt.Sprintf("verify: engine counted %d solutions, oracle %d", m.Engine, m.Oracle)
}

// Count returns the number of assignments of variables satisfying every
// equation, enumerating at most limit models. A limit of zero or less means
// no limit. When the limit is hit the count so far is returned with ErrLimit.
func Count(ctx context.Context, variables []int, equations []xorsat.Equation, limit int) (int, error) {
	c := logic.NewC()
	lits := make(map[int]z.Lit, len(variables))
	inputs := make([]z.Lit, len(variables))
	for i, id := range variables {
		m := c.Lit()
		lits[id] = m
		inputs[i] = m
	}

	roots := make([]z.Lit, 0, len(equations))
	for _, eq := range equations {
		root, err := compile(c, lits, eq)
		if err != nil {
			return 0, err
		}
		roots = append(roots, root)
	}

	g := gini.New()
	c.ToCnf(g)
	// ToCnf leaves the constant variable free.
	g.Add(c.T)
	g.Add(0)
	for _, m := range inputs {
		// Mentions every input so unconstrained variables get a value.
		g.Add(c.T)
		g.Add(m)
		g.Add(0)
	}
	for _, root := range roots {
		g.Add(root)
		g.Add(0)
	}

	count := 0
	for limit <= 0 || count < limit {
		switch waitForSolution(ctx, g.GoSolve()) {
		case satisfiable:
			count++
			for _, m := range inputs {
				if g.Value(m) {
					g.Add(m.Not())
				} else {
					g.Add(m)
				}
			}
			g.Add(0)
		case unsatisfiable:
			return count, nil
		default:
			return count, Incomplete
		}
	}
	return count, ErrLimit
}

// CountProblem counts the solutions of the raw script equations of p.
func CountProblem(ctx context.Context, p *xorsat.Problem, limit int) (int, error) {
	return Count(ctx, p.Variables(), p.Equations(), limit)
}

// Check compares the outcome of xorsat.Run on p against the oracle. A
// solution count beyond limit is not compared.
func Check(ctx context.Context, p *xorsat.Problem, res xorsat.Result, runErr error, limit int) error {
	engine := res.Count
	if errors.Is(runErr, xorsat.ErrUnsatisfiable) {
		engine = 0
	} else if runErr != nil {
		return runErr
	}

	raw := p.Equations()
	// An empty system is reported as 0 by convention.
	if len(raw) == 0 {
		if engine != 0 {
			return &Mismatch{Engine: engine, Oracle: 0, Detail: "system has no equations"}
		}
		return nil
	}

	oracle, err := Count(ctx, p.Variables(), raw, limit)
	if errors.Is(err, ErrLimit) {
		if engine < oracle {
			return &Mismatch{Engine: engine, Oracle: oracle, Detail: "oracle reached its limit first"}
		}
		return nil
	}
	if err != nil {
		return err
	}

	if engine != oracle {
		return &Mismatch{Engine: engine, Oracle: oracle}
	}
	if engine > 0 {
		if err := Satisfies(p.Variables(), raw, res.Example); err != nil {
			return &Mismatch{Engine: engine, Oracle: oracle, Detail: err.Error()}
		}
	}
	return nil
}

// Satisfies checks that the bitstring bits, one character per variable in
// order, satisfies every equation.
func Satisfies(variables []int, equations []xorsat.Equation, bits string) error {
	if len(bits) != len(variables) {
		return fmt.Errorf("example %q has %d bits for %d variables", bits, len(bits), len(variables))
	}
	a := xorsat.NewAssignment(len(variables))
	for i, id := range variables {
		switch bits[i] {
		case '0':
			a.Set(id, false)
		case '1':
			a.Set(id, true)
		default:
			return fmt.Errorf("example %q: invalid bit %q", bits, bits[i])
		}
	}
	for _, eq := range equations {
		if !eq.IsSatisfied(a) {
			return fmt.Errorf("example %q violates %s", bits, eq)
		}
	}
	return nil
}

// compile returns a literal that holds exactly when eq holds, that is when
// the XOR of all its terms is 0.
func compile(c *logic.C, lits map[int]z.Lit, eq xorsat.Equation) (z.Lit, error) {
	x := c.F
	parity := false
	for _, side := range []xorsat.Expression{eq.Left, eq.Right} {
		for _, t := range side.Values() {
			switch t.Kind() {
			case xorsat.KindTrue:
				parity = !parity
			case xorsat.KindFalse:
			case xorsat.KindVariable:
				m, ok := lits[t.ID()]
				if !ok {
					return z.LitNull, fmt.Errorf("equation %s references unknown variable %s", eq, t)
				}
				x = c.Xor(x, m)
			}
		}
	}
	// x = parity
	if parity {
		return x, nil
	}
	return x.Not(), nil
}

func waitForSolution(ctx context.Context, gs inter.Solve) int {
	t := time.NewTicker(5 * time.Millisecond)
	defer t.Stop()

	for {
		if result, ok := gs.Test(); ok {
			return result
		}
		select {
		case <-ctx.Done():
			return gs.Stop()
		case <-t.C:
		}
	}
}
