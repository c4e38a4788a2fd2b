package xorsat

// extract.go: symbolic substitution pass turning raw script equations into
// "variable = expression" normal form.

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Extraction is the result of one extraction pass.
type Extraction struct {
	// Constants holds equations of the form v = 0 or v = 1, sorted and
	// deduplicated.
	Constants []Equation
	// Equations holds partial equations v = c ⊕ u1 ⊕ ... ⊕ uk, sorted and
	// deduplicated.
	Equations []Equation
	// Stats describes the pass.
	Stats Stats
}

// All returns the constants followed by the partial equations.
func (x Extraction) All() []Equation {
	all := make([]Equation, 0, len(x.Constants)+len(x.Equations))
	all = append(all, x.Constants...)
	return append(all, x.Equations...)
}

// Extractor performs a single pass of symbolic elimination.
//
// For every source equation, in the given order, and for every variable v of
// its left side, the extractor looks for an equation extracted from an
// earlier source that isolates some other variable u of the current equation.
// If one exists u is replaced by its expression, then v is isolated on the
// left. Derivations in which v reappears are discarded. All derivations of a
// source are merged into the running collections only after that source is
// finished, so a source never substitutes its own derivations.
//
// The pass is not iterated to a fixed point and does not perform full
// Gaussian elimination. Whatever it leaves under-constrained is handled by
// the exhaustive Solver.
type Extractor struct {
	opts options
}

// NewExtractor returns an extractor configured by opts.
func NewExtractor(opts ...Option) *Extractor {
	return &Extractor{opts: newOptions(opts)}
}

// Extract runs the pass over raw. Callers normally pass raw equations
// sorted by size, smallest first, as Problem.Equations does, so short scripts
// are isolated before they are substituted into longer ones.
func (x *Extractor) Extract(raw []Equation) Extraction {
	start := time.Now()
	stats := Stats{SourceEquations: len(raw)}

	// Both collections are indexed by source equation.
	constants := make([][]Equation, 0, len(raw))
	equations := make([][]Equation, 0, len(raw))

	for i, eq := range raw {
		vars := eq.LeftVariables()
		var newConstants, newEquations []Equation
		classify := func(d Equation) {
			if d.CountMembers() == 2 {
				newConstants = append(newConstants, d)
			} else {
				newEquations = append(newEquations, d)
			}
		}

		for _, v := range vars {
			sub, err := lookup(constants, vars, v)
			if err != nil {
				sub, err = lookup(equations, vars, v)
			}
			if err != nil {
				sub = nil
			}

			log := x.opts.log.WithFields(logrus.Fields{
				"source":   i,
				"equation": eq.String(),
				"variable": Var(v).String(),
			})
			if sub != nil {
				log = log.WithField("substitute", Var(sub.Variable).String())
			}

			derived, err := eq.Substitute(v, sub)
			if err != nil {
				stats.Discarded++
				log.WithError(err).Debug("cannot evaluate derivation")
				continue
			}
			stats.Derived++
			log.WithField("derived", derived.String()).Debug("derived equation")
			classify(derived)
		}

		// Every source stays represented, otherwise a constraint whose
		// derivations all collapsed would vanish from the system.
		if len(newConstants)+len(newEquations) == 0 {
			for _, v := range vars {
				derived, err := eq.Substitute(v, nil)
				if err != nil {
					continue
				}
				stats.Fallbacks++
				x.opts.log.WithFields(logrus.Fields{
					"source":  i,
					"derived": derived.String(),
				}).Debug("kept source equation without substitution")
				classify(derived)
				break
			}
		}

		constants = append(constants, newConstants)
		equations = append(equations, newEquations)
	}

	out := Extraction{
		Constants: flatten(constants),
		Equations: flatten(equations),
	}
	stats.Constants = len(out.Constants)
	stats.Equations = len(out.Equations)
	stats.ExtractTime = time.Since(start)
	out.Stats = stats

	if x.opts.monitor != nil {
		x.opts.monitor.RecordExtraction(stats)
	}
	return out
}

// lookup finds the first extracted equation isolating a variable u != except
// that occurs in vars, scanning sources in order.
func lookup(extracted [][]Equation, vars []int, except int) (*Substitution, error) {
	for _, eqs := range extracted {
		for _, eq := range eqs {
			left, ok := eq.Left.Value()
			if !ok || !left.IsVariable() {
				continue
			}
			u := left.ID()
			if u == except {
				continue
			}
			for _, id := range vars {
				if id == u {
					return NewSubstitution(u, eq.Right), nil
				}
			}
		}
	}
	return nil, ErrVariableNotFound
}

func flatten(bySource [][]Equation) []Equation {
	var all []Equation
	for _, eqs := range bySource {
		all = append(all, eqs...)
	}
	return sortEquations(all)
}
