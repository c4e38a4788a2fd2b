package xorsat

import (
	"context"
	"errors"
	"fmt"
)

// Run solves p end to end: it builds the raw script equations, extracts
// them and searches the remaining free variables.
//
// A problem without equations is reported as ErrUnsatisfiable, as is a
// script that references no variable (its constraint reads 0 = 1).
func Run(ctx context.Context, p *Problem, opts ...Option) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	for i, vs := range p.ScriptVariables() {
		if len(vs) == 0 {
			return Result{}, fmt.Errorf("%w: script %d references no variable", ErrUnsatisfiable, i+1)
		}
	}

	raw := p.Equations()
	if len(raw) == 0 {
		return Result{}, fmt.Errorf("%w: no equations", ErrUnsatisfiable)
	}

	ext := NewExtractor(opts...).Extract(raw)
	res, err := NewSolver(p.Variables(), ext.Constants, ext.Equations, opts...).Solve(ctx)
	res.Stats = mergeStats(ext.Stats, res.Stats)
	return res, err
}

// Output renders the outcome of Run: "0" for an unsatisfiable system,
// "count\nexample" otherwise. Errors other than ErrUnsatisfiable are
// returned unchanged.
func Output(res Result, err error) (string, error) {
	if errors.Is(err, ErrUnsatisfiable) {
		return "0", nil
	}
	if err != nil {
		return "", err
	}
	return res.Format(), nil
}

func mergeStats(extract, search Stats) Stats {
	s := search
	s.SourceEquations = extract.SourceEquations
	s.Derived = extract.Derived
	s.Discarded = extract.Discarded
	s.Fallbacks = extract.Fallbacks
	s.Constants = extract.Constants
	s.Equations = extract.Equations
	s.ExtractTime = extract.ExtractTime
	return s
}
