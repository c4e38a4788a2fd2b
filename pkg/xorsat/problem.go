package xorsat

import (
	"fmt"
	"sort"
)

// Problem is a parsed puzzle: VariableCount boolean variables and
// ScriptCount scripts. References[i] lists the scripts named on the line of
// variable i+1. Each script requires the XOR of the variables that name it
// to be 1.
type Problem struct {
	VariableCount int
	ScriptCount   int
	References    [][]int
}

// NewProblem validates and returns a problem.
func NewProblem(variables, scripts int, references [][]int) (*Problem, error) {
	p := &Problem{VariableCount: variables, ScriptCount: scripts, References: references}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the counts and that every script index lies in
// 1..ScriptCount.
func (p *Problem) Validate() error {
	if p.VariableCount < 0 {
		return fmt.Errorf("negative variable count %d", p.VariableCount)
	}
	if p.ScriptCount < 0 {
		return fmt.Errorf("negative script count %d", p.ScriptCount)
	}
	if len(p.References) > p.VariableCount {
		return fmt.Errorf("%d reference lists for %d variables", len(p.References), p.VariableCount)
	}
	for i, refs := range p.References {
		for _, a := range refs {
			if a < 1 || a > p.ScriptCount {
				return fmt.Errorf("variable %d references script %d outside 1..%d", i+1, a, p.ScriptCount)
			}
		}
	}
	return nil
}

// Variables returns the ids 1..VariableCount.
func (p *Problem) Variables() []int {
	vs := make([]int, p.VariableCount)
	for i := range vs {
		vs[i] = i + 1
	}
	return vs
}

// ScriptVariables returns, for each script a (at index a-1), the ascending
// ids of the variables whose line names a. A variable naming the same script
// twice is listed once.
func (p *Problem) ScriptVariables() [][]int {
	scripts := make([][]int, p.ScriptCount)
	for i, refs := range p.References {
		id := i + 1
		for _, a := range refs {
			if a < 1 || a > p.ScriptCount {
				continue
			}
			vs := scripts[a-1]
			if n := len(vs); n > 0 && vs[n-1] == id {
				continue
			}
			scripts[a-1] = append(vs, id)
		}
	}
	return scripts
}

// Equations builds one raw equation Xor(variables...) = 1 per script,
// stably sorted by number of variables so that smaller scripts are
// extracted first.
func (p *Problem) Equations() []Equation {
	scripts := p.ScriptVariables()
	sort.SliceStable(scripts, func(i, j int) bool { return len(scripts[i]) < len(scripts[j]) })

	eqs := make([]Equation, len(scripts))
	for i, vs := range scripts {
		terms := make([]Value, len(vs))
		for j, id := range vs {
			terms[j] = Var(id)
		}
		eqs[i] = Equation{Left: Xor(terms...), Right: Single(True())}
	}
	return eqs
}
