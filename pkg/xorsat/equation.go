package xorsat

import (
	"fmt"
	"sort"
)

// Side names one side of an Equation.
type Side int

const (
	// SideLeft is the left-hand side.
	SideLeft Side = iota
	// SideRight is the right-hand side.
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Equation states that the XOR of the left terms equals the XOR of the right
// terms.
//
// Raw equations come straight from scripts and have the shape
// Xor(v1, ..., vk) = Single(True). Extraction rewrites them into the
// normal form Single(Var(v)) = <expression without v>, in which the right side
// is either a constant (a constant equation) or the XOR of a constant and
// other variables (a partial equation).
type Equation struct {
	Left  Expression
	Right Expression
}

// NewEquation returns left = right.
func NewEquation(left, right Expression) Equation {
	return Equation{Left: left, Right: right}
}

// Substitution replaces every occurrence of Variable by the XOR of Terms.
type Substitution struct {
	Variable int
	Terms    []Value
}

// NewSubstitution builds a substitution of variable by the terms of e.
func NewSubstitution(variable int, e Expression) *Substitution {
	return &Substitution{Variable: variable, Terms: e.Values()}
}

// CountMembers returns the number of terms across both sides. A normalised
// constant equation has exactly 2 members.
func (e Equation) CountMembers() int {
	return e.Left.Len() + e.Right.Len()
}

// IsConstant reports whether the right side is a lone constant.
func (e Equation) IsConstant() bool {
	v, ok := e.Right.Value()
	if !ok {
		return false
	}
	_, isConst := v.Bool()
	return isConst
}

// Locate reports the side holding variable v. The left side is searched
// first. ErrVariableNotFound is returned if neither side references v.
func (e Equation) Locate(v int) (Side, error) {
	if e.Left.Contains(v) {
		return SideLeft, nil
	}
	if e.Right.Contains(v) {
		return SideRight, nil
	}
	return SideLeft, fmt.Errorf("%w: %s in %s", ErrVariableNotFound, Var(v), e)
}

// Substitute isolates variable v on the left side.
//
// Every occurrence of v is removed from the side where Locate finds it and
// all remaining terms of both sides are moved to the right. If sub is not nil,
// each occurrence of sub.Variable among those terms is replaced by sub.Terms.
// The result is normalised with IsolateLeft, so an equation in which v
// reappears after substitution fails with ErrUnsolvable, as does one in which
// v occurs an even number of times and cancels itself out.
func (e Equation) Substitute(v int, sub *Substitution) (Equation, error) {
	side, err := e.Locate(v)
	if err != nil {
		return Equation{}, err
	}

	terms := make([]Value, 0, e.CountMembers())
	removed := 0
	collect := func(x Expression, strip bool) {
		for _, t := range x.values {
			if strip && t.IsVariableID(v) {
				removed++
				continue
			}
			terms = append(terms, t)
		}
	}
	collect(e.Left, side == SideLeft)
	collect(e.Right, side == SideRight)

	if removed%2 == 0 {
		return Equation{}, fmt.Errorf("%w: %s cancels out of %s", ErrUnsolvable, Var(v), e)
	}

	if sub != nil {
		kept := terms[:0:0]
		hits := 0
		for _, t := range terms {
			if t.IsVariableID(sub.Variable) {
				hits++
				continue
			}
			kept = append(kept, t)
		}
		for i := 0; i < hits; i++ {
			kept = append(kept, sub.Terms...)
		}
		terms = kept
	}

	return Equation{Left: Single(Var(v)), Right: fromTerms(terms)}.IsolateLeft()
}

// IsolateLeft normalises an equation whose left side is Single(Var(v)).
//
// Constants on the right fold into one parity constant. A variable occurring
// an even number of times on the right cancels, one occurring an odd number of
// times survives once. The resulting right side is Single(constant) when no
// variable survives, otherwise Xor(constant, variables ascending...).
// ErrUnsolvable is returned if v itself appears on the right.
func (e Equation) IsolateLeft() (Equation, error) {
	target, ok := e.Left.Value()
	if !ok || !target.IsVariable() {
		return Equation{}, fmt.Errorf("%w: %s", ErrNotIsolated, e)
	}

	parity := false
	counts := make(map[int]int, e.Right.Len())
	for _, t := range e.Right.values {
		if t == target {
			return Equation{}, fmt.Errorf("%w: %s appears on both sides of %s", ErrUnsolvable, target, e)
		}
		switch t.Kind() {
		case KindTrue:
			parity = !parity
		case KindFalse:
		case KindVariable:
			counts[t.ID()]++
		}
	}

	ids := make([]int, 0, len(counts))
	for id, n := range counts {
		if n%2 == 1 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	terms := make([]Value, 0, len(ids)+1)
	terms = append(terms, Const(parity))
	for _, id := range ids {
		terms = append(terms, Var(id))
	}
	return Equation{Left: Single(target), Right: fromTerms(terms)}, nil
}

// LeftVariables returns the variable ids mentioned on the left side. For a
// raw equation these are all of its variables, for a normalised one the
// single isolated variable.
func (e Equation) LeftVariables() []int {
	return e.Left.Variables()
}

// Variables returns every variable id referenced by e, in term order,
// repeats included.
func (e Equation) Variables() []int {
	return append(e.Left.Variables(), e.Right.Variables()...)
}

// IsSatisfied evaluates e under a partial assignment.
//
// The check is optimistic: as long as any referenced variable is unassigned
// the equation cannot be falsified yet and IsSatisfied returns true. Once all
// are known it compares the XOR of both sides.
func (e Equation) IsSatisfied(a *Assignment) bool {
	parity := false
	for _, side := range [2]Expression{e.Left, e.Right} {
		for _, t := range side.values {
			switch t.Kind() {
			case KindTrue:
				parity = !parity
			case KindFalse:
			case KindVariable:
				b, ok := a.Lookup(t.ID())
				if !ok {
					return true
				}
				if b {
					parity = !parity
				}
			}
		}
	}
	return !parity
}

// Compare orders equations by left side, then right side.
func (e Equation) Compare(o Equation) int {
	if c := e.Left.Compare(o.Left); c != 0 {
		return c
	}
	return e.Right.Compare(o.Right)
}

// Equal reports whether e and o are structurally identical.
func (e Equation) Equal(o Equation) bool { return e.Compare(o) == 0 }

func (e Equation) String() string {
	return e.Left.String() + " = " + e.Right.String()
}

// sortEquations sorts in place by Compare and removes duplicates.
func sortEquations(eqs []Equation) []Equation {
	sort.SliceStable(eqs, func(i, j int) bool { return eqs[i].Compare(eqs[j]) < 0 })
	out := eqs[:0]
	for i, eq := range eqs {
		if i > 0 && eq.Equal(out[len(out)-1]) {
			continue
		}
		out = append(out, eq)
	}
	return out
}
