package xorsat

import "strings"

// Expression is either a single Value or the XOR of an ordered sequence of
// Values.
//
// The XOR form is a multiset: two occurrences of the same variable cancel.
// Insertion order has no meaning beyond the canonical ordering used when
// deduplicating equations. Expressions copy their input and never hand out
// their backing slice, so they can be shared freely.
type Expression struct {
	xor    bool
	values []Value
}

// Single returns an expression holding exactly v.
func Single(v Value) Expression {
	return Expression{values: []Value{v}}
}

// Xor returns the XOR-combination of values. An empty combination is allowed
// and evaluates to 0.
func Xor(values ...Value) Expression {
	vs := make([]Value, len(values))
	copy(vs, values)
	return Expression{xor: true, values: vs}
}

// fromTerms builds the most compact expression for terms, using Single when
// there is exactly one term.
func fromTerms(terms []Value) Expression {
	if len(terms) == 1 {
		return Single(terms[0])
	}
	return Xor(terms...)
}

// IsSingle reports whether e is the Single variant.
func (e Expression) IsSingle() bool { return !e.xor }

// IsXor reports whether e is the XOR-combination variant.
func (e Expression) IsXor() bool { return e.xor }

// Len returns the number of terms: 1 for Single, the sequence length for Xor.
func (e Expression) Len() int { return len(e.values) }

// Value returns the held value of a Single expression. ok is false for Xor.
func (e Expression) Value() (v Value, ok bool) {
	if e.xor || len(e.values) != 1 {
		return Value{}, false
	}
	return e.values[0], true
}

// Values returns a copy of the terms.
func (e Expression) Values() []Value {
	vs := make([]Value, len(e.values))
	copy(vs, e.values)
	return vs
}

// Contains reports whether variable id occurs in e.
func (e Expression) Contains(id int) bool {
	return e.Occurrences(id) > 0
}

// Occurrences counts how many times variable id occurs in e.
func (e Expression) Occurrences(id int) int {
	n := 0
	for _, v := range e.values {
		if v.IsVariableID(id) {
			n++
		}
	}
	return n
}

// Variables returns the variable ids of e in term order, repeats included.
func (e Expression) Variables() []int {
	var ids []int
	for _, v := range e.values {
		if v.IsVariable() {
			ids = append(ids, v.ID())
		}
	}
	return ids
}

// Compare orders Single before Xor, then compares terms lexicographically.
func (e Expression) Compare(o Expression) int {
	if e.xor != o.xor {
		if !e.xor {
			return -1
		}
		return 1
	}
	for i := 0; i < len(e.values) && i < len(o.values); i++ {
		if c := e.values[i].Compare(o.values[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(e.values) < len(o.values):
		return -1
	case len(e.values) > len(o.values):
		return 1
	default:
		return 0
	}
}

// Equal reports whether e and o are structurally identical.
func (e Expression) Equal(o Expression) bool { return e.Compare(o) == 0 }

// String renders e as terms joined by " ⊕ ". The empty combination prints as 0.
func (e Expression) String() string {
	if len(e.values) == 0 {
		return "0"
	}
	parts := make([]string, len(e.values))
	for i, v := range e.values {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ⊕ ")
}
