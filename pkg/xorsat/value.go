// Package xorsat provides an XOR-constraint solver over GF(2).
// This file defines Value, the atomic term of every expression: a boolean
// constant or a reference to a numbered boolean variable.
package xorsat

import "fmt"

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	// KindTrue is the constant 1.
	KindTrue Kind = iota
	// KindFalse is the constant 0.
	KindFalse
	// KindVariable references a boolean variable by id.
	KindVariable
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindVariable:
		return "variable"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a tagged union of True, False and Var(id).
//
// Values are immutable and comparable with ==, which makes them usable as map
// keys. The zero Value is True.
type Value struct {
	kind Kind
	id   int
}

// True returns the constant 1.
func True() Value { return Value{kind: KindTrue} }

// False returns the constant 0.
func False() Value { return Value{kind: KindFalse} }

// Const returns True or False according to b.
func Const(b bool) Value {
	if b {
		return True()
	}
	return False()
}

// Var returns a reference to variable id. Variable ids start at 1.
func Var(id int) Value { return Value{kind: KindVariable, id: id} }

// Kind reports which variant v is.
func (v Value) Kind() Kind { return v.kind }

// ID returns the variable id, or 0 for constants.
func (v Value) ID() int {
	if v.kind != KindVariable {
		return 0
	}
	return v.id
}

// IsVariable reports whether v references a variable.
func (v Value) IsVariable() bool { return v.kind == KindVariable }

// IsVariableID reports whether v references variable id.
func (v Value) IsVariableID(id int) bool {
	return v.kind == KindVariable && v.id == id
}

// Bool returns the truth value of a constant. ok is false for variables.
func (v Value) Bool() (value bool, ok bool) {
	switch v.kind {
	case KindTrue:
		return true, true
	case KindFalse:
		return false, true
	case KindVariable:
		return false, false
	default:
		return false, false
	}
}

// Compare orders values as True < False < Var(1) < Var(2) < ...
// It returns -1, 0 or +1. The order carries no meaning beyond giving
// equations a canonical form for deduplication.
func (v Value) Compare(o Value) int {
	switch {
	case v.kind < o.kind:
		return -1
	case v.kind > o.kind:
		return 1
	case v.id < o.id:
		return -1
	case v.id > o.id:
		return 1
	default:
		return 0
	}
}

// String renders constants as 1/0 and variables as v<id>.
func (v Value) String() string {
	switch v.kind {
	case KindTrue:
		return "1"
	case KindFalse:
		return "0"
	case KindVariable:
		return fmt.Sprintf("v%d", v.id)
	default:
		return "?"
	}
}
