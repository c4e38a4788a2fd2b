package xorsat

import (
	"sort"
	"strings"
)

// Assignment is a partial mapping from variable id to boolean.
//
// The zero value and a nil *Assignment are both valid empty assignments for
// reading. Ids below 1 are never assigned.
type Assignment struct {
	values   []int8 // indexed by id: 0 unassigned, 1 false, 2 true
	assigned int
}

// NewAssignment returns an empty assignment sized for ids 1..maxID.
// Larger ids are still accepted by Set, which grows the storage.
func NewAssignment(maxID int) *Assignment {
	if maxID < 0 {
		maxID = 0
	}
	return &Assignment{values: make([]int8, maxID+1)}
}

// AssignmentOf builds an assignment from a map, mostly for tests and callers
// that already hold their bindings in a map.
func AssignmentOf(m map[int]bool) *Assignment {
	maxID := 0
	for id := range m {
		if id > maxID {
			maxID = id
		}
	}
	a := NewAssignment(maxID)
	for id, b := range m {
		a.Set(id, b)
	}
	return a
}

// Lookup returns the value bound to id. ok is false when id is unassigned.
func (a *Assignment) Lookup(id int) (value bool, ok bool) {
	if a == nil || id < 1 || id >= len(a.values) {
		return false, false
	}
	switch a.values[id] {
	case 1:
		return false, true
	case 2:
		return true, true
	default:
		return false, false
	}
}

// Set binds id to b, replacing any previous binding. Ids below 1 are ignored.
func (a *Assignment) Set(id int, b bool) {
	if id < 1 {
		return
	}
	if id >= len(a.values) {
		grown := make([]int8, id+1)
		copy(grown, a.values)
		a.values = grown
	}
	if a.values[id] == 0 {
		a.assigned++
	}
	if b {
		a.values[id] = 2
	} else {
		a.values[id] = 1
	}
}

// Unset removes the binding of id, if any.
func (a *Assignment) Unset(id int) {
	if id < 1 || id >= len(a.values) || a.values[id] == 0 {
		return
	}
	a.values[id] = 0
	a.assigned--
}

// Assigned returns the number of bound variables.
func (a *Assignment) Assigned() int {
	if a == nil {
		return 0
	}
	return a.assigned
}

// Clone returns an independent copy.
func (a *Assignment) Clone() *Assignment {
	if a == nil {
		return NewAssignment(0)
	}
	c := &Assignment{values: make([]int8, len(a.values)), assigned: a.assigned}
	copy(c.values, a.values)
	return c
}

// Map returns the bindings as a map.
func (a *Assignment) Map() map[int]bool {
	m := make(map[int]bool, a.Assigned())
	if a == nil {
		return m
	}
	for id := 1; id < len(a.values); id++ {
		if b, ok := a.Lookup(id); ok {
			m[id] = b
		}
	}
	return m
}

// Bits renders the values of variables in the given order as a '0'/'1'
// string. Unassigned variables render as '?'.
func (a *Assignment) Bits(variables []int) string {
	var sb strings.Builder
	sb.Grow(len(variables))
	for _, id := range variables {
		b, ok := a.Lookup(id)
		switch {
		case !ok:
			sb.WriteByte('?')
		case b:
			sb.WriteByte('1')
		default:
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// String renders the bindings as "v1=1 v3=0" in id order.
func (a *Assignment) String() string {
	m := a.Map()
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = Var(id).String() + "=" + Const(m[id]).String()
	}
	return strings.Join(parts, " ")
}
