package xorsat

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// equationCmp compares equations structurally, which cmp cannot do on its
// own because Expression keeps its terms unexported.
var equationCmp = cmp.Comparer(func(a, b Equation) bool { return a.Equal(b) })

// raw builds the script equation Xor(ids...) = 1.
func raw(ids ...int) Equation {
	terms := make([]Value, len(ids))
	for i, id := range ids {
		terms[i] = Var(id)
	}
	return NewEquation(Xor(terms...), Single(True()))
}

// isolated builds Single(Var(v)) = right.
func isolated(v int, right Expression) Equation {
	return NewEquation(Single(Var(v)), right)
}

func TestEquationIsolateLeft(t *testing.T) {
	cases := []struct {
		name string
		in   Equation
		want Equation
	}{
		{
			name: "paired variable cancels at the front",
			in:   isolated(1, Xor(Var(2), Var(2), True(), Var(3))),
			want: isolated(1, Xor(True(), Var(3))),
		},
		{
			name: "paired variable cancels in the middle",
			in:   isolated(1, Xor(True(), Var(2), Var(3), Var(2))),
			want: isolated(1, Xor(True(), Var(3))),
		},
		{
			name: "paired variable cancels at the end",
			in:   isolated(1, Xor(True(), Var(3), Var(2), Var(2))),
			want: isolated(1, Xor(True(), Var(3))),
		},
		{
			name: "three occurrences keep one",
			in:   isolated(1, Xor(Var(4), Var(4), Var(4))),
			want: isolated(1, Xor(False(), Var(4))),
		},
		{
			name: "constants fold",
			in:   isolated(1, Xor(True(), True(), False())),
			want: isolated(1, Single(False())),
		},
		{
			name: "empty combination is false",
			in:   isolated(1, Xor()),
			want: isolated(1, Single(False())),
		},
		{
			name: "variables come out sorted",
			in:   isolated(1, Xor(Var(5), True(), Var(3))),
			want: isolated(1, Xor(True(), Var(3), Var(5))),
		},
		{
			name: "single variable gains an explicit constant",
			in:   isolated(1, Single(Var(2))),
			want: isolated(1, Xor(False(), Var(2))),
		},
		{
			name: "single constant is kept",
			in:   isolated(1, Single(True())),
			want: isolated(1, Single(True())),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.IsolateLeft()
			if err != nil {
				t.Fatalf("IsolateLeft(%s): %v", tc.in, err)
			}
			if diff := cmp.Diff(tc.want, got, equationCmp); diff != "" {
				t.Errorf("IsolateLeft(%s) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}

	t.Run("Target on the right fails", func(t *testing.T) {
		for _, eq := range []Equation{
			isolated(1, Xor(True(), Var(2), Var(1))),
			isolated(1, Single(Var(1))),
			isolated(1, Xor(Var(1), Var(1))),
		} {
			if _, err := eq.IsolateLeft(); !errors.Is(err, ErrUnsolvable) {
				t.Errorf("IsolateLeft(%s) error = %v, want ErrUnsolvable", eq, err)
			}
		}
	})

	t.Run("Left side must be a single variable", func(t *testing.T) {
		for _, eq := range []Equation{
			raw(1, 2),
			NewEquation(Single(True()), Single(Var(1))),
		} {
			if _, err := eq.IsolateLeft(); !errors.Is(err, ErrNotIsolated) {
				t.Errorf("IsolateLeft(%s) error = %v, want ErrNotIsolated", eq, err)
			}
		}
	})
}

func TestEquationSubstitute(t *testing.T) {
	t.Run("Isolates without substitution", func(t *testing.T) {
		got, err := raw(1, 2, 3).Substitute(2, nil)
		if err != nil {
			t.Fatal(err)
		}
		want := isolated(2, Xor(True(), Var(1), Var(3)))
		if diff := cmp.Diff(want, got, equationCmp); diff != "" {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("Isolates a variable found on the right", func(t *testing.T) {
		eq := isolated(1, Xor(True(), Var(2)))
		got, err := eq.Substitute(2, nil)
		if err != nil {
			t.Fatal(err)
		}
		want := isolated(2, Xor(True(), Var(1)))
		if diff := cmp.Diff(want, got, equationCmp); diff != "" {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("Substitution collapses to a constant", func(t *testing.T) {
		// v3 = v1 turns v1 ⊕ v2 ⊕ v3 = 1 into v2 = 1.
		sub := NewSubstitution(3, Xor(False(), Var(1)))
		got, err := raw(1, 2, 3).Substitute(2, sub)
		if err != nil {
			t.Fatal(err)
		}
		want := isolated(2, Single(True()))
		if diff := cmp.Diff(want, got, equationCmp); diff != "" {
			t.Errorf("got %s, want %s", got, want)
		}
		if !got.IsConstant() || got.CountMembers() != 2 {
			t.Errorf("%s should be a constant equation", got)
		}
	})

	t.Run("Substitution absent from the equation is a no-op", func(t *testing.T) {
		sub := NewSubstitution(9, Single(True()))
		got, err := raw(1, 2).Substitute(1, sub)
		if err != nil {
			t.Fatal(err)
		}
		want := isolated(1, Xor(True(), Var(2)))
		if diff := cmp.Diff(want, got, equationCmp); diff != "" {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("Reintroduced variable is unsolvable", func(t *testing.T) {
		sub := NewSubstitution(3, Xor(True(), Var(1)))
		if _, err := raw(1, 2, 3).Substitute(1, sub); !errors.Is(err, ErrUnsolvable) {
			t.Errorf("error = %v, want ErrUnsolvable", err)
		}
	})

	t.Run("Self-cancelling variable is unsolvable", func(t *testing.T) {
		eq := NewEquation(Xor(Var(1), Var(1), Var(2)), Single(True()))
		if _, err := eq.Substitute(1, nil); !errors.Is(err, ErrUnsolvable) {
			t.Errorf("error = %v, want ErrUnsolvable", err)
		}
	})

	t.Run("Unknown variable", func(t *testing.T) {
		if _, err := raw(1, 2).Substitute(7, nil); !errors.Is(err, ErrVariableNotFound) {
			t.Errorf("error = %v, want ErrVariableNotFound", err)
		}
	})

	t.Run("Input is left untouched", func(t *testing.T) {
		eq := raw(1, 2, 3)
		before := eq.String()
		if _, err := eq.Substitute(1, NewSubstitution(2, Xor(True(), Var(3)))); err != nil {
			t.Fatal(err)
		}
		if eq.String() != before {
			t.Errorf("Substitute modified its receiver: %s", eq)
		}
	})
}

func TestEquationLocate(t *testing.T) {
	eq := isolated(1, Xor(True(), Var(2)))
	if side, err := eq.Locate(1); err != nil || side != SideLeft {
		t.Errorf("Locate(1) = %v, %v", side, err)
	}
	if side, err := eq.Locate(2); err != nil || side != SideRight {
		t.Errorf("Locate(2) = %v, %v", side, err)
	}
	if _, err := eq.Locate(3); !errors.Is(err, ErrVariableNotFound) {
		t.Errorf("Locate(3) error = %v", err)
	}
}

func TestEquationIsSatisfied(t *testing.T) {
	cases := []struct {
		name string
		eq   Equation
		a    map[int]bool
		want bool
	}{
		{"empty assignment is optimistic", raw(1, 2, 3), nil, true},
		{"partial assignment is optimistic", raw(1, 2, 3), map[int]bool{1: true, 2: true}, true},
		{"odd parity holds", raw(1, 2, 3), map[int]bool{1: true, 2: false, 3: false}, true},
		{"even parity fails", raw(1, 2, 3), map[int]bool{1: true, 2: true, 3: false}, false},
		{"normalised equation holds", isolated(1, Xor(True(), Var(2))), map[int]bool{1: true, 2: false}, true},
		{"normalised equation fails", isolated(1, Xor(True(), Var(2))), map[int]bool{1: false, 2: false}, false},
		{"constant equation", isolated(4, Single(False())), map[int]bool{4: true}, false},
		{"unrelated bindings are ignored", raw(1), map[int]bool{2: true}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.eq.IsSatisfied(AssignmentOf(tc.a)); got != tc.want {
				t.Errorf("%s under %v: IsSatisfied = %v, want %v", tc.eq, tc.a, got, tc.want)
			}
		})
	}
}

func TestSortEquations(t *testing.T) {
	in := []Equation{
		isolated(2, Single(True())),
		isolated(1, Xor(True(), Var(3))),
		isolated(1, Single(False())),
		isolated(2, Single(True())),
		isolated(1, Xor(False(), Var(3))),
	}
	got := sortEquations(in)
	want := []Equation{
		isolated(1, Single(False())),
		isolated(1, Xor(True(), Var(3))),
		isolated(1, Xor(False(), Var(3))),
		isolated(2, Single(True())),
	}
	if diff := cmp.Diff(want, got, equationCmp); diff != "" {
		t.Errorf("sortEquations mismatch (-want +got):\n%s", diff)
	}
}

func TestEquationString(t *testing.T) {
	if got := raw(1, 2).String(); got != "v1 ⊕ v2 = 1" {
		t.Errorf("String() = %q", got)
	}
	if got := isolated(3, Xor(False(), Var(1))).String(); got != "v3 = 0 ⊕ v1" {
		t.Errorf("String() = %q", got)
	}
}
