package xorsat

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseProblem(t *testing.T) {
	t.Run("Valid input", func(t *testing.T) {
		in := "\n\n3 2\n2 1 2\n1 1\n0\ntrailing garbage\n"
		p, err := ParseProblem(strings.NewReader(in))
		if err != nil {
			t.Fatal(err)
		}
		if p.VariableCount != 3 || p.ScriptCount != 2 {
			t.Errorf("counts = %d %d", p.VariableCount, p.ScriptCount)
		}
		want := [][]int{{1, 2}, {1}, nil}
		if diff := cmp.Diff(want, p.References); diff != "" {
			t.Errorf("references mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([][]int{{1, 2}, {1}}, p.ScriptVariables()); diff != "" {
			t.Errorf("script variables mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Count token is ignored", func(t *testing.T) {
		p, err := ParseProblem(strings.NewReader("1 3\n7 3 1\n"))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([][]int{{3, 1}}, p.References); diff != "" {
			t.Errorf("references mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Blank variable line", func(t *testing.T) {
		p, err := ParseProblem(strings.NewReader("2 1\n\n1 1\n"))
		if err != nil {
			t.Fatal(err)
		}
		if len(p.References[0]) != 0 || len(p.References[1]) != 1 {
			t.Errorf("references = %v", p.References)
		}
	})

	errCases := []struct {
		name string
		in   string
		want string
	}{
		{"empty input", "", "header"},
		{"short header", "3\n", "header"},
		{"bad variable count", "x 1\n", "variable count"},
		{"bad script count", "1 y\n", "script count"},
		{"negative counts", "-1 2\n", "negative"},
		{"script index too large", "2 2\n1 1\n1 3\n", "line 3: script index 3 outside 1..2"},
		{"script index zero", "1 2\n1 0\n", "outside"},
		{"non-numeric index", "1 2\n1 a\n", "script index"},
		{"missing lines", "3 1\n1 1\n", "expected 3 variable lines, got 1"},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseProblem(strings.NewReader(tc.in))
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestProblem(t *testing.T) {
	t.Run("Validate rejects out of range references", func(t *testing.T) {
		if _, err := NewProblem(2, 1, [][]int{{1}, {2}}); err == nil {
			t.Error("expected error for script 2 of 1")
		}
		if _, err := NewProblem(1, 1, [][]int{{1}, {1}}); err == nil {
			t.Error("expected error for more reference lists than variables")
		}
	})

	t.Run("Equations are sorted by size", func(t *testing.T) {
		// Script 1: v1 v2 v3, script 2: v2, script 3: v1 v3.
		p, err := NewProblem(3, 3, [][]int{{1, 3}, {1, 2}, {1, 3}})
		if err != nil {
			t.Fatal(err)
		}
		want := []Equation{raw(2), raw(1, 3), raw(1, 2, 3)}
		if diff := cmp.Diff(want, p.Equations(), equationCmp); diff != "" {
			t.Errorf("equations mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Repeated reference collapses", func(t *testing.T) {
		p, err := NewProblem(2, 1, [][]int{{1, 1}, {1}})
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([][]int{{1, 2}}, p.ScriptVariables()); diff != "" {
			t.Errorf("script variables mismatch (-want +got):\n%s", diff)
		}
	})
}
