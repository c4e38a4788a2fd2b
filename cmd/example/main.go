// Package main demonstrates basic xorsat usage patterns.
//
// This example shows how to build equations by hand, run the extraction
// pass, and solve either directly or through a parsed Problem.
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gitrdm/gokanxor/pkg/xorsat"
)

func main() {
	fmt.Println("=== xorsat Examples ===")
	fmt.Println()

	equationBasics()
	extraction()
	parsedProblem()
	contradiction()
}

// equationBasics demonstrates substitution and normalisation.
func equationBasics() {
	fmt.Println("1. Equation Basics:")

	// v1 ⊕ v2 ⊕ v3 = 1
	eq := xorsat.NewEquation(
		xorsat.Xor(xorsat.Var(1), xorsat.Var(2), xorsat.Var(3)),
		xorsat.Single(xorsat.True()),
	)
	fmt.Printf("   raw:        %s\n", eq)

	isolated, _ := eq.Substitute(1, nil)
	fmt.Printf("   isolate v1: %s\n", isolated)

	// Knowing v2 = 1 ⊕ v3 collapses v1 to a constant.
	sub := &xorsat.Substitution{Variable: 2, Terms: []xorsat.Value{xorsat.True(), xorsat.Var(3)}}
	constant, _ := eq.Substitute(1, sub)
	fmt.Printf("   v2 := 1 ⊕ v3: %s (constant: %v)\n", constant, constant.IsConstant())
	fmt.Println()
}

// extraction demonstrates the extraction pass over a small system.
func extraction() {
	fmt.Println("2. Extraction:")

	raw := []xorsat.Equation{
		xorsat.NewEquation(xorsat.Xor(xorsat.Var(1)), xorsat.Single(xorsat.True())),
		xorsat.NewEquation(xorsat.Xor(xorsat.Var(1), xorsat.Var(2)), xorsat.Single(xorsat.True())),
		xorsat.NewEquation(xorsat.Xor(xorsat.Var(2), xorsat.Var(3), xorsat.Var(4)), xorsat.Single(xorsat.True())),
	}
	ext := xorsat.NewExtractor().Extract(raw)
	for _, c := range ext.Constants {
		fmt.Printf("   constant: %s\n", c)
	}
	for _, e := range ext.Equations {
		fmt.Printf("   partial:  %s\n", e)
	}

	res, err := xorsat.Solve([]int{1, 2, 3, 4}, ext.Constants, ext.Equations)
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}
	fmt.Printf("   %d solutions, first %s\n", res.Count, res.Example)
	fmt.Println()
}

// parsedProblem demonstrates the full pipeline from the text format.
func parsedProblem() {
	fmt.Println("3. Parsed Problem:")

	input := strings.Join([]string{
		"3 1",
		"1 1",
		"1 1",
		"1 1",
	}, "\n")
	p, err := xorsat.ParseProblem(strings.NewReader(input))
	if err != nil {
		fmt.Printf("   parse error: %v\n", err)
		return
	}
	out, err := xorsat.Output(xorsat.Run(context.Background(), p, xorsat.WithSolutions()))
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}
	fmt.Printf("   output:\n%s\n", indent(out))
	fmt.Println()
}

// contradiction demonstrates an unsatisfiable system.
func contradiction() {
	fmt.Println("4. Contradiction:")

	constants := []xorsat.Equation{
		xorsat.NewEquation(xorsat.Single(xorsat.Var(1)), xorsat.Single(xorsat.True())),
		xorsat.NewEquation(xorsat.Single(xorsat.Var(1)), xorsat.Single(xorsat.False())),
	}
	_, err := xorsat.Solve([]int{1}, constants, nil)
	fmt.Printf("   unsatisfiable: %v\n", errors.Is(err, xorsat.ErrUnsatisfiable))
	fmt.Println()
}

func indent(s string) string {
	return "   " + strings.ReplaceAll(s, "\n", "\n   ")
}
