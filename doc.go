/*
Package tendril is a scalar-valued reverse-mode automatic differentiation engine: it records arithmetic over float64 values as a computation graph and computes exact gradients of any output with respect to any value that fed it.

It implements the classic "define-by-run" tape: every operation returns a new node that remembers its operands, and a single backward pass walks the recorded graph in reverse topological order, accumulating local derivatives via the chain rule.

# Concept

Tendril treats a numeric expression as a directed acyclic graph of Values. Building the expression builds the graph; calling Backward on a result seeds its gradient to 1 and pushes derivative contributions to every ancestor. Because gradients are accumulated (never overwritten), a value reused in several places receives the sum of the contributions from every path, which is exactly what the chain rule requires.

# Key Features

  - Exact Gradients: Reverse-mode differentiation with per-operation derivative rules, not numeric approximation.
  - Deterministic Execution: Parents are ordered and traversal is a single reproducible pass.
  - Plain Values: Nodes are immutable after construction; only the gradient accumulator changes, and resetting it is explicit.
  - IEEE-754 Semantics: NaN and Inf flow through forward and backward passes untouched, so numeric edge cases stay observable.

# Usage

Build an expression by chaining operations, then differentiate it.

	package main

	import (
		"fmt"

		"github.com/aretw0/tendril"
	)

	func main() {
		// Inputs and parameters of a tiny neuron.
		x := tendril.New(2, tendril.WithLabel("x"))
		w := tendril.New(-3, tendril.WithLabel("w"))
		b := tendril.New(1, tendril.WithLabel("b"))

		// y = tanh(x*w + b)
		y := x.Mul(w).Add(b).Tanh()

		// Reverse pass: dy/dnode for every node that produced y.
		y.Backward()

		fmt.Println("y =", y.Data())
		fmt.Println("dy/dx =", x.Grad())
		fmt.Println("dy/dw =", w.Grad())
	}

The graph is introspectable (Parents, Op, Data, Grad), which is what the
renderers under internal/presentation consume; the engine itself never
serializes or mutates a built graph.
*/
package tendril
