package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/internal/presentation/graph"
)

func TestGenerateDOT(t *testing.T) {
	tests := []struct {
		name     string
		root     func() *tendril.Value
		opts     *graph.Options
		contains []string
	}{
		{
			name: "Record Node Per Value",
			root: func() *tendril.Value {
				return tendril.New(5, tendril.WithLabel("x"))
			},
			contains: []string{
				"digraph tendril {",
				"rankdir=LR;",
				`n0 [shape=record, label="{ x | data 5.0000 | grad 0.0000 }"];`,
			},
		},
		{
			name: "Operator Splice",
			root: func() *tendril.Value {
				a := tendril.New(2, tendril.WithLabel("a"))
				b := tendril.New(3, tendril.WithLabel("b"))
				c := a.Mul(b)
				c.SetLabel("c")
				return c
			},
			contains: []string{
				`n0 [shape=record, label="{ c | data 6.0000 | grad 0.0000 }"];`,
				`n0_op [shape=circle, label="*"];`,
				"n0_op -> n0;",
				"n1 -> n0_op;",
				"n2 -> n0_op;",
			},
		},
		{
			name: "Record Specials Are Escaped",
			root: func() *tendril.Value {
				return tendril.New(1, tendril.WithLabel("a|b"))
			},
			contains: []string{
				`label="{ a\|b | data 1.0000`,
			},
		},
		{
			name: "Precision Option",
			root: func() *tendril.Value {
				a := tendril.New(2, tendril.WithLabel("a"))
				return a.Mul(tendril.New(3, tendril.WithLabel("b")))
			},
			opts: &graph.Options{Precision: 2},
			contains: []string{
				`label="{ n0 | data 6.00 | grad 0.00 }"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateDOT(graph.Collect(tt.root()), tt.opts)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateDOT() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}

func TestGenerateDOT_HighlightsBackwardReach(t *testing.T) {
	a := tendril.New(2)
	c := a.MulScalar(3)
	c.Backward()

	got := graph.GenerateDOT(graph.Collect(c), &graph.Options{HighlightGradients: true})
	if !strings.Contains(got, "penwidth=2") {
		t.Errorf("Expected gradient highlighting, got:\n%v", got)
	}

	plain := graph.GenerateDOT(graph.Collect(c), nil)
	if strings.Contains(plain, "penwidth=2") {
		t.Errorf("Expected no highlighting without the option, got:\n%v", plain)
	}
}
