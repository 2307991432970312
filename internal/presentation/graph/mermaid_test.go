package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/internal/presentation/graph"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		root     func() *tendril.Value
		opts     *graph.Options
		contains []string
	}{
		{
			name: "Leaf Shape",
			root: func() *tendril.Value {
				return tendril.New(5, tendril.WithLabel("x"))
			},
			contains: []string{
				"graph LR",
				`n0(["x | data 5.0000 | grad 0.0000"])`,
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
				`n0["c | data 6.0000 | grad 0.0000"]`,
				`n0_op(("*"))`,
				"n0_op --> n0",
				`n1(["a | data 2.0000 | grad 0.0000"])`,
				"n1 --> n0_op",
				"n2 --> n0_op",
			},
		},
		{
			name: "Power Carries Its Exponent",
			root: func() *tendril.Value {
				return tendril.New(4).Pow(-1)
			},
			contains: []string{
				`n0_op(("**-1"))`,
			},
		},
		{
			name: "Unlabeled Nodes Fall Back To IDs",
			root: func() *tendril.Value {
				return tendril.New(1).Exp()
			},
			contains: []string{
				`n1(["n1 | data 1.0000 | grad 0.0000"])`,
			},
		},
		{
			name: "Label Quote Escaping",
			root: func() *tendril.Value {
				return tendril.New(1, tendril.WithLabel(`say "hi"`))
			},
			contains: []string{
				`n0(["say 'hi' | data 1.0000 | grad 0.0000"])`,
			},
		},
		{
			name: "Precision Option",
			root: func() *tendril.Value {
				return tendril.New(1.0 / 3.0, tendril.WithLabel("third"))
			},
			opts: &graph.Options{Precision: 2},
			contains: []string{
				`n0(["third | data 0.33 | grad 0.00"])`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(graph.Collect(tt.root()), tt.opts)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}

func TestGenerateMermaid_GradientOverlay(t *testing.T) {
	a := tendril.New(2)
	b := tendril.New(3)
	c := a.Mul(b)
	c.Backward()

	got := graph.GenerateMermaid(graph.Collect(c), &graph.Options{HighlightGradients: true})

	for _, want := range []string{
		"classDef hot",
		"class n0 hot;",
		"class n1 hot;",
		"class n2 hot;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected overlay line %q in:\n%v", want, got)
		}
	}
}

func TestGenerateMermaid_NoOverlayByDefault(t *testing.T) {
	c := tendril.New(2).MulScalar(3)
	c.Backward()

	got := graph.GenerateMermaid(graph.Collect(c), nil)
	if strings.Contains(got, "classDef") {
		t.Errorf("Expected no overlay styles without the option, got:\n%v", got)
	}
}
