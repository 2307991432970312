package graph

import (
	"fmt"
	"strings"
)

// GenerateMermaid produces a Mermaid flowchart from the expression graph.
// It applies semantic shapes:
// - Leaf value: (["stadium"])
// - Computed value: ["rectangle"]
// - Operator: (("circle")), spliced between the operands and their result.
// With HighlightGradients set, nodes carrying a nonzero gradient get an
// overlay class so a finished backward pass is visible at a glance.
func GenerateMermaid(view *View, opts *Options) string {
	prec := opts.precision()
	hasOp := view.computed()

	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, n := range view.Nodes {
		// Stadium for leaves, rectangle for computed values.
		opener, closer := "([", "])"
		if n.Op != "" {
			opener, closer = "[", "]"
		}

		text := fmt.Sprintf("%s | data %.*f | grad %.*f", sanitizeMermaidText(n.title()), prec, n.Data, prec, n.Grad)
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", n.ID, opener, text, closer))

		if n.Op != "" {
			sb.WriteString(fmt.Sprintf("    %s_op((\"%s\"))\n", n.ID, sanitizeMermaidText(n.Op)))
			sb.WriteString(fmt.Sprintf("    %s_op --> %s\n", n.ID, n.ID))
		}
	}

	for _, e := range view.Edges {
		to := e.To
		if hasOp[e.To] {
			to = e.To + "_op"
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", e.From, to))
	}

	if opts.highlight() {
		sb.WriteString("\n    %% Gradient Overlay\n")
		// Force black text for high contrast regardless of theme.
		sb.WriteString("    classDef hot fill:#ffe0b2,stroke:#e65100,stroke-width:2px,color:#000;\n")
		for _, n := range view.Nodes {
			if n.Grad != 0 {
				sb.WriteString(fmt.Sprintf("    class %s hot;\n", n.ID))
			}
		}
	}

	return sb.String()
}

// sanitizeMermaidText keeps label text from breaking out of its quoted node.
func sanitizeMermaidText(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
