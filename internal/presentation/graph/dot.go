package graph

import (
	"fmt"
	"strings"
)

// dotEscaper covers the characters Graphviz record labels treat specially.
var dotEscaper = strings.NewReplacer(
	`"`, `\"`,
	`|`, `\|`,
	`{`, `\{`,
	`}`, `\}`,
	`<`, `\<`,
	`>`, `\>`,
)

// GenerateDOT renders the graph in Graphviz dot syntax: one record node per
// value showing label, data and gradient, with a small operator node spliced
// between the operands and their result. Left-to-right rank direction keeps
// long chains readable.
func GenerateDOT(view *View, opts *Options) string {
	prec := opts.precision()
	hasOp := view.computed()

	var sb strings.Builder
	sb.WriteString("digraph tendril {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [fontname=\"Helvetica\"];\n")

	for _, n := range view.Nodes {
		sb.WriteString(fmt.Sprintf("    %s [shape=record, label=\"{ %s | data %.*f | grad %.*f }\"];\n",
			n.ID, dotEscaper.Replace(n.title()), prec, n.Data, prec, n.Grad))
		if n.Op != "" {
			sb.WriteString(fmt.Sprintf("    %s_op [shape=circle, label=\"%s\"];\n", n.ID, dotEscaper.Replace(n.Op)))
			sb.WriteString(fmt.Sprintf("    %s_op -> %s;\n", n.ID, n.ID))
		}
	}

	for _, e := range view.Edges {
		to := e.To
		if hasOp[e.To] {
			to = e.To + "_op"
		}
		sb.WriteString(fmt.Sprintf("    %s -> %s;\n", e.From, to))
	}

	if opts.highlight() {
		sb.WriteString("\n")
		for _, n := range view.Nodes {
			if n.Grad != 0 {
				sb.WriteString(fmt.Sprintf("    %s [color=\"#e65100\", penwidth=2];\n", n.ID))
			}
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}
