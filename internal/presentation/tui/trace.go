package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/aretw0/tendril"
)

// Row is one line of the gradient table.
type Row struct {
	Label string
	Data  float64
	Grad  float64
}

// PrintTable writes an aligned value/gradient table. Zero gradients render
// faint so the nodes the backward pass actually reached stand out.
func PrintTable(w io.Writer, rows []Row) {
	p := termenv.ColorProfile()

	labelWidth := len("node")
	for _, r := range rows {
		if len(r.Label) > labelWidth {
			labelWidth = len(r.Label)
		}
	}

	header := fmt.Sprintf("  %-*s  %12s  %12s", labelWidth, "node", "data", "grad")
	fmt.Fprintln(w, termenv.String(header).Faint().String())

	for _, r := range rows {
		data := fmt.Sprintf("%12.4f", r.Data)
		grad := fmt.Sprintf("%12.4f", r.Grad)
		styledGrad := termenv.String(grad).Foreground(p.Color("#34d399")).String()
		if r.Grad == 0 {
			styledGrad = termenv.String(grad).Faint().String()
		}
		fmt.Fprintf(w, "  %-*s  %s  %s\n", labelWidth, r.Label, data, styledGrad)
	}
}

// Trace prints the order the backward pass visits nodes in (the output
// first, leaves last) with the figures each node ended up with. Call it
// after Backward so the gradients are populated.
func Trace(w io.Writer, root *tendril.Value) {
	order := postOrder(root)
	p := termenv.ColorProfile()

	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		step := len(order) - i

		name := v.Label()
		if name == "" {
			name = "·"
		}
		op := v.OpLabel()
		if op == "" {
			op = "leaf"
		}

		styledOp := termenv.String(fmt.Sprintf("%-6s", op)).Foreground(p.Color("#22d3ee")).String()
		fmt.Fprintf(w, "  %3d. %s %-8s data %10.4f  grad %10.4f\n", step, styledOp, name, v.Data(), v.Grad())
	}
}

// postOrder walks the ordered parent lists depth-first, emitting each node
// after its parents, mirroring the order the engine differentiates in.
func postOrder(root *tendril.Value) []*tendril.Value {
	var order []*tendril.Value
	visited := make(map[*tendril.Value]struct{})

	var walk func(v *tendril.Value)
	walk = func(v *tendril.Value) {
		if _, seen := visited[v]; seen {
			return
		}
		visited[v] = struct{}{}
		for _, parent := range v.Parents() {
			walk(parent)
		}
		order = append(order, v)
	}
	if root != nil {
		walk(root)
	}
	return order
}
