// Package graph flattens tendril expression graphs into a renderer-facing
// view model and renders it as Graphviz DOT, Mermaid flowchart syntax or
// JSON. It only reads the public Value surface; rendering never touches a
// computation.
package graph

import (
	"fmt"

	"github.com/aretw0/tendril"
)

// Node is the renderer-facing view of one graph value.
type Node struct {
	ID    string  `json:"id"`
	Label string  `json:"label,omitempty"`
	Op    string  `json:"op,omitempty"`
	Data  float64 `json:"data"`
	Grad  float64 `json:"grad"`
}

// Edge is one operand -> result dependency.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// View is the flattened graph every renderer consumes.
type View struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Collect flattens the expression graph rooted at root. The walk follows the
// ordered parent lists depth-first and assigns IDs in first-visit order, so
// node and edge order (and therefore every rendering) is deterministic for
// a given graph. Shared subexpressions appear once.
func Collect(root *tendril.Value) *View {
	view := &View{}
	if root == nil {
		return view
	}

	ids := make(map[*tendril.Value]string)
	var walk func(v *tendril.Value) string
	walk = func(v *tendril.Value) string {
		if id, ok := ids[v]; ok {
			return id
		}
		id := fmt.Sprintf("n%d", len(ids))
		ids[v] = id
		view.Nodes = append(view.Nodes, Node{
			ID:    id,
			Label: v.Label(),
			Op:    v.OpLabel(),
			Data:  v.Data(),
			Grad:  v.Grad(),
		})
		for _, parent := range v.Parents() {
			from := walk(parent)
			view.Edges = append(view.Edges, Edge{From: from, To: id})
		}
		return id
	}
	walk(root)
	return view
}

// computed returns the set of node IDs produced by an operation.
func (v *View) computed() map[string]bool {
	out := make(map[string]bool, len(v.Nodes))
	for _, n := range v.Nodes {
		if n.Op != "" {
			out[n.ID] = true
		}
	}
	return out
}

// title returns what a renderer should print for the node: the label when
// set, the generated ID otherwise.
func (n Node) title() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Options control rendering details shared by the DOT and Mermaid renderers.
// A nil Options renders with defaults.
type Options struct {
	// Precision is the number of decimals for data/grad figures (default 4).
	Precision int
	// HighlightGradients styles nodes whose gradient is nonzero, making the
	// backward pass's reach visible after a Backward run.
	HighlightGradients bool
}

func (o *Options) precision() int {
	if o == nil || o.Precision <= 0 {
		return 4
	}
	return o.Precision
}

func (o *Options) highlight() bool {
	return o != nil && o.HighlightGradients
}
