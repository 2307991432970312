package tendril

import "fmt"

// Value is a node in the computation graph: one float64 scalar plus the
// bookkeeping reverse-mode differentiation needs.
//
// The forward value and the parent links are fixed at construction; building
// an expression can only append new nodes, so the graph is acyclic by
// construction. The gradient accumulator is the single mutable field: the
// backward pass adds to it and ZeroGrad resets it. A Value may be referenced
// by any number of downstream nodes (the graph is a DAG, not a tree), and
// both operand slots of a binary operation may alias the same node.
type Value struct {
	data  float64
	grad  float64
	op    Op
	prev  []*Value
	exp   float64 // exponent operand, meaningful only when op == OpPow
	label string
}

// Option defines a functional option for configuring a new Value.
type Option func(*Value)

// WithLabel sets a display label used by graph renderers.
func WithLabel(label string) Option {
	return func(v *Value) {
		v.label = label
	}
}

// New creates a leaf value holding data.
//
// Any float64 is accepted, including NaN and the infinities; the engine
// performs no numeric validation and lets IEEE-754 semantics carry through
// every downstream operation.
func New(data float64, opts ...Option) *Value {
	v := &Value{data: data, op: OpLeaf}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Data returns the forward value computed when the node was built.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the accumulated gradient. It is zero until a Backward pass
// from a downstream node has run, and it keeps accumulating across passes
// until ZeroGrad is called.
func (v *Value) Grad() float64 {
	return v.grad
}

// ZeroGrad resets the gradient accumulator of this node to zero. It does not
// touch the rest of the graph; model containers such as nn.Module offer bulk
// resets over their parameters.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Label returns the display label, if one was set.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the display label. Labels are cosmetic: renderers print them,
// the engine ignores them.
func (v *Value) SetLabel(label string) {
	v.label = label
}

// Op returns the operation tag that produced this value.
func (v *Value) Op() Op {
	return v.op
}

// OpLabel returns the operator as renderers display it, including the
// exponent for power nodes (e.g. "**-1"). Leaves return the empty string.
func (v *Value) OpLabel() string {
	if v.op == OpPow {
		return fmt.Sprintf("**%g", v.exp)
	}
	return v.op.String()
}

// Parents returns a copy of the operand nodes this value was built from, in
// operand order. Leaves return nil. Mutating the returned slice does not
// affect the graph.
func (v *Value) Parents() []*Value {
	if len(v.prev) == 0 {
		return nil
	}
	out := make([]*Value, len(v.prev))
	copy(out, v.prev)
	return out
}

// String implements fmt.Stringer for debugging output.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(%s, data=%g, grad=%g)", v.label, v.data, v.grad)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
}
