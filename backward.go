package tendril

import "math"

// Backward computes the gradient of v with respect to every node that fed it.
//
// The pass runs in three steps: a depth-first post-order traversal collects
// the reachable subgraph in topological order (each node after all of its
// parents), v's own gradient is seeded to 1, and the order is walked in
// reverse so every node pushes its accumulated gradient to its parents only
// after all of its consumers have contributed.
//
// Gradients accumulate: every propagation adds into the parents'
// accumulators, and totals left in interior nodes feed later passes, so
// callers reset with ZeroGrad between passes; the engine never resets.
// Invoking Backward on an interior node is allowed: that node becomes the
// output for the pass and only its ancestry is touched.
//
// A single pass at a time: concurrent Backward calls over graphs that share
// nodes race on the accumulators.
func (v *Value) Backward() {
	order := topoSort(v)
	v.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		order[i].propagate()
	}
}

// topoSort returns every node reachable from root in post-order. The
// traversal is iterative so chain depth is bounded by heap, not by the
// goroutine stack, and the visited set keys on pointer identity so shared
// subexpressions are emitted exactly once.
func topoSort(root *Value) []*Value {
	type frame struct {
		v    *Value
		next int
	}

	visited := map[*Value]struct{}{root: {}}
	order := make([]*Value, 0, 16)
	stack := []frame{{v: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.v.prev) {
			parent := top.v.prev[top.next]
			top.next++
			if _, seen := visited[parent]; !seen {
				visited[parent] = struct{}{}
				stack = append(stack, frame{v: parent})
			}
			continue
		}
		order = append(order, top.v)
		stack = stack[:len(stack)-1]
	}
	return order
}

// propagate applies the local derivative rule for v's operation, adding
// contributions to the parents' accumulators. Additions are per operand slot:
// when both slots of a binary operation alias the same node it receives both
// contributions.
func (v *Value) propagate() {
	g := v.grad
	switch v.op {
	case OpAdd:
		v.prev[0].grad += g
		v.prev[1].grad += g
	case OpMul:
		a, b := v.prev[0], v.prev[1]
		a.grad += b.data * g
		b.grad += a.data * g
	case OpPow:
		a := v.prev[0]
		a.grad += v.exp * math.Pow(a.data, v.exp-1) * g
	case OpExp:
		// d(e^a)/da = e^a, which is the forward value itself.
		v.prev[0].grad += v.data * g
	case OpTanh:
		v.prev[0].grad += (1 - v.data*v.data) * g
	case OpReLU:
		if v.prev[0].data > 0 {
			v.prev[0].grad += g
		}
	}
}
