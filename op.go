package tendril

// Op identifies the operation that produced a Value. Leaves carry OpLeaf.
//
// The operation tag, together with the recorded parents (and the exponent for
// OpPow), is everything the backward pass needs to compute local derivatives;
// there are no per-node closures.
type Op uint8

const (
	// OpLeaf marks a value created directly by New, with no parents.
	OpLeaf Op = iota
	// OpAdd is binary addition.
	OpAdd
	// OpMul is binary multiplication.
	OpMul
	// OpPow raises a value to a constant float64 exponent.
	OpPow
	// OpExp is the natural exponential.
	OpExp
	// OpTanh is the hyperbolic tangent.
	OpTanh
	// OpReLU is the rectified linear unit.
	OpReLU
)

// String returns the operator symbol used by graph renderers.
// OpLeaf renders as the empty string.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "**"
	case OpExp:
		return "exp"
	case OpTanh:
		return "tanh"
	case OpReLU:
		return "relu"
	default:
		return ""
	}
}
