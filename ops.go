package tendril

import "math"

// child builds an interior node from the already-computed forward value, the
// operation tag and the ordered operands.
func child(data float64, op Op, parents ...*Value) *Value {
	return &Value{data: data, op: op, prev: parents}
}

// mustOperand panics when a nil operand reaches the expression builder. A nil
// *Value is a programming error at the call site, not a numeric condition.
func mustOperand(other *Value, op string) {
	if other == nil {
		panic("tendril: " + op + ": nil operand")
	}
}

// Add returns a new value holding v + other.
func (v *Value) Add(other *Value) *Value {
	mustOperand(other, "Add")
	return child(v.data+other.data, OpAdd, v, other)
}

// AddScalar returns a new value holding v + c, lifting c into a leaf.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(New(c))
}

// Mul returns a new value holding v * other.
func (v *Value) Mul(other *Value) *Value {
	mustOperand(other, "Mul")
	return child(v.data*other.data, OpMul, v, other)
}

// MulScalar returns a new value holding v * c, lifting c into a leaf.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(New(c))
}

// Pow returns a new value holding v raised to the constant exponent k.
// The exponent is a plain float64, not a graph node; only the base receives
// gradient. Non-positive bases with fractional exponents follow math.Pow
// (NaN/Inf propagate, no guarding).
func (v *Value) Pow(k float64) *Value {
	out := child(math.Pow(v.data, k), OpPow, v)
	out.exp = k
	return out
}

// Neg returns a new value holding -v, expressed as multiplication by -1 so
// the backward pass needs no dedicated rule.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub returns a new value holding v - other, expressed as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	mustOperand(other, "Sub")
	return v.Add(other.Neg())
}

// SubScalar returns a new value holding v - c, lifting c into a leaf.
func (v *Value) SubScalar(c float64) *Value {
	return v.Sub(New(c))
}

// Div returns a new value holding v / other, expressed as v * other**-1.
// Division by a zero-valued node produces the IEEE-754 result.
func (v *Value) Div(other *Value) *Value {
	mustOperand(other, "Div")
	return v.Mul(other.Pow(-1))
}

// DivScalar returns a new value holding v / c, lifting c into a leaf.
func (v *Value) DivScalar(c float64) *Value {
	return v.Div(New(c))
}

// Exp returns a new value holding e**v.
func (v *Value) Exp() *Value {
	return child(math.Exp(v.data), OpExp, v)
}

// Tanh returns a new value holding the hyperbolic tangent of v.
func (v *Value) Tanh() *Value {
	return child(math.Tanh(v.data), OpTanh, v)
}

// ReLU returns a new value holding max(0, v).
func (v *Value) ReLU() *Value {
	out := v.data
	if out < 0 {
		out = 0
	}
	return child(out, OpReLU, v)
}
