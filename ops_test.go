package tendril_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril"
)

func TestOps_ForwardValues(t *testing.T) {
	cases := []struct {
		name  string
		build func() *tendril.Value
		want  float64
	}{
		{"add", func() *tendril.Value { return tendril.New(2).Add(tendril.New(3)) }, 5},
		{"add scalar", func() *tendril.Value { return tendril.New(2).AddScalar(3) }, 5},
		{"mul", func() *tendril.Value { return tendril.New(2).Mul(tendril.New(-3)) }, -6},
		{"mul scalar", func() *tendril.Value { return tendril.New(2).MulScalar(-3) }, -6},
		{"pow", func() *tendril.Value { return tendril.New(4).Pow(0.5) }, 2},
		{"neg", func() *tendril.Value { return tendril.New(7).Neg() }, -7},
		{"sub", func() *tendril.Value { return tendril.New(2).Sub(tendril.New(5)) }, -3},
		{"sub scalar", func() *tendril.Value { return tendril.New(2).SubScalar(5) }, -3},
		{"div", func() *tendril.Value { return tendril.New(1).Div(tendril.New(4)) }, 0.25},
		{"div scalar", func() *tendril.Value { return tendril.New(1).DivScalar(4) }, 0.25},
		{"exp", func() *tendril.Value { return tendril.New(1).Exp() }, math.E},
		{"tanh", func() *tendril.Value { return tendril.New(0).Tanh() }, 0},
		{"relu positive", func() *tendril.Value { return tendril.New(3).ReLU() }, 3},
		{"relu negative", func() *tendril.Value { return tendril.New(-3).ReLU() }, 0},
		{"relu zero", func() *tendril.Value { return tendril.New(0).ReLU() }, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.build().Data(), 1e-12)
		})
	}
}

func TestOps_ScalarVariantsLiftToLeaves(t *testing.T) {
	x := tendril.New(2)
	y := x.AddScalar(3)

	parents := y.Parents()
	require.Len(t, parents, 2)
	assert.Same(t, x, parents[0])
	assert.Equal(t, tendril.OpLeaf, parents[1].Op(), "lifted constant should be a leaf")
	assert.Equal(t, 3.0, parents[1].Data())

	// The lifted leaf takes part in the backward pass like any other node.
	z := x.MulScalar(4)
	z.Backward()
	assert.Equal(t, 4.0, x.Grad())
	assert.Equal(t, 2.0, z.Parents()[1].Grad())
}

func TestOps_NilOperandPanics(t *testing.T) {
	x := tendril.New(1)

	cases := []struct {
		name string
		call func()
		msg  string
	}{
		{"add", func() { x.Add(nil) }, "tendril: Add: nil operand"},
		{"mul", func() { x.Mul(nil) }, "tendril: Mul: nil operand"},
		{"sub", func() { x.Sub(nil) }, "tendril: Sub: nil operand"},
		{"div", func() { x.Div(nil) }, "tendril: Div: nil operand"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.PanicsWithValue(t, tc.msg, tc.call)
		})
	}
}

func TestOps_DerivedOperationsComposePrimitives(t *testing.T) {
	// Neg, Sub and Div are sugar over Mul/Add/Pow, so their graphs expose the
	// primitive op tags rather than dedicated ones.
	a := tendril.New(3)
	b := tendril.New(2)

	assert.Equal(t, tendril.OpMul, a.Neg().Op())
	assert.Equal(t, tendril.OpAdd, a.Sub(b).Op())
	assert.Equal(t, tendril.OpMul, a.Div(b).Op())

	div := a.Div(b)
	require.Len(t, div.Parents(), 2)
	assert.Equal(t, tendril.OpPow, div.Parents()[1].Op())
}

func TestOps_DivisionByZeroFollowsIEEE(t *testing.T) {
	a := tendril.New(1)
	b := tendril.New(0)

	q := a.Div(b)
	assert.True(t, math.IsInf(q.Data(), 1), "1/0 should be +Inf, got %g", q.Data())

	// The backward pass must propagate the infinity, not guard it.
	q.Backward()
	assert.True(t, math.IsInf(a.Grad(), 1), "d(1/0)/da should be +Inf, got %g", a.Grad())
	assert.True(t, math.IsInf(b.Grad(), -1), "d(1/0)/db should be -Inf, got %g", b.Grad())
}

func TestOps_FractionalPowOfNegativeBaseIsNaN(t *testing.T) {
	a := tendril.New(-1)
	r := a.Pow(0.5)
	assert.True(t, math.IsNaN(r.Data()), "(-1)**0.5 should be NaN, got %g", r.Data())

	r.Backward()
	assert.True(t, math.IsNaN(a.Grad()), "gradient through a NaN node should be NaN, got %g", a.Grad())
}

func TestOps_SameNodeInBothSlots(t *testing.T) {
	x := tendril.New(3)
	y := x.Mul(x)

	assert.Equal(t, 9.0, y.Data())

	y.Backward()
	// d(x*x)/dx = 2x: each operand slot contributes x once.
	assert.Equal(t, 6.0, x.Grad())
}
