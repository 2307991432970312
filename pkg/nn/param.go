package nn

import "github.com/aretw0/tendril"

// Param is one trainable scalar. It separates the trained number, which
// changes between steps, from the graph leaf representing it inside a single
// step's expression: values are immutable once built, so each step works
// against a freshly minted leaf.
type Param struct {
	data  float64
	leaf  *tendril.Value
	label string
}

// NewParam creates a parameter starting at data. The label is cosmetic and
// flows onto every minted leaf for graph renderings.
func NewParam(data float64, label string) *Param {
	return &Param{data: data, label: label}
}

// Data returns the current trained value.
func (p *Param) Data() float64 {
	return p.data
}

// Label returns the display label.
func (p *Param) Label() string {
	return p.label
}

// Leaf returns the graph leaf for the step being built, minting one on first
// use. Every appearance of the parameter within a step shares this node, so
// a parameter used in several places accumulates gradient across all of them.
func (p *Param) Leaf() *tendril.Value {
	if p.leaf == nil {
		p.leaf = tendril.New(p.data, tendril.WithLabel(p.label))
	}
	return p.leaf
}

// Grad returns the gradient accumulated on the current step's leaf, or 0 when
// no leaf has been minted since the last update.
func (p *Param) Grad() float64 {
	if p.leaf == nil {
		return 0
	}
	return p.leaf.Grad()
}

// ZeroGrad resets the current leaf's accumulator, if one exists.
func (p *Param) ZeroGrad() {
	if p.leaf != nil {
		p.leaf.ZeroGrad()
	}
}

// Update folds delta into the trained value and detaches the leaf; the next
// Leaf call mints against the updated number.
func (p *Param) Update(delta float64) {
	p.data += delta
	p.leaf = nil
}
