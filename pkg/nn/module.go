package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/aretw0/tendril"
)

// Activation selects the nonlinearity a neuron applies to its weighted sum.
type Activation uint8

const (
	// ActivationTanh squashes into (-1, 1); the default for hidden layers.
	ActivationTanh Activation = iota
	// ActivationReLU keeps positives and zeroes negatives.
	ActivationReLU
	// ActivationLinear applies no nonlinearity; the default for output layers.
	ActivationLinear
)

// String returns the config spelling of the activation.
func (a Activation) String() string {
	switch a {
	case ActivationReLU:
		return "relu"
	case ActivationLinear:
		return "linear"
	default:
		return "tanh"
	}
}

// ParseActivation maps a config spelling to an Activation. The empty string
// means tanh.
func ParseActivation(s string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tanh":
		return ActivationTanh, nil
	case "relu":
		return ActivationReLU, nil
	case "linear", "none":
		return ActivationLinear, nil
	default:
		return 0, fmt.Errorf("unknown activation %q", s)
	}
}

// Module is anything holding trainable parameters.
type Module interface {
	// Parameters returns every trainable parameter in a stable order.
	Parameters() []*Param
	// ZeroGrad resets the gradient accumulator of every parameter's current
	// leaf.
	ZeroGrad()
}

// Model is a Module the Trainer can drive: it maps one sample's inputs to
// output values.
type Model interface {
	Module
	Forward(xs []*tendril.Value) []*tendril.Value
}

// Option configures model construction.
type Option func(*settings)

type settings struct {
	rng    *rand.Rand
	hidden Activation
	output Activation
}

// WithRand injects the random source used for weight initialization, making
// construction reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		s.rng = rng
	}
}

// WithHiddenActivation overrides the nonlinearity of hidden layers
// (default tanh).
func WithHiddenActivation(a Activation) Option {
	return func(s *settings) {
		s.hidden = a
	}
}

// WithOutputActivation overrides the nonlinearity of the output layer
// (default linear).
func WithOutputActivation(a Activation) Option {
	return func(s *settings) {
		s.output = a
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{hidden: ActivationTanh, output: ActivationLinear}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// uniform draws from [-1, 1), using the injected source when present.
func (s *settings) uniform() float64 {
	if s.rng != nil {
		return s.rng.Float64()*2 - 1
	}
	return rand.Float64()*2 - 1
}

// Lift wraps a row of plain floats as graph leaves, ready to feed a Forward
// pass.
func Lift(row []float64) []*tendril.Value {
	xs := make([]*tendril.Value, len(row))
	for i, x := range row {
		xs[i] = tendril.New(x)
	}
	return xs
}

// Neuron is a single unit: the weighted sum of its inputs plus a bias, passed
// through the activation.
type Neuron struct {
	weights []*Param
	bias    *Param
	act     Activation
}

// NewNeuron creates a unit with nin weights initialized uniformly in [-1, 1)
// and a zero bias.
func NewNeuron(nin int, act Activation, opts ...Option) *Neuron {
	if nin <= 0 {
		panic(fmt.Sprintf("nn: neuron needs at least one input, got %d", nin))
	}
	s := newSettings(opts)
	n := &Neuron{
		weights: make([]*Param, nin),
		bias:    NewParam(0, "b"),
		act:     act,
	}
	for i := range n.weights {
		n.weights[i] = NewParam(s.uniform(), fmt.Sprintf("w%d", i))
	}
	return n
}

// Forward computes act(w·xs + b) as a graph value.
func (n *Neuron) Forward(xs []*tendril.Value) *tendril.Value {
	if len(xs) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.weights), len(xs)))
	}
	sum := n.bias.Leaf()
	for i, w := range n.weights {
		sum = sum.Add(w.Leaf().Mul(xs[i]))
	}
	switch n.act {
	case ActivationTanh:
		return sum.Tanh()
	case ActivationReLU:
		return sum.ReLU()
	default:
		return sum
	}
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Param {
	out := make([]*Param, 0, len(n.weights)+1)
	out = append(out, n.weights...)
	return append(out, n.bias)
}

// ZeroGrad resets every parameter's current leaf.
func (n *Neuron) ZeroGrad() {
	for _, p := range n.Parameters() {
		p.ZeroGrad()
	}
}

// String implements fmt.Stringer, e.g. "TanhNeuron(3)".
func (n *Neuron) String() string {
	var kind string
	switch n.act {
	case ActivationTanh:
		kind = "Tanh"
	case ActivationReLU:
		kind = "ReLU"
	default:
		kind = "Linear"
	}
	return fmt.Sprintf("%sNeuron(%d)", kind, len(n.weights))
}

// Layer is a bank of neurons sharing the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates nout neurons of nin inputs each.
func NewLayer(nin, nout int, act Activation, opts ...Option) *Layer {
	if nout <= 0 {
		panic(fmt.Sprintf("nn: layer needs at least one neuron, got %d", nout))
	}
	l := &Layer{neurons: make([]*Neuron, nout)}
	for i := range l.neurons {
		l.neurons[i] = NewNeuron(nin, act, opts...)
	}
	return l
}

// Forward feeds the inputs through every neuron, one output per neuron.
func (l *Layer) Forward(xs []*tendril.Value) []*tendril.Value {
	out := make([]*tendril.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(xs)
	}
	return out
}

// Parameters returns the parameters of every neuron, in neuron order.
func (l *Layer) Parameters() []*Param {
	var out []*Param
	for _, n := range l.neurons {
		out = append(out, n.Parameters()...)
	}
	return out
}

// ZeroGrad resets every parameter's current leaf.
func (l *Layer) ZeroGrad() {
	for _, p := range l.Parameters() {
		p.ZeroGrad()
	}
}

// String implements fmt.Stringer.
func (l *Layer) String() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.String()
	}
	return fmt.Sprintf("Layer of [%s]", strings.Join(parts, ", "))
}

// MLP is a multi-layer perceptron: hidden layers carry the hidden activation,
// the last layer the output activation.
type MLP struct {
	layers []*Layer
	sizes  []int
}

// NewMLP creates a perceptron taking nin inputs through the given layer
// widths; the last width is the output count. NewMLP(3, []int{4, 4, 1})
// builds the classic 3-input, two-hidden-layer, single-output net.
func NewMLP(nin int, layout []int, opts ...Option) *MLP {
	if nin <= 0 || len(layout) == 0 {
		panic("nn: MLP needs a positive input count and at least one layer")
	}
	s := newSettings(opts)

	sizes := append([]int{nin}, layout...)
	m := &MLP{layers: make([]*Layer, len(layout)), sizes: sizes}
	for i := range layout {
		act := s.hidden
		if i == len(layout)-1 {
			act = s.output
		}
		m.layers[i] = NewLayer(sizes[i], sizes[i+1], act, opts...)
	}
	return m
}

// Forward feeds the inputs through every layer in order.
func (m *MLP) Forward(xs []*tendril.Value) []*tendril.Value {
	out := xs
	for _, l := range m.layers {
		out = l.Forward(out)
	}
	return out
}

// Parameters returns the parameters of every layer, in layer order.
func (m *MLP) Parameters() []*Param {
	var out []*Param
	for _, l := range m.layers {
		out = append(out, l.Parameters()...)
	}
	return out
}

// ZeroGrad resets every parameter's current leaf.
func (m *MLP) ZeroGrad() {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// String implements fmt.Stringer, e.g. "MLP(3-4-4-1)".
func (m *MLP) String() string {
	parts := make([]string, len(m.sizes))
	for i, n := range m.sizes {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("MLP(%s)", strings.Join(parts, "-"))
}
