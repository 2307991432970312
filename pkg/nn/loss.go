package nn

import (
	"fmt"

	"github.com/aretw0/tendril"
)

// MSE builds the mean squared error between predictions and plain-float
// targets as a graph value; differentiating it reaches every parameter that
// produced the predictions.
func MSE(preds []*tendril.Value, targets []float64) *tendril.Value {
	if len(preds) == 0 {
		panic("nn: MSE: no predictions")
	}
	if len(preds) != len(targets) {
		panic(fmt.Sprintf("nn: MSE: %d predictions vs %d targets", len(preds), len(targets)))
	}

	var sum *tendril.Value
	for i, p := range preds {
		sq := p.SubScalar(targets[i]).Pow(2)
		if sum == nil {
			sum = sq
		} else {
			sum = sum.Add(sq)
		}
	}
	return sum.DivScalar(float64(len(preds)))
}
