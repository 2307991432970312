package nn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/tendril"
)

// EpochEvent describes one completed training epoch.
type EpochEvent struct {
	Epoch int
	Loss  float64
}

// Hooks defines callbacks for training observability. Nil fields are skipped.
type Hooks struct {
	OnEpoch func(context.Context, *EpochEvent)
}

// Trainer runs full-batch gradient descent over a Model.
type Trainer struct {
	LearningRate float64
	Epochs       int
	Hooks        Hooks
	Logger       *slog.Logger
}

// Result summarizes a finished run. Loss is the last epoch's loss node, left
// intact so callers can render or further inspect the final graph.
type Result struct {
	Epochs    int
	FinalLoss float64
	Loss      *tendril.Value
}

// Fit trains the model on single-output samples: inputs[i] is one row,
// targets[i] its expected output. Each epoch rebuilds the forward graph from
// the current parameters, differentiates the mean squared error and steps
// every parameter against its gradient. Update detaches each parameter's
// leaf, so no gradient reset between epochs is needed.
//
// The context is checked once per epoch; cancellation returns ctx.Err().
func (t *Trainer) Fit(ctx context.Context, model Model, inputs [][]float64, targets []float64) (*Result, error) {
	if t.LearningRate <= 0 {
		return nil, fmt.Errorf("learning rate must be positive, got %g", t.LearningRate)
	}
	if t.Epochs <= 0 {
		return nil, fmt.Errorf("epochs must be positive, got %d", t.Epochs)
	}
	if len(inputs) == 0 {
		return nil, errors.New("no training samples")
	}
	if len(inputs) != len(targets) {
		return nil, fmt.Errorf("%d input rows vs %d targets", len(inputs), len(targets))
	}

	logger := t.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var loss *tendril.Value
	for epoch := 1; epoch <= t.Epochs; epoch++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		preds := make([]*tendril.Value, len(inputs))
		for i, row := range inputs {
			out := model.Forward(Lift(row))
			if len(out) != 1 {
				return nil, fmt.Errorf("expected a single-output model, got %d outputs", len(out))
			}
			preds[i] = out[0]
		}

		loss = MSE(preds, targets)
		loss.SetLabel("loss")
		loss.Backward()

		for _, p := range model.Parameters() {
			p.Update(-t.LearningRate * p.Grad())
		}

		logger.Debug("epoch complete", "epoch", epoch, "loss", loss.Data())
		if t.Hooks.OnEpoch != nil {
			t.Hooks.OnEpoch(ctx, &EpochEvent{Epoch: epoch, Loss: loss.Data()})
		}
	}

	logger.Info("training finished", "epochs", t.Epochs, "loss", loss.Data())
	return &Result{Epochs: t.Epochs, FinalLoss: loss.Data(), Loss: loss}, nil
}
