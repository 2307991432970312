package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/internal/config"
	"github.com/aretw0/tendril/internal/presentation/graph"
	"github.com/aretw0/tendril/pkg/nn"
)

// demoNeuron builds the two-input tanh neuron the demo and graph commands
// share: o = tanh(x1*w1 + x2*w2 + b). The bias puts the weighted sum at
// 0.8814, so the gradients land on round figures.
func demoNeuron() *tendril.Value {
	x1 := tendril.New(2, tendril.WithLabel("x1"))
	x2 := tendril.New(0, tendril.WithLabel("x2"))
	w1 := tendril.New(-3, tendril.WithLabel("w1"))
	w2 := tendril.New(1, tendril.WithLabel("w2"))
	b := tendril.New(6.8813735870195432, tendril.WithLabel("b"))

	x1w1 := x1.Mul(w1)
	x1w1.SetLabel("x1*w1")
	x2w2 := x2.Mul(w2)
	x2w2.SetLabel("x2*w2")
	sum := x1w1.Add(x2w2)
	sum.SetLabel("x1*w1 + x2*w2")
	n := sum.Add(b)
	n.SetLabel("n")
	o := n.Tanh()
	o.SetLabel("o")
	return o
}

// demoMLP runs one forward pass of a small untrained perceptron, so the
// layered wiring shows in the rendering without drowning it in nodes.
func demoMLP() *tendril.Value {
	rng := rand.New(rand.NewSource(1337))
	model := nn.NewMLP(2, []int{3, 1}, nn.WithRand(rng))
	out := model.Forward(nn.Lift([]float64{1, -2}))[0]
	out.SetLabel("out")
	return out
}

// loadConfig reads the config at path, or the built-in default when path is
// empty.
func loadConfig(path string) (*config.TrainConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// runTraining wires a model and trainer from the config and fits it.
func runTraining(ctx context.Context, cfg *config.TrainConfig, logger *slog.Logger, hooks nn.Hooks) (*nn.MLP, *nn.Result, error) {
	model := nn.NewMLP(cfg.Model.Inputs, cfg.Layout(),
		nn.WithRand(rand.New(rand.NewSource(cfg.Seed))),
		nn.WithHiddenActivation(cfg.Activation()),
	)
	logger.Info("model built", "layout", model.String(), "params", len(model.Parameters()))

	trainer := nn.Trainer{
		LearningRate: cfg.Training.LearningRate,
		Epochs:       cfg.Training.Epochs,
		Hooks:        hooks,
		Logger:       logger,
	}
	result, err := trainer.Fit(ctx, model, cfg.Inputs(), cfg.Targets())
	if err != nil {
		return nil, nil, err
	}
	return model, result, nil
}

// buildDemoGraph constructs and differentiates one of the named graphs. The
// loss graph trains first, using configPath or the built-in dataset.
func buildDemoGraph(ctx context.Context, name, configPath string, logger *slog.Logger) (*tendril.Value, error) {
	switch name {
	case "neuron":
		o := demoNeuron()
		o.Backward()
		return o, nil
	case "mlp":
		out := demoMLP()
		out.Backward()
		return out, nil
	case "loss":
		cfg, err := loadConfig(configPath)
		if err != nil {
			return nil, err
		}
		_, result, err := runTraining(ctx, cfg, logger, nn.Hooks{})
		if err != nil {
			return nil, err
		}
		return result.Loss, nil
	default:
		return nil, fmt.Errorf("unknown graph %q (want neuron, mlp or loss)", name)
	}
}

// renderView serializes a collected view in the requested format.
func renderView(view *graph.View, format string, opts *graph.Options) (string, error) {
	switch format {
	case "dot":
		return graph.GenerateDOT(view, opts), nil
	case "mermaid":
		return graph.GenerateMermaid(view, opts), nil
	case "json":
		out, err := graph.ExportJSON(view)
		if err != nil {
			return "", err
		}
		return string(out) + "\n", nil
	default:
		return "", fmt.Errorf("unknown format %q (want dot, mermaid or json)", format)
	}
}
