// Package config defines the training-run configuration model: the model
// shape, the optimizer settings and the dataset. It is the single source of
// truth for the train, graph and validate commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/tendril/pkg/nn"
)

// ErrNoSamples is returned when a config defines no training data.
var ErrNoSamples = errors.New("data: at least one sample is required")

// TrainConfig describes one training run end to end.
type TrainConfig struct {
	Seed     int64     `yaml:"seed" json:"seed"`
	Model    ModelSpec `yaml:"model" json:"model"`
	Training Optimizer `yaml:"training" json:"training"`
	Data     []Sample  `yaml:"data" json:"data"`
}

// ModelSpec describes the perceptron layout. Hidden lists the hidden layer
// widths; the single-output layer is implied, since every sample carries one
// target.
type ModelSpec struct {
	Inputs     int    `yaml:"inputs" json:"inputs"`
	Hidden     []int  `yaml:"hidden" json:"hidden"`
	Activation string `yaml:"activation" json:"activation"`
}

// Optimizer holds the gradient-descent settings.
type Optimizer struct {
	LearningRate float64 `yaml:"learning_rate" json:"learning_rate"`
	Epochs       int     `yaml:"epochs" json:"epochs"`
}

// Sample is one labeled row.
type Sample struct {
	Inputs []float64 `yaml:"inputs" json:"inputs"`
	Target float64   `yaml:"target" json:"target"`
}

// Default returns the built-in demo run: the four-sample, three-input
// dataset with a 4-4-1 tanh net.
func Default() *TrainConfig {
	return &TrainConfig{
		Seed: 1337,
		Model: ModelSpec{
			Inputs:     3,
			Hidden:     []int{4, 4},
			Activation: "tanh",
		},
		Training: Optimizer{
			LearningRate: 0.05,
			Epochs:       200,
		},
		Data: []Sample{
			{Inputs: []float64{2, 3, -1}, Target: 1},
			{Inputs: []float64{3, -1, 0.5}, Target: -1},
			{Inputs: []float64{0.5, 1, 1}, Target: -1},
			{Inputs: []float64{1, 1, -1}, Target: 1},
		},
	}
}

// Load reads, parses and validates a training config file.
func Load(path string) (*TrainConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read training config: %w", err)
	}

	var cfg TrainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid training config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the config for shape problems and reports every problem
// found, joined into one error, with the field path of each.
func (c *TrainConfig) Validate() error {
	var errs []error

	if c.Model.Inputs <= 0 {
		errs = append(errs, fmt.Errorf("model.inputs: must be positive, got %d", c.Model.Inputs))
	}
	for i, w := range c.Model.Hidden {
		if w <= 0 {
			errs = append(errs, fmt.Errorf("model.hidden[%d]: must be positive, got %d", i, w))
		}
	}
	if _, err := nn.ParseActivation(c.Model.Activation); err != nil {
		errs = append(errs, fmt.Errorf("model.activation: %w", err))
	}

	if c.Training.LearningRate <= 0 {
		errs = append(errs, fmt.Errorf("training.learning_rate: must be positive, got %g", c.Training.LearningRate))
	}
	if c.Training.Epochs <= 0 {
		errs = append(errs, fmt.Errorf("training.epochs: must be positive, got %d", c.Training.Epochs))
	}

	if len(c.Data) == 0 {
		errs = append(errs, ErrNoSamples)
	}
	for i, s := range c.Data {
		if c.Model.Inputs > 0 && len(s.Inputs) != c.Model.Inputs {
			errs = append(errs, fmt.Errorf("data[%d].inputs: expected %d values, got %d", i, c.Model.Inputs, len(s.Inputs)))
		}
	}

	return errors.Join(errs...)
}

// Layout returns the MLP layer widths: the hidden layers plus the single
// output layer.
func (c *TrainConfig) Layout() []int {
	return append(append([]int{}, c.Model.Hidden...), 1)
}

// Activation returns the parsed activation. Call after Validate.
func (c *TrainConfig) Activation() nn.Activation {
	act, err := nn.ParseActivation(c.Model.Activation)
	if err != nil {
		return nn.ActivationTanh
	}
	return act
}

// Inputs returns the dataset's input rows, parallel to Targets.
func (c *TrainConfig) Inputs() [][]float64 {
	rows := make([][]float64, len(c.Data))
	for i, s := range c.Data {
		rows[i] = s.Inputs
	}
	return rows
}

// Targets returns the dataset's expected outputs, parallel to Inputs.
func (c *TrainConfig) Targets() []float64 {
	out := make([]float64, len(c.Data))
	for i, s := range c.Data {
		out[i] = s.Target
	}
	return out
}
