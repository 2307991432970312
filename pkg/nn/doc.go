/*
Package nn builds small neural networks on top of the tendril engine.

It composes only the public Value surface (every forward pass is an ordinary
expression-builder chain) and adds the pieces training needs around it:
trainable parameters, neuron/layer/perceptron containers, a mean-squared-error
loss builder and a plain gradient-descent trainer.

# Parameters and Immutability

Graph values are immutable once built, so a trainable weight cannot be a plain
leaf: Param holds the trained number and mints a fresh leaf per training step.
Within one step every use of the parameter shares the same leaf (gradients
accumulate across uses); Update folds the step into the number and detaches
the leaf, so the next step differentiates a fresh graph.

Example usage:

	model := nn.NewMLP(3, []int{4, 4, 1}, nn.WithRand(rand.New(rand.NewSource(1))))

	trainer := nn.Trainer{LearningRate: 0.05, Epochs: 200}
	result, err := trainer.Fit(context.Background(), model, inputs, targets)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("final loss:", result.FinalLoss)
*/
package nn
