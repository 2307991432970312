package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tendril/internal/presentation/graph"
	"github.com/aretw0/tendril/pkg/nn"
)

// trainCmd represents the train command
var trainCmd = &cobra.Command{
	Use:   "train [config.yaml]",
	Short: "Run gradient descent from a training config",
	Long: `Trains a small perceptron with full-batch gradient descent. Without a config
file, the built-in demo dataset is used. Progress goes to stderr as structured
logs; the final predictions go to stdout.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		if !cmd.Flags().Changed("config") && len(args) > 0 {
			configPath = args[0]
		}
		graphPath, _ := cmd.Flags().GetString("graph")
		every, _ := cmd.Flags().GetInt("log-every")

		logger := newLogger(cmd)

		cfg, err := loadConfig(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		hooks := nn.Hooks{
			OnEpoch: func(ctx context.Context, e *nn.EpochEvent) {
				if every > 0 && e.Epoch%every == 0 {
					logger.Info("epoch", "epoch", e.Epoch, "loss", e.Loss)
				}
			},
		}

		model, result, err := runTraining(cmd.Context(), cfg, logger, hooks)
		if err != nil {
			fmt.Printf("Error training: %v\n", err)
			os.Exit(1)
		}
		logger.Info("training complete",
			"epochs", result.Epochs,
			"loss", result.FinalLoss,
			"parameters", len(model.Parameters()))

		fmt.Printf("final loss after %d epochs: %.6f\n", result.Epochs, result.FinalLoss)
		for i, row := range cfg.Inputs() {
			pred := model.Forward(nn.Lift(row))[0]
			fmt.Printf("  sample %d: target %+.1f predicted %+.4f\n", i, cfg.Data[i].Target, pred.Data())
		}

		if graphPath != "" {
			out := graph.GenerateDOT(graph.Collect(result.Loss), nil)
			if err := os.WriteFile(graphPath, []byte(out), 0644); err != nil {
				fmt.Printf("Error writing %s: %v\n", graphPath, err)
				os.Exit(1)
			}
			logger.Info("loss graph written", "path", graphPath)
		}
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().String("config", "", "Training config file (YAML)")
	trainCmd.Flags().String("graph", "", "Write the final loss graph as DOT to this file")
	trainCmd.Flags().Int("log-every", 10, "Log the loss every N epochs (0 disables)")
}
