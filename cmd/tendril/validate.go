package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tendril/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config.yaml>",
	Short: "Check a training config for consistency",
	Long: `Parses the training config and reports every shape problem found, with the
field path of each.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConfigValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runConfigValidate(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("%d inputs, layers %v, %s activation, %d samples, %d epochs at lr %g\n",
		cfg.Model.Inputs, cfg.Layout(), cfg.Activation(), len(cfg.Data),
		cfg.Training.Epochs, cfg.Training.LearningRate)
	return nil
}
