package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tendril/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [neuron|mlp|loss]",
	Short: "Export an expression graph visualization",
	Long: `Builds one of the demo graphs, differentiates it and writes it as DOT,
Mermaid or JSON. The loss graph trains first, from --config or the built-in
dataset.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := "neuron"
		if len(args) > 0 {
			name = args[0]
		}
		format, _ := cmd.Flags().GetString("format")
		configPath, _ := cmd.Flags().GetString("config")
		outPath, _ := cmd.Flags().GetString("out")
		precision, _ := cmd.Flags().GetInt("precision")
		highlight, _ := cmd.Flags().GetBool("highlight")

		root, err := buildDemoGraph(cmd.Context(), name, configPath, newLogger(cmd))
		if err != nil {
			fmt.Printf("Error building graph: %v\n", err)
			os.Exit(1)
		}

		opts := &graph.Options{Precision: precision, HighlightGradients: highlight}
		output, err := renderView(graph.Collect(root), format, opts)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if outPath != "" {
			if err := os.WriteFile(outPath, []byte(output), 0644); err != nil {
				fmt.Printf("Error writing %s: %v\n", outPath, err)
				os.Exit(1)
			}
			return
		}
		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", "mermaid", "Output format (dot, mermaid or json)")
	graphCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")
	graphCmd.Flags().String("config", "", "Training config for the loss graph")
	graphCmd.Flags().Int("precision", 4, "Decimals for data/grad figures")
	graphCmd.Flags().Bool("highlight", false, "Style nodes with nonzero gradients")
}
