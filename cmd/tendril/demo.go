package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tendril/internal/presentation/graph"
	"github.com/aretw0/tendril/internal/presentation/tui"
)

const demoIntro = `
# tendril demo

A single neuron:

    o = tanh(x1*w1 + x2*w2 + b)

Every operation records its operands, so the result is an expression graph
rather than a plain number. **Backward** seeds the output gradient with 1 and
applies the chain rule in reverse topological order, leaving on every node the
derivative of the output with respect to that node.

Below is the graph after one backward pass, leaves first. Reading the grad
column: nudging x1 by h moves o by roughly -1.5*h.
`

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through differentiating a tanh neuron",
	Long: `Builds the classic two-input tanh neuron, runs the backward pass and prints
every node's value and gradient. --format dumps the graph for piping instead
of the interactive walkthrough.`,
	Run: func(cmd *cobra.Command, args []string) {
		showTrace, _ := cmd.Flags().GetBool("trace")
		format, _ := cmd.Flags().GetString("format")

		o := demoNeuron()
		o.Backward()

		if format != "" {
			out, err := renderView(graph.Collect(o), format, &graph.Options{HighlightGradients: true})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(out)
			return
		}

		tui.PrintBanner()
		render := tui.NewRenderer()
		fmt.Println(render(demoIntro))

		view := graph.Collect(o)
		rows := make([]tui.Row, 0, len(view.Nodes))
		for i := len(view.Nodes) - 1; i >= 0; i-- {
			n := view.Nodes[i]
			name := n.Label
			if name == "" {
				name = n.ID
			}
			rows = append(rows, tui.Row{Label: name, Data: n.Data, Grad: n.Grad})
		}
		tui.PrintTable(os.Stdout, rows)

		if showTrace {
			fmt.Println()
			tui.Trace(os.Stdout, o)
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Bool("trace", false, "Print the backward propagation order")
	demoCmd.Flags().String("format", "", "Dump the graph instead (dot, mermaid or json)")
}
