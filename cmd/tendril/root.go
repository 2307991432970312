package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tendril/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "tendril",
	Short: "Tendril is a scalar reverse-mode autograd engine",
	Long: `Tendril builds scalar expression graphs, differentiates them in reverse
mode and renders them as DOT, Mermaid or JSON.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// newLogger builds the logger shared by the subcommands. It writes to stderr,
// so stdout stays pipeable.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.ParseLevel(level))
}
