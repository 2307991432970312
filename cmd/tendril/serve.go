package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/tendril/internal/presentation/graph"
	"github.com/aretw0/tendril/internal/presentation/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve [neuron|mlp|loss]",
	Short: "Serve the graph viewer over HTTP",
	Long: `Builds one of the demo graphs, differentiates it and serves a read-only
viewer: an HTML page rendering the graph, its DOT/Mermaid/JSON exports and
Prometheus metrics.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := "neuron"
		if len(args) > 0 {
			name = args[0]
		}
		port, _ := cmd.Flags().GetString("port")
		configPath, _ := cmd.Flags().GetString("config")
		highlight, _ := cmd.Flags().GetBool("highlight")

		logger := newLogger(cmd)

		root, err := buildDemoGraph(cmd.Context(), name, configPath, logger)
		if err != nil {
			fmt.Printf("Error building graph: %v\n", err)
			os.Exit(1)
		}

		view := graph.Collect(root)
		handler := web.NewHandler(view,
			web.WithLogger(logger),
			web.WithRenderOptions(&graph.Options{HighlightGradients: highlight}),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("viewer listening", "addr", srv.Addr, "graph", name, "nodes", len(view.Nodes))
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("viewer stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("config", "", "Training config for the loss graph")
	serveCmd.Flags().Bool("highlight", false, "Style nodes with nonzero gradients")
}
