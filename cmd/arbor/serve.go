package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arbor-dev/arbor/internal/config"
	"github.com/arbor-dev/arbor/internal/preview"
)

func serveCmd() *cobra.Command {
	var (
		port    int
		host    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the live-reload preview server.

The server renders the configured entry page on every request,
watches the project files and reloads connected browsers on change.
Render metrics are exposed on /metrics.

Examples:
  arbor serve
  arbor serve --port=8080
  arbor serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, verbose)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from arbor.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from arbor.json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runServe(port int, host string, verbose bool) error {
	cfg := config.LoadOrDefault(".")

	// Apply command-line overrides
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	printBanner()
	fmt.Println("  serve")
	fmt.Println()
	info("entry    %s", cfg.Entry)
	info("address  http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	if cfg.Scoped {
		info("scoping  enabled")
	}
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	return preview.NewServer(cfg, logger).Run(ctx)
}
