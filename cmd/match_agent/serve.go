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

	"github.com/jonathan/job-match-agent/internal/config"
	"github.com/jonathan/job-match-agent/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the match API server",
	Long:  "Start an HTTP server exposing POST /match for pipeline runs and GET /health.",
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigPath string
	serveAPIKey     string
	serveUseBrowser bool
	serveKeepDebug  bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Enable headless browser fallback for SPA job boards")
	serveCmd.Flags().BoolVar(&serveKeepDebug, "keep-debug", false, "Keep the _debug diagnostics on served reports")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = servePort
	}
	if flags.Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if flags.Changed("use-browser") {
		cfg.UseBrowser = serveUseBrowser
	}
	if flags.Changed("keep-debug") {
		cfg.KeepDebug = serveKeepDebug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	runner, client, err := buildRunner(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	srv := server.New(runner, server.Config{Port: cfg.Port})

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stdout, "Listening on :%d\n", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case sig := <-sigCh:
		fmt.Fprintf(os.Stdout, "Received %s, shutting down\n", sig)
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
