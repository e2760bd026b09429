package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-agent/internal/config"
	"github.com/jonathan/job-match-agent/internal/observability"
	"github.com/jonathan/job-match-agent/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full match pipeline",
	Long:  "Run all four stages (parse, select, extract, analyze) against a resume file and a job query, and print the match report as JSON.",
	RunE:  runRun,
}

var (
	runResume     string
	runQuery      string
	runConfigPath string
	runCatalog    string
	runStopTerms  string
	runAPIKey     string
	runTimeout    int
	runUseBrowser bool
	runKeepDebug  bool
	runVerbose    bool
)

func init() {
	runCmd.Flags().StringVarP(&runResume, "resume", "r", "", "Path to resume text file (required)")
	runCmd.Flags().StringVarP(&runQuery, "query", "q", "", "Job query string (empty infers from the resume)")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to JSON config file")
	runCmd.Flags().StringVar(&runCatalog, "catalog", "", "Path to job catalog JSON (overrides embedded catalog)")
	runCmd.Flags().StringVar(&runStopTerms, "stop-terms", "", "Path to stop-term JSON (overrides embedded table)")
	runCmd.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	runCmd.Flags().IntVar(&runTimeout, "timeout", 0, "Global pipeline budget in seconds")
	runCmd.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Enable headless browser fallback for SPA job boards")
	runCmd.Flags().BoolVar(&runKeepDebug, "keep-debug", false, "Keep the _debug diagnostics on the report")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print stage progress and a formatted report")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(runConfigPath)
	if err != nil {
		return err
	}
	applyRunFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("a resume file is required (--resume or config)")
	}
	resumeText, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	ctx := context.Background()

	var onProgress pipeline.ProgressCallback
	if cfg.Verbose {
		onProgress = func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Stage, event.Message)
		}
	}

	runner, client, err := buildRunner(ctx, cfg, onProgress)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	report := runner.Run(ctx, string(resumeText), cfg.Query)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatchReport(report)
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("resume") {
		cfg.Resume = runResume
	}
	if flags.Changed("query") {
		cfg.Query = runQuery
	}
	if flags.Changed("catalog") {
		cfg.Catalog = runCatalog
	}
	if flags.Changed("stop-terms") {
		cfg.StopTerms = runStopTerms
	}
	if flags.Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = runTimeout
	}
	if flags.Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if flags.Changed("keep-debug") {
		cfg.KeepDebug = runKeepDebug
	}
	if flags.Changed("verbose") {
		cfg.Verbose = runVerbose
	}
}
