package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-agent/internal/catalog"
	"github.com/jonathan/job-match-agent/internal/config"
	"github.com/jonathan/job-match-agent/internal/extraction"
	"github.com/jonathan/job-match-agent/internal/llm"
	"github.com/jonathan/job-match-agent/internal/schemas"
	"github.com/jonathan/job-match-agent/internal/types"
)

var extractJobCmd = &cobra.Command{
	Use:   "extract-job",
	Short: "Extract a structured posting from a job URL",
	Long:  "Run only the extract stage: fetch a job posting URL from a supported ATS and convert it into a schema-valid JobPosting JSON.",
	RunE:  runExtractJob,
}

var (
	extractURL        string
	extractBackupURL  string
	extractOut        string
	extractAPIKey     string
	extractUseBrowser bool
)

func init() {
	extractJobCmd.Flags().StringVarP(&extractURL, "url", "u", "", "Job posting URL (required)")
	extractJobCmd.Flags().StringVar(&extractBackupURL, "backup-url", "", "Backup URL tried when the primary fails")
	extractJobCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractJobCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractJobCmd.Flags().BoolVar(&extractUseBrowser, "use-browser", false, "Enable headless browser fallback for SPA job boards")
	_ = extractJobCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(extractJobCmd)
}

func runExtractJob(_ *cobra.Command, _ []string) error {
	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv(config.APIKeyEnv)
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set %s or use --api-key)", config.APIKeyEnv)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	stop, err := catalog.DefaultStopTerms()
	if err != nil {
		return err
	}

	fetcher := &extraction.WebFetcher{UseBrowser: extractUseBrowser}
	extractor := extraction.NewExtractor(client, fetcher, stop)

	posting, err := extractor.Extract(ctx, &types.SelectedJob{
		PrimaryURL: extractURL,
		BackupURL:  extractBackupURL,
	})
	if err != nil {
		return err
	}
	if err := schemas.ValidateStage(schemas.StageExtract, posting); err != nil {
		return err
	}

	return writeJSON(posting, extractOut)
}
