package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-agent/internal/config"
	"github.com/jonathan/job-match-agent/internal/llm"
	"github.com/jonathan/job-match-agent/internal/parsing"
	"github.com/jonathan/job-match-agent/internal/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume file into a structured profile",
	Long:  "Run only the parse stage: convert a resume text file into a schema-valid ResumeProfile JSON.",
	RunE:  runParseResume,
}

var (
	parseResumeFile   string
	parseResumeOut    string
	parseResumeAPIKey string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeFile, "resume", "r", "", "Path to resume text file (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOut, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseResumeCmd.Flags().StringVar(&parseResumeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = parseResumeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	apiKey := parseResumeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv(config.APIKeyEnv)
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set %s or use --api-key)", config.APIKeyEnv)
	}

	resumeText, err := os.ReadFile(parseResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	profile, err := parsing.NewParser(client).Parse(ctx, string(resumeText))
	if err != nil {
		return err
	}
	if err := schemas.ValidateStage(schemas.StageParse, profile); err != nil {
		return err
	}

	return writeJSON(profile, parseResumeOut)
}

// writeJSON marshals v with indentation to a file, or stdout when path is
// empty.
func writeJSON(v any, path string) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
