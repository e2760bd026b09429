package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-agent/internal/catalog"
	"github.com/jonathan/job-match-agent/internal/schemas"
	"github.com/jonathan/job-match-agent/internal/selection"
	"github.com/jonathan/job-match-agent/internal/types"
)

var selectJobCmd = &cobra.Command{
	Use:   "select-job",
	Short: "Resolve a job query to a catalog category",
	Long:  "Run only the select stage: resolve a job query (and optionally a parsed profile JSON) to a job category and URL pair. Deterministic, no API calls.",
	RunE:  runSelectJob,
}

var (
	selectQuery   string
	selectProfile string
	selectCatalog string
	selectOut     string
)

func init() {
	selectJobCmd.Flags().StringVarP(&selectQuery, "query", "q", "", "Job query string")
	selectJobCmd.Flags().StringVarP(&selectProfile, "profile", "p", "", "Path to ResumeProfile JSON for inference")
	selectJobCmd.Flags().StringVar(&selectCatalog, "catalog", "", "Path to job catalog JSON (overrides embedded catalog)")
	selectJobCmd.Flags().StringVarP(&selectOut, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(selectJobCmd)
}

func runSelectJob(_ *cobra.Command, _ []string) error {
	var (
		cat *catalog.Catalog
		err error
	)
	if selectCatalog != "" {
		cat, err = catalog.Load(selectCatalog)
	} else {
		cat, err = catalog.LoadDefault()
	}
	if err != nil {
		return err
	}

	var profile *types.ResumeProfile
	if selectProfile != "" {
		data, err := os.ReadFile(selectProfile)
		if err != nil {
			return fmt.Errorf("failed to read profile file: %w", err)
		}
		profile = &types.ResumeProfile{}
		if err := json.Unmarshal(data, profile); err != nil {
			return fmt.Errorf("failed to parse profile JSON: %w", err)
		}
	}

	selected, err := selection.Select(selectQuery, profile, cat)
	if err != nil {
		return err
	}
	if err := schemas.ValidateStage(schemas.StageSelect, selected); err != nil {
		return err
	}

	return writeJSON(selected, selectOut)
}
