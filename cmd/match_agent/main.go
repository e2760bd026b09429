// Package main provides the entry point for the job match agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Resume-to-job match pipeline",
	Long:  "Job Match Agent runs a bounded four-stage pipeline (parse, select, extract, analyze) that turns a resume and a job query into a structured match report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
