// Package schemas gates each pipeline stage's output against a fixed
// structural contract. Validation is purely structural and range-based; it
// never judges semantic quality and never repairs payloads.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/job-match-agent/internal/types"
	"github.com/jonathan/job-match-agent/internal/writing"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Stage identifies one of the four pipeline stages.
type Stage string

const (
	// StageParse converts resume text to a ResumeProfile
	StageParse Stage = "parse"
	// StageSelect resolves the job query to a SelectedJob
	StageSelect Stage = "select"
	// StageExtract converts a posting page to a JobPosting
	StageExtract Stage = "extract"
	// StageAnalyze scores the match and fills the MatchReport
	StageAnalyze Stage = "analyze"
)

var stageSchemas = map[Stage]string{
	StageParse:   "resume_profile.schema.json",
	StageSelect:  "selected_job.schema.json",
	StageExtract: "job_posting.schema.json",
	StageAnalyze: "match_report.schema.json",
}

// ValidationError reports the first schema violation found in a stage
// output.
type ValidationError struct {
	Stage   Stage
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("stage %s output failed validation: %s: %s", e.Stage, e.Field, e.Message)
}

// ValidateStage checks a stage's output payload against that stage's schema.
// Returns nil on success or a ValidationError describing the first
// violation.
func ValidateStage(stage Stage, payload any) error {
	filename, ok := stageSchemas[stage]
	if !ok {
		return fmt.Errorf("unknown pipeline stage %q", stage)
	}

	schemaData, err := schemaFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read schema for stage %s: %w", stage, err)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal stage %s output: %w", stage, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(payloadJSON),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed for stage %s: %w", stage, err)
	}

	if !result.Valid() {
		first := result.Errors()[0]
		return &ValidationError{
			Stage:   stage,
			Field:   first.Field(),
			Message: first.Description(),
		}
	}
	return nil
}

// CheckGeneratedText enforces the word and sentence ranges on freshly
// generated report text. It runs at the analyze boundary only; fallback
// placeholder text is exempt because it is never freshly generated.
func CheckGeneratedText(report *types.MatchReport) error {
	if n := len(writing.SplitSentences(report.OptimizedSummary)); n == 0 || n > writing.SummaryMaxSentences {
		return &ValidationError{
			Stage:   StageAnalyze,
			Field:   "optimized_summary",
			Message: fmt.Sprintf("must contain 1-%d sentences, got %d", writing.SummaryMaxSentences, n),
		}
	}

	if n := writing.CountWords(report.CoverLetter); n < writing.CoverLetterMinWords || n > writing.CoverLetterHardCap {
		return &ValidationError{
			Stage:   StageAnalyze,
			Field:   "cover_letter",
			Message: fmt.Sprintf("must contain %d-%d words, got %d", writing.CoverLetterMinWords, writing.CoverLetterHardCap, n),
		}
	}

	if n := len(writing.SplitSentences(report.RecruiterMessage)); n == 0 || n > writing.RecruiterMaxSentences {
		return &ValidationError{
			Stage:   StageAnalyze,
			Field:   "recruiter_message",
			Message: fmt.Sprintf("must contain 1-%d sentences, got %d", writing.RecruiterMaxSentences, n),
		}
	}
	return nil
}
