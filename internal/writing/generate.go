package writing

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jonathan/job-match-agent/internal/llm"
	"github.com/jonathan/job-match-agent/internal/prompts"
	"github.com/jonathan/job-match-agent/internal/types"
)

// Length bounds for generated text. The cover letter target range is
// 280-320 words with a hard cap of 340; the summary and recruiter message
// are bounded by sentence count.
const (
	SummaryMaxSentences = 3

	CoverLetterMinWords = 280
	CoverLetterMaxWords = 320
	CoverLetterHardCap  = 340

	RecruiterMaxSentences = 2
)

// Generator produces the three text fields of a match report.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a text generator backed by the given LLM client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Summary generates an optimized professional summary, clamped to
// SummaryMaxSentences.
func (g *Generator) Summary(ctx context.Context, profile *types.ResumeProfile, posting *types.JobPosting, score int) (string, error) {
	text, err := g.generate(ctx, "generate-summary", llm.TierStandard, profile, posting, score)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	return ClampSentences(text, SummaryMaxSentences), nil
}

// CoverLetter generates a cover letter, truncated to the hard word cap.
func (g *Generator) CoverLetter(ctx context.Context, profile *types.ResumeProfile, posting *types.JobPosting, score int) (string, error) {
	text, err := g.generate(ctx, "generate-cover-letter", llm.TierAdvanced, profile, posting, score)
	if err != nil {
		return "", fmt.Errorf("cover letter generation failed: %w", err)
	}
	return TruncateWords(text, CoverLetterHardCap), nil
}

// RecruiterMessage generates a short recruiter outreach message, clamped to
// RecruiterMaxSentences.
func (g *Generator) RecruiterMessage(ctx context.Context, profile *types.ResumeProfile, posting *types.JobPosting, score int) (string, error) {
	text, err := g.generate(ctx, "generate-recruiter-message", llm.TierLite, profile, posting, score)
	if err != nil {
		return "", fmt.Errorf("recruiter message generation failed: %w", err)
	}
	return ClampSentences(text, RecruiterMaxSentences), nil
}

func (g *Generator) generate(ctx context.Context, key string, tier llm.ModelTier, profile *types.ResumeProfile, posting *types.JobPosting, score int) (string, error) {
	template, err := prompts.Get("writing.json", key)
	if err != nil {
		return "", err
	}

	resumeJSON, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to marshal resume profile: %w", err)
	}
	jobJSON, err := json.Marshal(posting)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job posting: %w", err)
	}

	prompt := prompts.Format(template, map[string]string{
		"Resume": string(resumeJSON),
		"Job":    string(jobJSON),
		"Score":  strconv.Itoa(score),
	})

	return g.client.GenerateContent(ctx, prompt, tier)
}
