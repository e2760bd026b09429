package writing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/job-match-agent/internal/llm"
	"github.com/jonathan/job-match-agent/internal/prompts"
	"github.com/jonathan/job-match-agent/internal/types"
)

// Judge produces the experience score for the analyze stage.
type Judge struct {
	client llm.Client
}

// NewJudge creates an experience judge backed by the given LLM client.
func NewJudge(client llm.Client) *Judge {
	return &Judge{client: client}
}

type judgeResponse struct {
	ExperienceScore int    `json:"experience_score"`
	Reasoning       string `json:"reasoning"`
}

// ExperienceScore rates the candidate's experience against the posting on a
// 0-10 scale. Out-of-range model output is clamped, not rejected.
func (j *Judge) ExperienceScore(ctx context.Context, profile *types.ResumeProfile, posting *types.JobPosting) (int, error) {
	template, err := prompts.Get("writing.json", "judge-experience")
	if err != nil {
		return 0, err
	}

	resumeJSON, err := json.Marshal(profile)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal resume profile: %w", err)
	}
	jobJSON, err := json.Marshal(posting)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal job posting: %w", err)
	}

	prompt := prompts.Format(template, map[string]string{
		"Resume": string(resumeJSON),
		"Job":    string(jobJSON),
	})

	response, err := j.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return 0, fmt.Errorf("experience judgment failed: %w", err)
	}

	var parsed judgeResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &parsed); err != nil {
		return 0, fmt.Errorf("experience judgment returned invalid JSON: %w", err)
	}

	score := parsed.ExperienceScore
	if score < 0 {
		score = 0
	} else if score > 10 {
		score = 10
	}
	return score, nil
}
