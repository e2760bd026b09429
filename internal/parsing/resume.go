// Package parsing converts raw resume text into a structured profile using
// an LLM, then normalizes the result into the pipeline's canonical shape.
package parsing

import (
	"context"
	"encoding/json"

	"github.com/jonathan/job-match-agent/internal/llm"
	"github.com/jonathan/job-match-agent/internal/prompts"
	"github.com/jonathan/job-match-agent/internal/types"
)

// Parser extracts a structured profile from resume text.
type Parser struct {
	client llm.Client
}

// NewParser creates a resume parser backed by the given LLM client.
func NewParser(client llm.Client) *Parser {
	return &Parser{client: client}
}

// Parse preprocesses the resume text, prompts the model for a structured
// profile, and post-processes the result. Returned slices are never nil.
func (p *Parser) Parse(ctx context.Context, resumeText string) (*types.ResumeProfile, error) {
	cleaned := Preprocess(resumeText)
	if cleaned == "" {
		return nil, &ValidationError{Field: "resume_text", Message: "resume text is empty after preprocessing"}
	}

	template, err := prompts.Get("parsing.json", "parse-resume")
	if err != nil {
		return nil, &ParseError{Message: "failed to load prompt", Cause: err}
	}
	prompt := prompts.Format(template, map[string]string{"ResumeText": cleaned})

	response, err := p.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "resume parse request", Cause: err}
	}

	var profile types.ResumeProfile
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &profile); err != nil {
		return nil, &ParseError{Message: "response is not valid JSON", Cause: err}
	}

	if profile.YearsOfExperience < 0 {
		return nil, &ValidationError{Field: "years_of_experience", Message: "must be non-negative"}
	}

	profile.Skills = NormalizeSkills(profile.Skills)
	if profile.Education == nil {
		profile.Education = []types.Credential{}
	}
	if profile.WorkHistory == nil {
		profile.WorkHistory = []types.Role{}
	}
	for i := range profile.WorkHistory {
		if profile.WorkHistory[i].Points == nil {
			profile.WorkHistory[i].Points = []string{}
		}
		if len(profile.WorkHistory[i].Points) > types.MaxRolePoints {
			profile.WorkHistory[i].Points = profile.WorkHistory[i].Points[:types.MaxRolePoints]
		}
	}

	return &profile, nil
}
