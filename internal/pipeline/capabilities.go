package pipeline

import (
	"context"

	"github.com/jonathan/job-match-agent/internal/types"
)

// ResumeParser converts raw resume text into a structured profile.
type ResumeParser interface {
	Parse(ctx context.Context, resumeText string) (*types.ResumeProfile, error)
}

// JobExtractor converts a selected job URL into a structured posting.
type JobExtractor interface {
	Extract(ctx context.Context, selected *types.SelectedJob) (*types.JobPosting, error)
}

// ExperienceJudge rates resume experience against a posting on a 0-10
// scale.
type ExperienceJudge interface {
	ExperienceScore(ctx context.Context, profile *types.ResumeProfile, posting *types.JobPosting) (int, error)
}

// TextGenerator produces the three generated text fields of a report.
type TextGenerator interface {
	Summary(ctx context.Context, profile *types.ResumeProfile, posting *types.JobPosting, score int) (string, error)
	CoverLetter(ctx context.Context, profile *types.ResumeProfile, posting *types.JobPosting, score int) (string, error)
	RecruiterMessage(ctx context.Context, profile *types.ResumeProfile, posting *types.JobPosting, score int) (string, error)
}
