package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-match-agent/internal/schemas"
	"github.com/jonathan/job-match-agent/internal/types"
)

// Stage outcomes recorded in the trace.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// StageTrace records one stage boundary crossing for diagnostics.
type StageTrace struct {
	Stage   schemas.Stage `json:"stage"`
	Elapsed string        `json:"elapsed"`
	Outcome string        `json:"outcome"`
	Detail  string        `json:"detail,omitempty"`
}

// State is the accumulating bag carried across stage boundaries for one
// run. It is owned exclusively by the runner and discarded afterwards.
type State struct {
	RunID     string
	StartedAt time.Time
	Deadline  time.Time

	resumeText string
	jobQuery   string

	Profile  *types.ResumeProfile
	Selected *types.SelectedJob
	Posting  *types.JobPosting
	Report   *types.MatchReport

	Trace []StageTrace
}

func newState(deadline time.Time, resumeText, jobQuery string) *State {
	return &State{
		RunID:      uuid.NewString(),
		StartedAt:  time.Now(),
		Deadline:   deadline,
		resumeText: resumeText,
		jobQuery:   jobQuery,
		Trace:      make([]StageTrace, 0, 4),
	}
}

func (s *State) record(stage schemas.Stage, elapsed time.Duration, outcome, detail string) {
	s.Trace = append(s.Trace, StageTrace{
		Stage:   stage,
		Elapsed: elapsed.Round(time.Millisecond).String(),
		Outcome: outcome,
		Detail:  detail,
	})
}
