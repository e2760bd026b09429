// Package pipeline sequences the four match stages (parse, select, extract,
// analyze), gating each boundary on the schema validator and the global
// timeout guard, and converting every failure into a fallback report. The
// caller always receives a schema-valid report, never a raw error.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/job-match-agent/internal/catalog"
	"github.com/jonathan/job-match-agent/internal/fallback"
	"github.com/jonathan/job-match-agent/internal/schemas"
	"github.com/jonathan/job-match-agent/internal/scoring"
	"github.com/jonathan/job-match-agent/internal/selection"
	"github.com/jonathan/job-match-agent/internal/timeout"
	"github.com/jonathan/job-match-agent/internal/types"
)

// ProgressEvent describes a stage boundary for progress reporting.
type ProgressEvent struct {
	Stage   schemas.Stage
	Message string
}

// ProgressCallback receives progress events during a run.
type ProgressCallback func(event ProgressEvent)

// RunOptions configures a pipeline runner. Catalog, Parser, Extractor,
// Judge, and Generator are required.
type RunOptions struct {
	Catalog   *catalog.Catalog
	StopTerms catalog.StopTerms

	// Budget is the global wall-clock budget. Zero means
	// timeout.DefaultBudget.
	Budget time.Duration

	Parser    ResumeParser
	Extractor JobExtractor
	Judge     ExperienceJudge
	Generator TextGenerator

	// OnProgress, when set, receives an event as each stage starts.
	OnProgress ProgressCallback

	// KeepDebug retains the _debug diagnostics map on the returned report.
	KeepDebug bool
}

// Runner executes match pipeline runs. A runner is safe for concurrent use:
// each run owns an independent State and the static tables are read-only.
type Runner struct {
	opts RunOptions
}

// NewRunner validates the options and returns a runner.
func NewRunner(opts RunOptions) (*Runner, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("pipeline runner requires a catalog")
	}
	if opts.Parser == nil {
		return nil, fmt.Errorf("pipeline runner requires a resume parser")
	}
	if opts.Extractor == nil {
		return nil, fmt.Errorf("pipeline runner requires a job extractor")
	}
	if opts.Judge == nil {
		return nil, fmt.Errorf("pipeline runner requires an experience judge")
	}
	if opts.Generator == nil {
		return nil, fmt.Errorf("pipeline runner requires a text generator")
	}
	return &Runner{opts: opts}, nil
}

// Run executes the four stages in order and returns the match report. On
// any stage error, validation failure, or budget exhaustion it returns the
// fallback report instead; it never returns an error to the caller.
func (r *Runner) Run(ctx context.Context, resumeText, jobQuery string) *types.MatchReport {
	guard := timeout.New(r.opts.Budget)
	state := newState(guard.Deadline(), resumeText, jobQuery)

	// Stage deadlines never extend past the global budget.
	ctx, cancel := context.WithDeadline(ctx, guard.Deadline())
	defer cancel()

	for _, stage := range []func(context.Context, *timeout.Guard, *State) *types.MatchReport{
		r.runParse,
		r.runSelect,
		r.runExtract,
		r.runAnalyze,
	} {
		if report := stage(ctx, guard, state); report != nil {
			return r.finish(report, state, guard)
		}
	}

	return r.finish(state.Report, state, guard)
}

func (r *Runner) runParse(ctx context.Context, guard *timeout.Guard, state *State) *types.MatchReport {
	if report := r.gate(schemas.StageParse, guard, state); report != nil {
		return report
	}

	start := guard.Elapsed()
	profile, err := r.opts.Parser.Parse(ctx, state.resumeText)
	if err != nil {
		state.record(schemas.StageParse, guard.Elapsed()-start, OutcomeFailed, err.Error())
		return fallback.Build(fallback.ReasonStageError, err.Error())
	}
	if err := schemas.ValidateStage(schemas.StageParse, profile); err != nil {
		state.record(schemas.StageParse, guard.Elapsed()-start, OutcomeFailed, err.Error())
		return fallback.Build(fallback.ReasonValidation, err.Error())
	}

	state.Profile = profile
	state.record(schemas.StageParse, guard.Elapsed()-start, OutcomeOK, "")
	return nil
}

func (r *Runner) runSelect(_ context.Context, guard *timeout.Guard, state *State) *types.MatchReport {
	if report := r.gate(schemas.StageSelect, guard, state); report != nil {
		return report
	}

	start := guard.Elapsed()
	selected, err := selection.Select(state.jobQuery, state.Profile, r.opts.Catalog)
	if err != nil {
		state.record(schemas.StageSelect, guard.Elapsed()-start, OutcomeFailed, err.Error())
		return fallback.Build(fallback.ReasonSelectionMiss, err.Error())
	}
	if err := schemas.ValidateStage(schemas.StageSelect, selected); err != nil {
		state.record(schemas.StageSelect, guard.Elapsed()-start, OutcomeFailed, err.Error())
		return fallback.Build(fallback.ReasonValidation, err.Error())
	}

	state.Selected = selected
	state.record(schemas.StageSelect, guard.Elapsed()-start, OutcomeOK, string(selected.SelectionMethod))
	return nil
}

func (r *Runner) runExtract(ctx context.Context, guard *timeout.Guard, state *State) *types.MatchReport {
	if report := r.gate(schemas.StageExtract, guard, state); report != nil {
		return report
	}

	start := guard.Elapsed()
	posting, err := r.opts.Extractor.Extract(ctx, state.Selected)
	if err != nil {
		state.record(schemas.StageExtract, guard.Elapsed()-start, OutcomeFailed, err.Error())
		return fallback.Build(fallback.ReasonStageError, err.Error())
	}
	if err := schemas.ValidateStage(schemas.StageExtract, posting); err != nil {
		state.record(schemas.StageExtract, guard.Elapsed()-start, OutcomeFailed, err.Error())
		return fallback.Build(fallback.ReasonValidation, err.Error())
	}

	state.Posting = posting
	state.record(schemas.StageExtract, guard.Elapsed()-start, OutcomeOK, "")
	return nil
}

func (r *Runner) runAnalyze(ctx context.Context, guard *timeout.Guard, state *State) *types.MatchReport {
	if report := r.gate(schemas.StageAnalyze, guard, state); report != nil {
		return report
	}

	start := guard.Elapsed()
	report, err := r.analyze(ctx, state)
	if err != nil {
		state.record(schemas.StageAnalyze, guard.Elapsed()-start, OutcomeFailed, err.Error())
		var valErr *schemas.ValidationError
		if errors.As(err, &valErr) {
			return fallback.Build(fallback.ReasonValidation, err.Error())
		}
		return fallback.Build(fallback.ReasonStageError, err.Error())
	}

	state.Report = report
	state.record(schemas.StageAnalyze, guard.Elapsed()-start, OutcomeOK, "")
	return nil
}

// analyze judges experience, scores the match, and fills in the generated
// text fields.
func (r *Runner) analyze(ctx context.Context, state *State) (*types.MatchReport, error) {
	experienceScore, err := r.opts.Judge.ExperienceScore(ctx, state.Profile, state.Posting)
	if err != nil {
		return nil, err
	}

	report, err := scoring.Score(state.Profile, state.Posting, experienceScore, r.opts.StopTerms)
	if err != nil {
		return nil, err
	}

	if report.OptimizedSummary, err = r.opts.Generator.Summary(ctx, state.Profile, state.Posting, report.MatchScore); err != nil {
		return nil, err
	}
	if report.CoverLetter, err = r.opts.Generator.CoverLetter(ctx, state.Profile, state.Posting, report.MatchScore); err != nil {
		return nil, err
	}
	if report.RecruiterMessage, err = r.opts.Generator.RecruiterMessage(ctx, state.Profile, state.Posting, report.MatchScore); err != nil {
		return nil, err
	}

	if err := schemas.CheckGeneratedText(report); err != nil {
		return nil, err
	}
	if err := schemas.ValidateStage(schemas.StageAnalyze, report); err != nil {
		return nil, err
	}
	return report, nil
}

// gate consults the timeout guard before a stage starts and emits the
// progress event. An expired budget short-circuits to the fallback without
// invoking the stage.
func (r *Runner) gate(stage schemas.Stage, guard *timeout.Guard, state *State) *types.MatchReport {
	if guard.Expired() {
		detail := fmt.Sprintf("budget exhausted before stage %s (elapsed %s)", stage, guard.Elapsed().Round(time.Millisecond))
		state.record(stage, 0, OutcomeFailed, detail)
		return fallback.Build(fallback.ReasonTimeout, detail)
	}
	if r.opts.OnProgress != nil {
		r.opts.OnProgress(ProgressEvent{Stage: stage, Message: fmt.Sprintf("stage %s starting", stage)})
	}
	return nil
}

// finish attaches run diagnostics and strips them unless configured
// otherwise.
func (r *Runner) finish(report *types.MatchReport, state *State, guard *timeout.Guard) *types.MatchReport {
	if report.Debug == nil {
		report.Debug = map[string]any{}
	}
	report.Debug["run_id"] = state.RunID
	report.Debug["elapsed"] = guard.Elapsed().Round(time.Millisecond).String()
	report.Debug["trace"] = state.Trace

	if !r.opts.KeepDebug {
		report.StripDebug()
	}
	return report
}
