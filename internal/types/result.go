package types

// ScoreBreakdown carries the weighted components behind a match score.
type ScoreBreakdown struct {
	SkillOverlapRatio float64 `json:"skill_overlap_ratio"`
	SkillWeight       float64 `json:"skill_weight"`
	ExperienceScore   int     `json:"experience_score"`
	ExperienceWeight  float64 `json:"experience_weight"`
	EducationMatch    bool    `json:"education_match"`
	EducationWeight   float64 `json:"education_weight"`
	Note              string  `json:"note,omitempty"`
}

// MatchReport is the terminal artifact of a pipeline run. It is the only
// shape callers ever see: failed runs produce a structurally identical
// degraded report via the fallback handler. Slice fields are always non-nil
// so the report marshals with empty arrays rather than nulls.
type MatchReport struct {
	MatchScore       int            `json:"match_score"`
	ScoreBreakdown   ScoreBreakdown `json:"score_breakdown"`
	MissingSkills    []string       `json:"missing_skills"`
	Strengths        []string       `json:"strengths"`
	HowToImprove     []string       `json:"how_to_improve"`
	OptimizedSummary string         `json:"optimized_summary"`
	CoverLetter      string         `json:"cover_letter"`
	RecruiterMessage string         `json:"recruiter_message"`
	JobTitle         string         `json:"job_title"`
	Company          string         `json:"company"`
	JobURL           string         `json:"job_url"`

	// Debug carries run diagnostics (run ID, stage trace, timings). It is
	// stripped before the report leaves the orchestrator unless the run was
	// configured to keep it.
	Debug map[string]any `json:"_debug,omitempty"`
}

// StripDebug removes the diagnostics map from the report.
func (r *MatchReport) StripDebug() {
	r.Debug = nil
}
