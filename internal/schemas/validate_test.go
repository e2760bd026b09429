package schemas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-match-agent/internal/types"
	"github.com/jonathan/job-match-agent/internal/writing"
)

func validProfile() *types.ResumeProfile {
	return &types.ResumeProfile{
		Name:              "Jane Doe",
		YearsOfExperience: 6,
		CurrentTitle:      "Backend Engineer",
		Skills:            []string{"go", "postgresql"},
		Education:         []types.Credential{{Degree: "B.S."}},
		WorkHistory: []types.Role{
			{Company: "Acme", Role: "Engineer", Start: "2019", End: "Present", Points: []string{"shipped things"}},
		},
	}
}

func validReport() *types.MatchReport {
	return &types.MatchReport{
		MatchScore: 79,
		ScoreBreakdown: types.ScoreBreakdown{
			SkillOverlapRatio: 0.667,
			SkillWeight:       0.4,
			ExperienceScore:   8,
			ExperienceWeight:  0.4,
			EducationMatch:    true,
			EducationWeight:   0.2,
		},
		MissingSkills:    []string{"Kubernetes"},
		Strengths:        []string{"Hands-on experience with Go"},
		HowToImprove:     []string{"Gain hands-on experience with Kubernetes"},
		OptimizedSummary: "Backend engineer with six years of experience. Deep Go and PostgreSQL background.",
		CoverLetter:      "A plausible letter body.",
		RecruiterMessage: "I'd love to talk about the backend role.",
		JobTitle:         "Senior Backend Engineer",
		Company:          "Stripe",
		JobURL:           "https://boards.greenhouse.io/stripe/jobs/backend-engineer",
	}
}

func TestValidateStage_ValidProfile(t *testing.T) {
	assert.NoError(t, ValidateStage(StageParse, validProfile()))
}

func TestValidateStage_TooManySkills(t *testing.T) {
	profile := validProfile()
	profile.Skills = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}

	err := ValidateStage(StageParse, profile)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, StageParse, valErr.Stage)
	assert.Equal(t, "skills", valErr.Field)
}

func TestValidateStage_NegativeYears(t *testing.T) {
	profile := validProfile()
	profile.YearsOfExperience = -1

	var valErr *ValidationError
	require.ErrorAs(t, ValidateStage(StageParse, profile), &valErr)
}

func TestValidateStage_ValidSelection(t *testing.T) {
	selected := &types.SelectedJob{
		PrimaryURL:       "https://jobs.lever.co/vercel/xyz123",
		ResolvedCategory: "default",
		SelectionMethod:  types.SelectionDefault,
	}
	assert.NoError(t, ValidateStage(StageSelect, selected))
}

func TestValidateStage_BadSelectionMethod(t *testing.T) {
	selected := &types.SelectedJob{
		PrimaryURL:       "https://jobs.lever.co/vercel/xyz123",
		ResolvedCategory: "default",
		SelectionMethod:  "guessed",
	}

	var valErr *ValidationError
	require.ErrorAs(t, ValidateStage(StageSelect, selected), &valErr)
}

func TestValidateStage_ValidPosting(t *testing.T) {
	posting := &types.JobPosting{
		JobTitle:         "Backend Engineer",
		Company:          "Stripe",
		Skills:           []string{"Go"},
		Responsibilities: []string{"Build APIs"},
		ExperienceLevel:  "Senior",
		JobURL:           "https://boards.greenhouse.io/stripe/jobs/backend-engineer",
	}
	assert.NoError(t, ValidateStage(StageExtract, posting))
}

func TestValidateStage_TooManyResponsibilities(t *testing.T) {
	posting := &types.JobPosting{
		JobTitle:         "Backend Engineer",
		Skills:           []string{},
		Responsibilities: []string{"a", "b", "c", "d", "e", "f", "g"},
		JobURL:           "https://example.test",
	}

	var valErr *ValidationError
	require.ErrorAs(t, ValidateStage(StageExtract, posting), &valErr)
	assert.Equal(t, "responsibilities", valErr.Field)
}

func TestValidateStage_ValidReport(t *testing.T) {
	assert.NoError(t, ValidateStage(StageAnalyze, validReport()))
}

func TestValidateStage_ScoreOutOfRange(t *testing.T) {
	report := validReport()
	report.MatchScore = 101

	var valErr *ValidationError
	require.ErrorAs(t, ValidateStage(StageAnalyze, report), &valErr)
	assert.Equal(t, "match_score", valErr.Field)
}

func TestValidateStage_DebugAllowed(t *testing.T) {
	report := validReport()
	report.Debug = map[string]any{"run_id": "abc", "fallback_triggered": false}

	assert.NoError(t, ValidateStage(StageAnalyze, report))
}

func TestValidateStage_UnknownStage(t *testing.T) {
	assert.Error(t, ValidateStage(Stage("deploy"), validProfile()))
}

func TestCheckGeneratedText_Valid(t *testing.T) {
	report := validReport()
	report.CoverLetter = strings.Repeat("word ", writing.CoverLetterMinWords+10)

	assert.NoError(t, CheckGeneratedText(report))
}

func TestCheckGeneratedText_SummaryTooLong(t *testing.T) {
	report := validReport()
	report.CoverLetter = strings.Repeat("word ", writing.CoverLetterMinWords+10)
	report.OptimizedSummary = "One. Two. Three. Four."

	var valErr *ValidationError
	require.ErrorAs(t, CheckGeneratedText(report), &valErr)
	assert.Equal(t, "optimized_summary", valErr.Field)
}

func TestCheckGeneratedText_CoverLetterTooShort(t *testing.T) {
	var valErr *ValidationError
	require.ErrorAs(t, CheckGeneratedText(validReport()), &valErr)
	assert.Equal(t, "cover_letter", valErr.Field)
}
