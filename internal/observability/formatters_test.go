package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-match-agent/internal/types"
)

func TestPrintMatchReport(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatchReport(&types.MatchReport{
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
		Strengths:        []string{"Hands-on experience with Hadoop"},
		HowToImprove:     []string{"Gain hands-on experience with Kubernetes"},
		OptimizedSummary: "A summary.",
		CoverLetter:      "A letter.",
		RecruiterMessage: "A message.",
		JobTitle:         "Data Platform Engineer",
		Company:          "Databricks",
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH REPORT: Data Platform Engineer at Databricks")
	assert.Contains(t, out, "Score:       79/100")
	assert.Contains(t, out, "Missing skills: Kubernetes")
	assert.Contains(t, out, "+ Hands-on experience with Hadoop")
}

func TestPrintSelectedJob_OmitsEmptyBackup(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintSelectedJob(&types.SelectedJob{
		PrimaryURL:       "https://jobs.lever.co/vercel/xyz123",
		ResolvedCategory: "default",
		SelectionMethod:  types.SelectionDefault,
	})

	assert.NotContains(t, buf.String(), "Backup URL")
}
