// Package observability renders pipeline artifacts for terminal output.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-match-agent/internal/pipeline"
	"github.com/jonathan/job-match-agent/internal/types"
)

const boxWidth = 60

// Printer writes human-readable views of pipeline artifacts.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) printBox(title string) {
	line := strings.Repeat("=", boxWidth)
	fmt.Fprintf(p.out, "%s\n %s\n%s\n", line, title, line)
}

// PrintResumeProfile renders a parsed resume profile.
func (p *Printer) PrintResumeProfile(profile *types.ResumeProfile) {
	p.printBox("RESUME PROFILE")
	fmt.Fprintf(p.out, "Name:        %s\n", profile.Name)
	fmt.Fprintf(p.out, "Title:       %s\n", profile.CurrentTitle)
	fmt.Fprintf(p.out, "Experience:  %d years\n", profile.YearsOfExperience)
	fmt.Fprintf(p.out, "Skills:      %s\n", strings.Join(profile.Skills, ", "))
	for _, credential := range profile.Education {
		fmt.Fprintf(p.out, "Education:   %s %s (%s)\n", credential.Degree, credential.Field, credential.Institution)
	}
	for _, role := range profile.WorkHistory {
		fmt.Fprintf(p.out, "Role:        %s at %s (%s - %s)\n", role.Role, role.Company, role.Start, role.End)
	}
	fmt.Fprintln(p.out)
}

// PrintSelectedJob renders a job selection.
func (p *Printer) PrintSelectedJob(selected *types.SelectedJob) {
	p.printBox("SELECTED JOB")
	fmt.Fprintf(p.out, "Category:    %s\n", selected.ResolvedCategory)
	fmt.Fprintf(p.out, "Method:      %s\n", selected.SelectionMethod)
	fmt.Fprintf(p.out, "Primary URL: %s\n", selected.PrimaryURL)
	if selected.BackupURL != "" {
		fmt.Fprintf(p.out, "Backup URL:  %s\n", selected.BackupURL)
	}
	fmt.Fprintln(p.out)
}

// PrintJobPosting renders an extracted job posting.
func (p *Printer) PrintJobPosting(posting *types.JobPosting) {
	p.printBox("JOB POSTING")
	fmt.Fprintf(p.out, "Title:       %s\n", posting.JobTitle)
	fmt.Fprintf(p.out, "Company:     %s\n", posting.Company)
	fmt.Fprintf(p.out, "Level:       %s\n", posting.ExperienceLevel)
	fmt.Fprintf(p.out, "Skills:      %s\n", strings.Join(posting.Skills, ", "))
	for _, responsibility := range posting.Responsibilities {
		fmt.Fprintf(p.out, "  - %s\n", responsibility)
	}
	fmt.Fprintf(p.out, "URL:         %s\n", posting.JobURL)
	fmt.Fprintln(p.out)
}

// PrintMatchReport renders the final report.
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	p.printBox(fmt.Sprintf("MATCH REPORT: %s at %s", report.JobTitle, report.Company))
	fmt.Fprintf(p.out, "Score:       %d/100\n", report.MatchScore)
	fmt.Fprintf(p.out, "Skills:      %.0f%% overlap (weight %.1f)\n",
		report.ScoreBreakdown.SkillOverlapRatio*100, report.ScoreBreakdown.SkillWeight)
	fmt.Fprintf(p.out, "Experience:  %d/10 (weight %.1f)\n",
		report.ScoreBreakdown.ExperienceScore, report.ScoreBreakdown.ExperienceWeight)
	fmt.Fprintf(p.out, "Education:   %v (weight %.1f)\n",
		report.ScoreBreakdown.EducationMatch, report.ScoreBreakdown.EducationWeight)
	if report.ScoreBreakdown.Note != "" {
		fmt.Fprintf(p.out, "Note:        %s\n", report.ScoreBreakdown.Note)
	}

	if len(report.MissingSkills) > 0 {
		fmt.Fprintf(p.out, "\nMissing skills: %s\n", strings.Join(report.MissingSkills, ", "))
	}
	if len(report.Strengths) > 0 {
		fmt.Fprintln(p.out, "\nStrengths:")
		for _, strength := range report.Strengths {
			fmt.Fprintf(p.out, "  + %s\n", strength)
		}
	}
	if len(report.HowToImprove) > 0 {
		fmt.Fprintln(p.out, "\nHow to improve:")
		for _, improvement := range report.HowToImprove {
			fmt.Fprintf(p.out, "  > %s\n", improvement)
		}
	}

	fmt.Fprintf(p.out, "\nOptimized summary:\n%s\n", report.OptimizedSummary)
	fmt.Fprintf(p.out, "\nCover letter:\n%s\n", report.CoverLetter)
	fmt.Fprintf(p.out, "\nRecruiter message:\n%s\n", report.RecruiterMessage)
	fmt.Fprintln(p.out)
}

// PrintTrace renders the stage trace of a debug-enabled run.
func (p *Printer) PrintTrace(trace []pipeline.StageTrace) {
	p.printBox("STAGE TRACE")
	for _, entry := range trace {
		fmt.Fprintf(p.out, "%-8s %-7s %s", entry.Stage, entry.Outcome, entry.Elapsed)
		if entry.Detail != "" {
			fmt.Fprintf(p.out, "  (%s)", entry.Detail)
		}
		fmt.Fprintln(p.out)
	}
	fmt.Fprintln(p.out)
}
