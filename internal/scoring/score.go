// Package scoring computes the weighted match score between a resume
// profile and an extracted job posting. Everything here is pure and
// deterministic; the experience score arrives as an opaque judged input.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/job-match-agent/internal/catalog"
	"github.com/jonathan/job-match-agent/internal/types"
)

const (
	skillWeight      = 0.4
	experienceWeight = 0.4
	educationWeight  = 0.2

	// MaxExperienceScore is the upper bound of the judged experience score.
	MaxExperienceScore = 10

	// maxSuggestions bounds the strengths and how-to-improve lists.
	maxSuggestions = 5
)

// NoSkillsNote is recorded on the breakdown when the posting lists no skills.
const NoSkillsNote = "no skills listed"

// SkillOverlap returns the ratio of job skills present on the resume and the
// matched skills in job-posting order. Comparison is case-insensitive.
// A posting with zero skills yields ratio 0 rather than an error.
func SkillOverlap(resumeSkills, jobSkills []string) (float64, []string) {
	if len(jobSkills) == 0 {
		return 0, []string{}
	}

	have := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	matched := make([]string, 0, len(jobSkills))
	for _, skill := range jobSkills {
		if have[strings.ToLower(strings.TrimSpace(skill))] {
			matched = append(matched, skill)
		}
	}

	ratio := float64(len(matched)) / float64(len(jobSkills))
	if ratio > 1 {
		ratio = 1
	}
	return ratio, matched
}

// MissingSkills returns job skills absent from the resume, excluding
// soft-skill stop terms. Job-posting order is preserved.
func MissingSkills(resumeSkills, jobSkills []string, stop catalog.StopTerms) []string {
	have := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	missing := make([]string, 0, len(jobSkills))
	for _, skill := range jobSkills {
		if have[strings.ToLower(strings.TrimSpace(skill))] || stop.Contains(skill) {
			continue
		}
		missing = append(missing, skill)
	}
	return missing
}

// Composite folds the three weighted components into an integer score.
// The experience score must already be validated into [0,10].
func Composite(skillRatio float64, experienceScore int, educationMatch bool) (int, error) {
	if experienceScore < 0 || experienceScore > MaxExperienceScore {
		return 0, fmt.Errorf("experience score %d out of range [0,%d]", experienceScore, MaxExperienceScore)
	}
	if skillRatio < 0 {
		skillRatio = 0
	} else if skillRatio > 1 {
		skillRatio = 1
	}

	education := 0.0
	if educationMatch {
		education = 1.0
	}

	weighted := skillWeight*skillRatio +
		experienceWeight*(float64(experienceScore)/MaxExperienceScore) +
		educationWeight*education

	score := int(math.Round(100 * weighted))
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	return score, nil
}

// Strengths derives a bounded strengths list from the matched skills and the
// judged components.
func Strengths(matched []string, experienceScore int, educationMatch bool) []string {
	strengths := make([]string, 0, maxSuggestions)
	for _, skill := range matched {
		if len(strengths) == maxSuggestions {
			return strengths
		}
		strengths = append(strengths, fmt.Sprintf("Hands-on experience with %s", skill))
	}
	if experienceScore >= 7 && len(strengths) < maxSuggestions {
		strengths = append(strengths, "Experience level is a strong fit for this role")
	}
	if educationMatch && len(strengths) < maxSuggestions {
		strengths = append(strengths, "Education meets the posting's requirements")
	}
	return strengths
}

// HowToImprove derives a bounded improvement list from the skill gaps.
func HowToImprove(missing []string, skillRatio float64) []string {
	improvements := make([]string, 0, maxSuggestions)
	if skillRatio < 0.5 {
		improvements = append(improvements, "Review your resume for technical skill alignment")
	}
	for _, skill := range missing {
		if len(improvements) == maxSuggestions {
			return improvements
		}
		improvements = append(improvements, fmt.Sprintf("Gain hands-on experience with %s", skill))
	}
	return improvements
}

// Score computes the score-bearing fields of a match report. Text fields
// (summary, cover letter, recruiter message) are filled in later by the
// generation step. Slice fields are always non-nil.
func Score(profile *types.ResumeProfile, posting *types.JobPosting, experienceScore int, stop catalog.StopTerms) (*types.MatchReport, error) {
	ratio, matched := SkillOverlap(profile.Skills, posting.Skills)
	educationMatch := EducationMatch(profile.Education, posting)

	composite, err := Composite(ratio, experienceScore, educationMatch)
	if err != nil {
		return nil, err
	}

	missing := MissingSkills(profile.Skills, posting.Skills, stop)

	breakdown := types.ScoreBreakdown{
		SkillOverlapRatio: ratio,
		SkillWeight:       skillWeight,
		ExperienceScore:   experienceScore,
		ExperienceWeight:  experienceWeight,
		EducationMatch:    educationMatch,
		EducationWeight:   educationWeight,
	}
	if len(posting.Skills) == 0 {
		breakdown.Note = NoSkillsNote
	}

	return &types.MatchReport{
		MatchScore:     composite,
		ScoreBreakdown: breakdown,
		MissingSkills:  missing,
		Strengths:      Strengths(matched, experienceScore, educationMatch),
		HowToImprove:   HowToImprove(missing, ratio),
		JobTitle:       posting.JobTitle,
		Company:        posting.Company,
		JobURL:         posting.JobURL,
	}, nil
}
