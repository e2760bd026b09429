// Package types provides type definitions for the structured data passed
// between pipeline stages.
package types

const (
	// MaxSkills caps the normalized skill list on resumes and job postings.
	MaxSkills = 10
	// MaxRolePoints caps bullet points per work-history role.
	MaxRolePoints = 4
	// MaxResponsibilities caps the responsibility list on extracted postings.
	MaxResponsibilities = 6
)

// Credential is a single education entry on a resume.
type Credential struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Role is a single work-history entry. Points holds at most MaxRolePoints
// achievement bullets.
type Role struct {
	Company string   `json:"company"`
	Role    string   `json:"role"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Points  []string `json:"points"`
}

// ResumeProfile is the structured output of the parse stage. Skills are
// lowercase, deduplicated case-insensitively, and capped at MaxSkills.
// The profile is immutable once the parse stage hands it to the orchestrator.
type ResumeProfile struct {
	Name              string       `json:"name"`
	YearsOfExperience int          `json:"years_of_experience"`
	CurrentTitle      string       `json:"current_title"`
	Skills            []string     `json:"skills"`
	Education         []Credential `json:"education"`
	WorkHistory       []Role       `json:"work_history"`
}
