package types

// SelectionMethod records which precedence tier resolved a job category.
type SelectionMethod string

// Demo-prefixed queries are not a method of their own; they resolve to the
// default category and report SelectionDefault.
const (
	// SelectionExact means the query matched a catalog category key.
	SelectionExact SelectionMethod = "exact"
	// SelectionFuzzy means a category tag appeared in the query.
	SelectionFuzzy SelectionMethod = "fuzzy"
	// SelectionInferred means the category was inferred from the resume.
	SelectionInferred SelectionMethod = "inferred"
	// SelectionDefault means the catalog default category was used.
	SelectionDefault SelectionMethod = "default"
)

// SelectedJob is the output of the select stage. BackupURL is empty when the
// resolved category lists a single URL; URLs beyond the second are reserved
// for retries and never surface here.
type SelectedJob struct {
	PrimaryURL       string          `json:"primary_url"`
	BackupURL        string          `json:"backup_url,omitempty"`
	ResolvedCategory string          `json:"resolved_category"`
	SelectionMethod  SelectionMethod `json:"selection_method"`
}

// JobPosting is the structured output of the extract stage. Skills holds
// hard/technical skills only (soft-skill stop terms filtered out), capped at
// MaxSkills; Responsibilities is capped at MaxResponsibilities.
type JobPosting struct {
	JobTitle         string   `json:"job_title"`
	Company          string   `json:"company"`
	Skills           []string `json:"skills"`
	Responsibilities []string `json:"responsibilities"`
	ExperienceLevel  string   `json:"experience_level"`
	JobURL           string   `json:"job_url"`
}
