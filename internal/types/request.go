package types

import "github.com/go-playground/validator/v10"

// MatchRequest is the HTTP request body for a pipeline run. JobQuery is
// optional; an empty query forces category inference from the resume.
type MatchRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=1"`
	JobQuery   string `json:"job_query,omitempty" validate:"max=200"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
