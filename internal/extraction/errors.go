package extraction

import "fmt"

// FetchError means every candidate URL for the selected category failed to
// yield usable page text.
type FetchError struct {
	URLs  []string
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch job posting from %d candidate URLs: %v", len(e.URLs), e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ParseError means the model response could not be interpreted as a job
// posting.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse job posting response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse job posting response: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
