package parsing

import "fmt"

// APICallError represents a failure calling the LLM provider.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume parsing API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resume parsing API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents a failure to interpret the model response as a
// structured resume profile.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse resume response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse resume response: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a structurally valid response that violates a
// profile constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid resume profile: %s: %s", e.Field, e.Message)
}
