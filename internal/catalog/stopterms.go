package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// StopTerms is the set of soft-skill terms filtered out of extracted job
// skills and out of missing-skill sets. Membership checks are
// case-insensitive.
type StopTerms struct {
	terms map[string]bool
}

// LoadStopTerms reads a stop-term table from a JSON file (an array of
// strings).
func LoadStopTerms(path string) (StopTerms, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StopTerms{}, fmt.Errorf("failed to read stop-term file %s: %w", path, err)
	}
	return parseStopTerms(data)
}

// DefaultStopTerms returns the embedded stop-term table.
func DefaultStopTerms() (StopTerms, error) {
	data, err := assets.ReadFile("stop_terms.json")
	if err != nil {
		return StopTerms{}, fmt.Errorf("failed to read embedded stop terms: %w", err)
	}
	return parseStopTerms(data)
}

func parseStopTerms(data []byte) (StopTerms, error) {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return StopTerms{}, fmt.Errorf("failed to parse stop-term JSON: %w", err)
	}

	terms := make(map[string]bool, len(raw))
	for _, term := range raw {
		normalized := strings.ToLower(strings.TrimSpace(term))
		if normalized != "" {
			terms[normalized] = true
		}
	}
	return StopTerms{terms: terms}, nil
}

// Contains reports whether term is a known soft-skill stop term.
func (s StopTerms) Contains(term string) bool {
	return s.terms[strings.ToLower(strings.TrimSpace(term))]
}

// Len returns the number of stop terms.
func (s StopTerms) Len() int {
	return len(s.terms)
}
