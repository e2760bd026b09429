package parsing

import (
	"strings"

	"github.com/jonathan/job-match-agent/internal/types"
)

// NormalizeSkills lowercases, trims, deduplicates, and caps a skill list at
// types.MaxSkills. First occurrence wins on duplicates; order is preserved.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	normalized := make([]string, 0, len(skills))

	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		normalized = append(normalized, skill)
		if len(normalized) == types.MaxSkills {
			break
		}
	}
	return normalized
}
