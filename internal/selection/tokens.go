package selection

import (
	"strings"

	"github.com/jonathan/job-match-agent/internal/types"
)

// Tokenize lowercases text and splits it into tokens. Letters, digits, and
// the symbols '+' and '#' are kept so skills like "c++" and "c#" survive.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		case r == '+' || r == '#':
			return false
		default:
			return true
		}
	})
}

// profileText joins the resume fields that carry role signal: current title,
// skills, and work-history role titles.
func profileText(profile *types.ResumeProfile) string {
	parts := make([]string, 0, 2+len(profile.WorkHistory))
	parts = append(parts, profile.CurrentTitle)
	parts = append(parts, strings.Join(profile.Skills, " "))
	for _, role := range profile.WorkHistory {
		parts = append(parts, role.Role)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// tagOverlap counts how many of a category's tags occur in the profile.
// Single-word tags are matched against the token set; multi-word tags are
// matched as substrings of the joined profile text.
func tagOverlap(tags []string, tokens map[string]bool, joined string) int {
	count := 0
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if strings.Contains(tag, " ") {
			if strings.Contains(joined, tag) {
				count++
			}
		} else if tokens[tag] {
			count++
		}
	}
	return count
}
