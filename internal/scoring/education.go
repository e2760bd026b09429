package scoring

import (
	"strings"

	"github.com/jonathan/job-match-agent/internal/types"
)

// Degree levels, ordered. A posting that states no explicit requirement
// defaults to requiring a bachelor-level credential.
const (
	rankNone      = 0
	rankAssociate = 1
	rankBachelor  = 2
	rankMaster    = 3
	rankDoctorate = 4
)

// degreeKeywords maps degree-name fragments to their rank. Checked from
// highest rank down so "Master of Science" does not stop at "science".
var degreeKeywords = []struct {
	rank     int
	keywords []string
}{
	{rankDoctorate, []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{rankMaster, []string{"master", "m.s.", "msc", "m.sc", "mba", "m.a."}},
	{rankBachelor, []string{"bachelor", "b.s.", "bsc", "b.sc", "b.a.", "b.e.", "undergraduate degree"}},
	{rankAssociate, []string{"associate"}},
}

// credentialRank returns the rank of a single credential's degree string.
func credentialRank(degree string) int {
	lowered := strings.ToLower(degree)
	for _, level := range degreeKeywords {
		for _, keyword := range level.keywords {
			if strings.Contains(lowered, keyword) {
				return level.rank
			}
		}
	}
	return rankNone
}

// requiredRank scans the posting's experience level and responsibilities for
// an explicit degree requirement. Silence implies bachelor level.
func requiredRank(posting *types.JobPosting) int {
	text := strings.ToLower(posting.ExperienceLevel + " " + strings.Join(posting.Responsibilities, " "))
	for _, level := range degreeKeywords {
		for _, keyword := range level.keywords {
			if strings.Contains(text, keyword) {
				return level.rank
			}
		}
	}
	return rankBachelor
}

// EducationMatch reports whether any resume credential meets or exceeds the
// level the posting implies.
func EducationMatch(education []types.Credential, posting *types.JobPosting) bool {
	required := requiredRank(posting)
	for _, credential := range education {
		if credentialRank(credential.Degree) >= required {
			return true
		}
	}
	return false
}
