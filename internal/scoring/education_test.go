package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-match-agent/internal/types"
)

func TestEducationMatch_DefaultsToBachelor(t *testing.T) {
	posting := &types.JobPosting{ExperienceLevel: "Senior"}

	bachelor := []types.Credential{{Degree: "Bachelor of Science"}}
	associate := []types.Credential{{Degree: "Associate of Arts"}}

	assert.True(t, EducationMatch(bachelor, posting))
	assert.False(t, EducationMatch(associate, posting))
	assert.False(t, EducationMatch(nil, posting))
}

func TestEducationMatch_AbbreviatedDegrees(t *testing.T) {
	posting := &types.JobPosting{}

	assert.True(t, EducationMatch([]types.Credential{{Degree: "B.S. Computer Science"}}, posting))
	assert.True(t, EducationMatch([]types.Credential{{Degree: "M.S. in Statistics"}}, posting))
}

func TestEducationMatch_ExplicitMasterRequirement(t *testing.T) {
	posting := &types.JobPosting{
		Responsibilities: []string{"Master's degree in a quantitative field required"},
	}

	assert.True(t, EducationMatch([]types.Credential{{Degree: "Master of Science"}}, posting))
	assert.True(t, EducationMatch([]types.Credential{{Degree: "PhD in Physics"}}, posting))
	assert.False(t, EducationMatch([]types.Credential{{Degree: "Bachelor of Arts"}}, posting))
}

func TestEducationMatch_HigherDegreeSatisfiesLower(t *testing.T) {
	posting := &types.JobPosting{ExperienceLevel: "Bachelor's degree or equivalent"}

	assert.True(t, EducationMatch([]types.Credential{{Degree: "PhD in Computer Science"}}, posting))
}

func TestCredentialRank_Unknown(t *testing.T) {
	assert.Equal(t, rankNone, credentialRank("Certificate of Completion"))
}
