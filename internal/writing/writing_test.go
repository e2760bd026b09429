package writing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-match-agent/internal/llm"
	"github.com/jonathan/job-match-agent/internal/types"
)

type stubClient struct {
	response string
	err      error
	prompts  []string
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func testInputs() (*types.ResumeProfile, *types.JobPosting) {
	profile := &types.ResumeProfile{
		Name:         "Jane Doe",
		CurrentTitle: "Backend Engineer",
		Skills:       []string{"go", "postgresql"},
	}
	posting := &types.JobPosting{
		JobTitle: "Senior Backend Engineer",
		Company:  "Stripe",
		Skills:   []string{"Go", "Kubernetes"},
	}
	return profile, posting
}

func TestSummary_ClampsSentences(t *testing.T) {
	stub := &stubClient{response: "First. Second. Third. Fourth. Fifth."}
	gen := NewGenerator(stub)

	profile, posting := testInputs()
	summary, err := gen.Summary(context.Background(), profile, posting, 79)
	require.NoError(t, err)

	assert.Equal(t, "First. Second. Third.", summary)
	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Jane Doe")
	assert.Contains(t, stub.prompts[0], "79/100")
}

func TestCoverLetter_TruncatesAtHardCap(t *testing.T) {
	words := strings.Repeat("word ", CoverLetterHardCap+50)
	gen := NewGenerator(&stubClient{response: words})

	profile, posting := testInputs()
	letter, err := gen.CoverLetter(context.Background(), profile, posting, 79)
	require.NoError(t, err)

	assert.Equal(t, CoverLetterHardCap, CountWords(letter))
}

func TestRecruiterMessage_ClampsSentences(t *testing.T) {
	gen := NewGenerator(&stubClient{response: "One. Two. Three."})

	profile, posting := testInputs()
	message, err := gen.RecruiterMessage(context.Background(), profile, posting, 79)
	require.NoError(t, err)

	assert.Equal(t, "One. Two.", message)
}

func TestGenerator_PropagatesErrors(t *testing.T) {
	gen := NewGenerator(&stubClient{err: errors.New("model unavailable")})

	profile, posting := testInputs()
	_, err := gen.Summary(context.Background(), profile, posting, 50)
	require.Error(t, err)
}

func TestExperienceScore(t *testing.T) {
	judge := NewJudge(&stubClient{response: `{"experience_score": 8, "reasoning": "strong background"}`})

	profile, posting := testInputs()
	score, err := judge.ExperienceScore(context.Background(), profile, posting)
	require.NoError(t, err)
	assert.Equal(t, 8, score)
}

func TestExperienceScore_ClampsOutOfRange(t *testing.T) {
	judge := NewJudge(&stubClient{response: `{"experience_score": 14}`})

	profile, posting := testInputs()
	score, err := judge.ExperienceScore(context.Background(), profile, posting)
	require.NoError(t, err)
	assert.Equal(t, 10, score)
}

func TestExperienceScore_InvalidJSON(t *testing.T) {
	judge := NewJudge(&stubClient{response: "definitely an 8"})

	profile, posting := testInputs()
	_, err := judge.ExperienceScore(context.Background(), profile, posting)
	require.Error(t, err)
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords("   "))
	assert.Equal(t, 4, CountWords("one two  three\nfour"))
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("First one. Second one! Is this third? trailing fragment")
	assert.Equal(t, []string{"First one.", "Second one!", "Is this third?", "trailing fragment"}, sentences)
}

func TestClampSentences_UnderLimitUnchanged(t *testing.T) {
	assert.Equal(t, "One. Two.", ClampSentences("One. Two.", 3))
}
