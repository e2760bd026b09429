package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-match-agent/internal/catalog"
	"github.com/jonathan/job-match-agent/internal/llm"
	"github.com/jonathan/job-match-agent/internal/types"
)

type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

// stubFetcher maps URLs to canned page text or errors.
type stubFetcher struct {
	pages  map[string]string
	errs   map[string]error
	visits []string
}

func (f *stubFetcher) PageText(_ context.Context, url string) (string, error) {
	f.visits = append(f.visits, url)
	if err, ok := f.errs[url]; ok {
		return "", err
	}
	return f.pages[url], nil
}

const postingJSON = `{
	"job_title": "Senior Backend Engineer",
	"company": "Stripe",
	"skills": ["Go", "Kubernetes", "Communication", "go", "PostgreSQL"],
	"responsibilities": ["Build APIs", "Operate services", "a", "b", "c", "d", "e"],
	"experience_level": "Senior, 5+ years"
}`

func testStop(t *testing.T) catalog.StopTerms {
	t.Helper()
	stop, err := catalog.DefaultStopTerms()
	require.NoError(t, err)
	return stop
}

func TestExtract_PrimaryURL(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{
		"https://jobs.lever.co/a/1": "We are hiring a Senior Backend Engineer...",
	}}
	extractor := NewExtractor(&stubClient{response: postingJSON}, fetcher, testStop(t))

	posting, err := extractor.Extract(context.Background(), &types.SelectedJob{
		PrimaryURL: "https://jobs.lever.co/a/1",
		BackupURL:  "https://jobs.lever.co/b/2",
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", posting.JobTitle)
	assert.Equal(t, "https://jobs.lever.co/a/1", posting.JobURL)
	// soft skill and duplicate dropped
	assert.Equal(t, []string{"Go", "Kubernetes", "PostgreSQL"}, posting.Skills)
	assert.Len(t, posting.Responsibilities, types.MaxResponsibilities)
	assert.Equal(t, []string{"https://jobs.lever.co/a/1"}, fetcher.visits)
}

func TestExtract_FallsBackToBackupURL(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[string]string{"https://jobs.lever.co/b/2": "posting text"},
		errs:  map[string]error{"https://jobs.lever.co/a/1": errors.New("503")},
	}
	extractor := NewExtractor(&stubClient{response: postingJSON}, fetcher, testStop(t))

	posting, err := extractor.Extract(context.Background(), &types.SelectedJob{
		PrimaryURL: "https://jobs.lever.co/a/1",
		BackupURL:  "https://jobs.lever.co/b/2",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://jobs.lever.co/b/2", posting.JobURL)
	assert.Equal(t, []string{"https://jobs.lever.co/a/1", "https://jobs.lever.co/b/2"}, fetcher.visits)
}

func TestExtract_AllURLsFail(t *testing.T) {
	fetcher := &stubFetcher{errs: map[string]error{
		"https://jobs.lever.co/a/1": errors.New("timeout"),
		"https://jobs.lever.co/b/2": errors.New("404"),
	}}
	extractor := NewExtractor(&stubClient{response: postingJSON}, fetcher, testStop(t))

	_, err := extractor.Extract(context.Background(), &types.SelectedJob{
		PrimaryURL: "https://jobs.lever.co/a/1",
		BackupURL:  "https://jobs.lever.co/b/2",
	})
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Len(t, fetchErr.URLs, 2)
}

func TestExtract_EmptyPageTreatedAsFailure(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{
		"https://jobs.lever.co/a/1": "   ",
	}}
	extractor := NewExtractor(&stubClient{response: postingJSON}, fetcher, testStop(t))

	_, err := extractor.Extract(context.Background(), &types.SelectedJob{
		PrimaryURL: "https://jobs.lever.co/a/1",
	})
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestExtract_FallsBackToDefaultURL(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[string]string{"https://jobs.lever.co/vercel/xyz123": "default posting text"},
		errs: map[string]error{
			"https://jobs.lever.co/a/1": errors.New("timeout"),
			"https://jobs.lever.co/b/2": errors.New("404"),
		},
	}
	extractor := NewExtractor(&stubClient{response: postingJSON}, fetcher, testStop(t))
	extractor.DefaultURL = "https://jobs.lever.co/vercel/xyz123"

	posting, err := extractor.Extract(context.Background(), &types.SelectedJob{
		PrimaryURL: "https://jobs.lever.co/a/1",
		BackupURL:  "https://jobs.lever.co/b/2",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://jobs.lever.co/vercel/xyz123", posting.JobURL)
}

func TestExtract_InvalidModelResponse(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{
		"https://jobs.lever.co/a/1": "posting text",
	}}
	extractor := NewExtractor(&stubClient{response: "not json"}, fetcher, testStop(t))

	_, err := extractor.Extract(context.Background(), &types.SelectedJob{
		PrimaryURL: "https://jobs.lever.co/a/1",
	})
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
