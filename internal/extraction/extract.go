// Package extraction turns a selected job URL into a structured JobPosting.
// Page text comes from an injected PageFetcher; structure comes from the
// LLM; skills are filtered against the soft-skill stop terms.
package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jonathan/job-match-agent/internal/catalog"
	"github.com/jonathan/job-match-agent/internal/llm"
	"github.com/jonathan/job-match-agent/internal/prompts"
	"github.com/jonathan/job-match-agent/internal/types"
)

// maxPageChars caps the page text sent to the model.
const maxPageChars = 12000

// PageFetcher retrieves the readable text of a job posting page.
type PageFetcher interface {
	PageText(ctx context.Context, url string) (string, error)
}

// Extractor converts a SelectedJob into a JobPosting.
type Extractor struct {
	client  llm.Client
	fetcher PageFetcher
	stop    catalog.StopTerms

	// DefaultURL, when set, is the catalog default category's primary URL,
	// tried as a last resort after the selection's own URLs fail.
	DefaultURL string
}

// NewExtractor creates a job posting extractor.
func NewExtractor(client llm.Client, fetcher PageFetcher, stop catalog.StopTerms) *Extractor {
	return &Extractor{client: client, fetcher: fetcher, stop: stop}
}

// Extract fetches the selected job's page, trying the primary URL, then the
// backup, then the catalog default, and structures the first page that
// serves with the LLM. The posting's JobURL records which URL actually
// served.
func (e *Extractor) Extract(ctx context.Context, selected *types.SelectedJob) (*types.JobPosting, error) {
	urls := []string{selected.PrimaryURL}
	if selected.BackupURL != "" {
		urls = append(urls, selected.BackupURL)
	}
	if e.DefaultURL != "" && e.DefaultURL != selected.PrimaryURL && e.DefaultURL != selected.BackupURL {
		urls = append(urls, e.DefaultURL)
	}

	pageText, servedURL, err := e.fetchFirst(ctx, urls)
	if err != nil {
		return nil, err
	}

	posting, err := e.structure(ctx, pageText)
	if err != nil {
		return nil, err
	}
	posting.JobURL = servedURL
	return posting, nil
}

func (e *Extractor) fetchFirst(ctx context.Context, urls []string) (string, string, error) {
	var lastErr error
	for _, url := range urls {
		text, err := e.fetcher.PageText(ctx, url)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(text) == "" {
			lastErr = errors.New("page yielded no text")
			continue
		}
		return text, url, nil
	}
	return "", "", &FetchError{URLs: urls, Cause: lastErr}
}

func (e *Extractor) structure(ctx context.Context, pageText string) (*types.JobPosting, error) {
	if len(pageText) > maxPageChars {
		pageText = pageText[:maxPageChars]
	}

	template, err := prompts.Get("extraction.json", "extract-job")
	if err != nil {
		return nil, &ParseError{Message: "failed to load prompt", Cause: err}
	}
	prompt := prompts.Format(template, map[string]string{"PageText": pageText})

	response, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ParseError{Message: "extraction request failed", Cause: err}
	}

	var posting types.JobPosting
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &posting); err != nil {
		return nil, &ParseError{Message: "response is not valid JSON", Cause: err}
	}

	posting.Skills = e.filterSkills(posting.Skills)
	if posting.Responsibilities == nil {
		posting.Responsibilities = []string{}
	}
	if len(posting.Responsibilities) > types.MaxResponsibilities {
		posting.Responsibilities = posting.Responsibilities[:types.MaxResponsibilities]
	}
	return &posting, nil
}

// filterSkills drops soft-skill stop terms and blanks, dedupes
// case-insensitively, and caps the list at types.MaxSkills.
func (e *Extractor) filterSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	filtered := make([]string, 0, len(skills))

	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		key := strings.ToLower(skill)
		if skill == "" || seen[key] || e.stop.Contains(skill) {
			continue
		}
		seen[key] = true
		filtered = append(filtered, skill)
		if len(filtered) == types.MaxSkills {
			break
		}
	}
	return filtered
}
