// Package selection resolves a job query and resume profile to a job
// category deterministically. No LLM or network calls happen here; repeated
// calls with identical inputs always return the identical selection.
package selection

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-match-agent/internal/catalog"
	"github.com/jonathan/job-match-agent/internal/types"
)

// DemoPrefix forces the default category regardless of resume content.
// Demo-prefixed queries are how scripted walkthroughs pin the outcome.
const DemoPrefix = "DEMO:"

// MissError indicates no category could be resolved, which only happens when
// the catalog lacks a usable default.
type MissError struct {
	Query string
}

func (e *MissError) Error() string {
	return fmt.Sprintf("no job category resolved for query %q and catalog has no default", e.Query)
}

// Select resolves a category using a fixed precedence order: demo prefix,
// exact key match, fuzzy tag match, resume inference, then the catalog
// default. Ties within fuzzy and inferred matching break by catalog
// declaration order.
func Select(query string, profile *types.ResumeProfile, cat *catalog.Catalog) (*types.SelectedJob, error) {
	query = strings.TrimSpace(query)

	if strings.HasPrefix(strings.ToUpper(query), DemoPrefix) {
		return fromCategory(cat.Default(), types.SelectionDefault), nil
	}

	if query != "" {
		if c, ok := cat.Lookup(query); ok && c.Key != catalog.DefaultKey {
			return fromCategory(c, types.SelectionExact), nil
		}

		if c := fuzzyMatch(query, cat); c != nil {
			return fromCategory(c, types.SelectionFuzzy), nil
		}
	}

	if c := inferFromResume(profile, cat); c != nil {
		return fromCategory(c, types.SelectionInferred), nil
	}

	def := cat.Default()
	if def == nil {
		return nil, &MissError{Query: query}
	}
	return fromCategory(def, types.SelectionDefault), nil
}

// fuzzyMatch returns the first catalog category (declaration order) with a
// tag appearing as a substring of the query.
func fuzzyMatch(query string, cat *catalog.Catalog) *catalog.Category {
	lowered := strings.ToLower(query)
	for i := range cat.Categories {
		c := &cat.Categories[i]
		if c.Key == catalog.DefaultKey {
			continue
		}
		for _, tag := range c.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" || tag == catalog.WildcardTag {
				continue
			}
			if strings.Contains(lowered, tag) {
				return c
			}
		}
	}
	return nil
}

// inferFromResume picks the category whose tags overlap the resume signal
// the most. Zero overlap everywhere means no inference.
func inferFromResume(profile *types.ResumeProfile, cat *catalog.Catalog) *catalog.Category {
	if profile == nil {
		return nil
	}

	joined := profileText(profile)
	tokens := make(map[string]bool)
	for _, tok := range Tokenize(joined) {
		tokens[tok] = true
	}

	var best *catalog.Category
	bestCount := 0
	for i := range cat.Categories {
		c := &cat.Categories[i]
		if c.Key == catalog.DefaultKey {
			continue
		}
		if count := tagOverlap(c.Tags, tokens, joined); count > bestCount {
			best = c
			bestCount = count
		}
	}
	return best
}

func fromCategory(c *catalog.Category, method types.SelectionMethod) *types.SelectedJob {
	selected := &types.SelectedJob{
		PrimaryURL:       c.URLs[0],
		ResolvedCategory: c.Key,
		SelectionMethod:  method,
	}
	if len(c.URLs) > 1 {
		selected.BackupURL = c.URLs[1]
	}
	return selected
}
