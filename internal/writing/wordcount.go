// Package writing produces the generated text fields of a match report and
// the judged experience score. All prose comes from the LLM; this package
// only prompts, parses, and enforces length bounds.
package writing

import "strings"

// CountWords returns the number of whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// SplitSentences splits text on sentence-ending punctuation. Trailing
// whitespace-only fragments are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// ClampSentences truncates text to at most max sentences.
func ClampSentences(text string, max int) string {
	sentences := SplitSentences(text)
	if len(sentences) <= max {
		return strings.TrimSpace(text)
	}
	return strings.Join(sentences[:max], " ")
}

// TruncateWords truncates text to at most max words.
func TruncateWords(text string, max int) string {
	words := strings.Fields(text)
	if len(words) <= max {
		return strings.TrimSpace(text)
	}
	return strings.Join(words[:max], " ")
}
