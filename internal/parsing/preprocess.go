package parsing

import "strings"

// MaxResumeChars is the maximum resume length sent to the model. Longer
// input is truncated before prompting.
const MaxResumeChars = 8000

// bulletGlyphs maps common resume bullet characters to a plain dash.
var bulletGlyphs = []string{"•", "◦", "▪", "▸", "●", "–", "—", "∙", "·"}

// Preprocess normalizes raw resume text before it is sent to the model:
// bullet glyphs become dashes, non-ASCII characters are dropped, runs of
// spaces collapse, and the result is truncated to MaxResumeChars.
func Preprocess(text string) string {
	for _, glyph := range bulletGlyphs {
		text = strings.ReplaceAll(text, glyph, "-")
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	text = b.String()

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	text = strings.TrimSpace(strings.Join(lines, "\n"))

	if len(text) > MaxResumeChars {
		text = text[:MaxResumeChars]
	}
	return text
}
