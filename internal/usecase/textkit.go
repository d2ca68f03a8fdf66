package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"automation-api/internal/domain"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	sentenceEnd   = regexp.MustCompile(`(?:[.!?؟])\s+`)
	arabicScript  = regexp.MustCompile(`[\x{0600}-\x{06FF}]`)
)

// CleanText collapses whitespace and control-character runs to single spaces
// and trims the result.
func CleanText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Stats counts characters and words of the trimmed text.
func Stats(s string) domain.TextStats {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.TextStats{}
	}
	return domain.TextStats{
		Characters: len([]rune(s)),
		Words:      len(strings.Fields(s)),
	}
}

// SimpleSummary builds a deterministic summary from the first sentences of
// the text, truncating at a word boundary when the result would exceed
// maxChars. Used when the summarization model is not applicable.
func SimpleSummary(text string, maxSentences, maxChars int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if len(text) <= maxChars {
		return text
	}

	ends := sentenceEnd.FindAllStringIndex(text, maxSentences)
	summary := text
	if len(ends) >= maxSentences {
		summary = strings.TrimSpace(text[:ends[maxSentences-1][1]])
	}

	if len(summary) > maxChars {
		summary = truncate(summary, maxChars)
		if i := strings.LastIndex(summary, " "); i != -1 {
			summary = summary[:i]
		}
		summary += "..."
	}
	return summary
}

// MostlyEnglish reports whether at least threshold of the letters in the
// text are ASCII letters.
func MostlyEnglish(text string, threshold float64) bool {
	letters, english := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if r < 128 {
			english++
		}
	}
	if letters == 0 {
		return false
	}
	return float64(english)/float64(letters) >= threshold
}

// GuessLanguage is a fast, offline language guess: "fa" when Arabic-script
// runes are present, "en" when the text is pure ASCII, "unknown" otherwise.
func GuessLanguage(text string) string {
	if arabicScript.MatchString(text) {
		return "fa"
	}
	for _, r := range text {
		if r >= 128 {
			return "unknown"
		}
	}
	return "en"
}

// CleanName capitalizes each whitespace-separated part of a name.
func CleanName(line string) string {
	parts := strings.Fields(line)
	for i, p := range parts {
		r := []rune(strings.ToLower(p))
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
