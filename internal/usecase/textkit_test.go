package usecase

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "hello world", CleanText("  hello \t\n world  "))
	assert.Equal(t, "a b c", CleanText("a\r\nb\tc"))
	assert.Equal(t, "", CleanText(" \n\t "))
}

func TestStats(t *testing.T) {
	stats := Stats("hello world")
	assert.Equal(t, 11, stats.Characters)
	assert.Equal(t, 2, stats.Words)

	empty := Stats("   ")
	assert.Equal(t, 0, empty.Characters)
	assert.Equal(t, 0, empty.Words)
}

func TestSimpleSummaryShortTextUnchanged(t *testing.T) {
	text := "A short text."
	assert.Equal(t, text, SimpleSummary(text, 3, 400))
}

func TestSimpleSummaryTruncatesAtWordBoundary(t *testing.T) {
	text := strings.Repeat("word ", 200)
	got := SimpleSummary(text, 3, 100)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), 103)
	assert.NotContains(t, strings.TrimSuffix(got, "..."), "wor ")
}

func TestSimpleSummaryKeepsLeadingSentences(t *testing.T) {
	text := "First sentence here. Second sentence here. Third sentence here. " +
		strings.Repeat("Fourth sentence filler text to push the total length over the limit. ", 10)
	got := SimpleSummary(text, 3, 400)

	assert.Contains(t, got, "First sentence here.")
	assert.NotContains(t, got, "Fourth sentence")
}

func TestSimpleSummaryKeepsMultiByteTextValid(t *testing.T) {
	text := strings.Repeat("€", 200)
	got := SimpleSummary(text, 3, 400)
	assert.True(t, utf8.ValidString(got))

	persian := strings.Repeat("خلاصه", 200)
	got = SimpleSummary(persian, 3, 400)
	assert.True(t, utf8.ValidString(got))
}

func TestMostlyEnglish(t *testing.T) {
	assert.True(t, MostlyEnglish("We need a backend engineer", 0.6))
	assert.False(t, MostlyEnglish("متن فارسی بدون کلمات انگلیسی", 0.6))
	assert.False(t, MostlyEnglish("12345 !!!", 0.6))
}

func TestGuessLanguage(t *testing.T) {
	assert.Equal(t, "fa", GuessLanguage("سلام دنیا"))
	assert.Equal(t, "en", GuessLanguage("hello world"))
	assert.Equal(t, "unknown", GuessLanguage("héllo wörld"))
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", CleanName("  ada   LOVELACE "))
	assert.Equal(t, "", CleanName("   "))
}
