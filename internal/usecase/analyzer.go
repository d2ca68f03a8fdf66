package usecase

import (
	"sort"
	"strings"

	"automation-api/internal/config"
	"automation-api/internal/domain"
)

// Analyzer matches job-posting text against the static reference
// vocabularies. It holds no mutable state; the vocabulary is loaded once at
// startup and shared across requests.
type Analyzer struct {
	vocab config.Vocabulary
}

func NewAnalyzer(vocab config.Vocabulary) *Analyzer {
	return &Analyzer{vocab: vocab}
}

// Analyze scans the text for known skills, technologies and spoken
// languages. Matching is case-insensitive substring matching; results are
// lower-cased, de-duplicated and sorted.
func (a *Analyzer) Analyze(text string) domain.JobAnalysis {
	lower := strings.ToLower(text)

	skills := matchTerms(lower, a.vocab.Skills)
	tech := matchTerms(lower, a.vocab.Technologies)
	langs := matchTerms(lower, a.vocab.Languages)

	return domain.JobAnalysis{
		Skills:    skills,
		TechStack: tech,
		Languages: langs,
		FitScore:  fitScore(len(skills) + len(tech)),
	}
}

func matchTerms(lower string, terms []string) []string {
	seen := map[string]bool{}
	var found []string
	for _, term := range terms {
		t := strings.ToLower(term)
		if seen[t] {
			continue
		}
		if strings.Contains(lower, t) {
			seen[t] = true
			found = append(found, t)
		}
	}
	sort.Strings(found)
	return found
}

// fitScore maps the number of matched skill/tech terms onto a bounded
// score. No matches means zero; otherwise a 40-point base plus 7 per match,
// capped at 95. The weighting is policy, not contract.
func fitScore(matches int) int {
	if matches == 0 {
		return 0
	}
	score := 40 + matches*7
	if score > 95 {
		score = 95
	}
	return score
}
