package usecase

import (
	"testing"

	"automation-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVocabulary() config.Vocabulary {
	return config.Vocabulary{
		Skills:       []string{"python", "docker", "aws", "machine learning"},
		Technologies: []string{"aws", "docker", "postgres"},
		Languages:    []string{"english", "german"},
	}
}

func TestAnalyzeFindsKnownTerms(t *testing.T) {
	a := NewAnalyzer(testVocabulary())

	res := a.Analyze("We need a Python backend engineer with Docker and AWS experience")

	assert.Equal(t, []string{"aws", "docker", "python"}, res.Skills)
	assert.Equal(t, []string{"aws", "docker"}, res.TechStack)
	assert.Empty(t, res.Languages)
	assert.Greater(t, res.FitScore, 0)
}

func TestAnalyzeDisjointTextIsEmptyWithZeroScore(t *testing.T) {
	a := NewAnalyzer(testVocabulary())

	res := a.Analyze("nothing here matches the reference lists at all")

	assert.Empty(t, res.Skills)
	assert.Empty(t, res.TechStack)
	assert.Empty(t, res.Languages)
	assert.Equal(t, 0, res.FitScore)
}

func TestDefaultVocabularyAvoidsShortTermFalsePositives(t *testing.T) {
	cfg, err := config.Load("does-not-exist.yaml")
	require.NoError(t, err)
	a := NewAnalyzer(cfg.Vocabulary)

	res := a.Analyze("We are going to recategorize the algorithm next sprint")

	assert.Empty(t, res.Skills)
	assert.Empty(t, res.TechStack)
	assert.Equal(t, 0, res.FitScore)
}

func TestAnalyzeMatchesMultiWordTermsAndLanguages(t *testing.T) {
	a := NewAnalyzer(testVocabulary())

	res := a.Analyze("Machine Learning role, English and German required, Postgres a plus")

	assert.Contains(t, res.Skills, "machine learning")
	assert.Contains(t, res.TechStack, "postgres")
	assert.Equal(t, []string{"english", "german"}, res.Languages)
}

func TestFitScoreIsBounded(t *testing.T) {
	a := NewAnalyzer(testVocabulary())

	res := a.Analyze("python docker aws machine learning postgres english german")
	require.NotEmpty(t, res.Skills)
	assert.LessOrEqual(t, res.FitScore, 95)
	assert.GreaterOrEqual(t, res.FitScore, 40)
}

func TestAnalyzeDeduplicatesRepeats(t *testing.T) {
	a := NewAnalyzer(testVocabulary())

	res := a.Analyze("docker docker DOCKER Docker")

	assert.Equal(t, []string{"docker"}, res.Skills)
	assert.Equal(t, []string{"docker"}, res.TechStack)
}
