package repository

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"testing"

	"automation-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSummary() domain.ProcessSummary {
	return domain.ProcessSummary{
		Cleaned:       "hello world",
		Characters:    11,
		Words:         2,
		JokeSetup:     "setup",
		JokePunchline: "punchline",
	}
}

func TestSaveTXTWritesWholeFile(t *testing.T) {
	store, err := NewReportStore(t.TempDir())
	require.NoError(t, err)

	r, err := store.SaveTXT(testSummary())
	require.NoError(t, err)
	assert.Equal(t, domain.ReportTXT, r.Format)

	b, err := os.ReadFile(r.Path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Cleaned: hello world")
	assert.Contains(t, string(b), "Characters: 11")
	assert.Contains(t, string(b), "Joke: setup - punchline")
}

func TestSaveTwiceSameContentDistinctIdentifiers(t *testing.T) {
	store, err := NewReportStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.SaveJSON(testSummary())
	require.NoError(t, err)
	second, err := store.SaveJSON(testSummary())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Path, second.Path)

	b1, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	b2, err := os.ReadFile(second.Path)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func TestSaveJSONRoundTrip(t *testing.T) {
	store, err := NewReportStore(t.TempDir())
	require.NoError(t, err)

	r, err := store.SaveJSON(testSummary())
	require.NoError(t, err)

	b, err := os.ReadFile(r.Path)
	require.NoError(t, err)

	var got domain.ProcessSummary
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, testSummary(), got)
}

func TestSaveScrapeCSVRoundTrip(t *testing.T) {
	store, err := NewReportStore(t.TempDir())
	require.NoError(t, err)

	res := domain.ScrapeResult{
		URL:   "https://example.com/job",
		Lines: []string{"first line", "second, with comma", "third \"quoted\""},
	}
	r, err := store.SaveScrapeCSV(res)
	require.NoError(t, err)

	f, err := os.Open(r.Path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, len(res.Lines)+1)
	assert.Equal(t, []string{"index", "url", "line"}, rows[0])
	for i, line := range res.Lines {
		assert.Equal(t, strconv.Itoa(i), rows[i+1][0])
		assert.Equal(t, res.URL, rows[i+1][1])
		assert.Equal(t, line, rows[i+1][2])
	}
}

func TestSavePDF(t *testing.T) {
	store, err := NewReportStore(t.TempDir())
	require.NoError(t, err)

	data := []byte("%PDF-1.4 fake")
	r, err := store.SavePDF(data)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportPDF, r.Format)

	b, err := os.ReadFile(r.Path)
	require.NoError(t, err)
	assert.Equal(t, data, b)
}
