package repository

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"automation-api/internal/domain"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// ReportStore writes report files into a flat directory. Every file gets a
// fresh uuid, so concurrent requests never contend for the same path. Files
// are written once and never touched again.
type ReportStore struct {
	dir string
}

func NewReportStore(dir string) (*ReportStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ReportStore{dir: dir}, nil
}

func (s *ReportStore) newReport(format domain.ReportFormat) domain.Report {
	id := uuid.New()
	return domain.Report{
		ID:        id,
		Format:    format,
		Path:      filepath.Join(s.dir, fmt.Sprintf("report_%s.%s", id, format)),
		CreatedAt: time.Now(),
	}
}

func (s *ReportStore) SaveTXT(sum domain.ProcessSummary) (domain.Report, error) {
	r := s.newReport(domain.ReportTXT)

	body := fmt.Sprintf("Cleaned: %s\nCharacters: %s\nWords: %s\nJoke: %s - %s\n",
		sum.Cleaned,
		humanize.Comma(int64(sum.Characters)),
		humanize.Comma(int64(sum.Words)),
		sum.JokeSetup, sum.JokePunchline)

	if err := os.WriteFile(r.Path, []byte(body), 0o644); err != nil {
		return domain.Report{}, err
	}
	return r, nil
}

func (s *ReportStore) SaveJSON(sum domain.ProcessSummary) (domain.Report, error) {
	r := s.newReport(domain.ReportJSON)

	b, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return domain.Report{}, err
	}
	if err := os.WriteFile(r.Path, append(b, '\n'), 0o644); err != nil {
		return domain.Report{}, err
	}
	return r, nil
}

func (s *ReportStore) SaveCSV(sum domain.ProcessSummary) (domain.Report, error) {
	r := s.newReport(domain.ReportCSV)

	f, err := os.Create(r.Path)
	if err != nil {
		return domain.Report{}, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rows := [][]string{
		{"cleaned", "characters", "words", "joke_setup", "joke_punchline"},
		{sum.Cleaned, strconv.Itoa(sum.Characters), strconv.Itoa(sum.Words), sum.JokeSetup, sum.JokePunchline},
	}
	if err := w.WriteAll(rows); err != nil {
		return domain.Report{}, err
	}
	return r, f.Close()
}

// SaveScrapeCSV exports a scrape result with the fixed index/url/line
// schema, one row per extracted line.
func (s *ReportStore) SaveScrapeCSV(res domain.ScrapeResult) (domain.Report, error) {
	r := s.newReport(domain.ReportCSV)

	f, err := os.Create(r.Path)
	if err != nil {
		return domain.Report{}, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "url", "line"}); err != nil {
		return domain.Report{}, err
	}
	for i, line := range res.Lines {
		if err := w.Write([]string{strconv.Itoa(i), res.URL, line}); err != nil {
			return domain.Report{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return domain.Report{}, err
	}
	return r, f.Close()
}

// SavePDF persists a page snapshot captured by the browser scraper.
func (s *ReportStore) SavePDF(data []byte) (domain.Report, error) {
	r := s.newReport(domain.ReportPDF)
	if err := os.WriteFile(r.Path, data, 0o644); err != nil {
		return domain.Report{}, err
	}
	return r, nil
}
