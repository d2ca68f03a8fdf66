package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScrapeResult holds the visible text extracted from one URL, split into
// non-empty lines in document order.
type ScrapeResult struct {
	URL   string   `json:"url"`
	Lines []string `json:"lines"`
}

// TextStats are the character/word counts of a cleaned text.
type TextStats struct {
	Characters int `json:"characters"`
	Words      int `json:"words"`
}

// Joke is one setup/punchline pair from the joke API.
type Joke struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
}

// Sentiment is the label/score returned by the sentiment model, plus a note
// explaining how the result was produced (model, empty input, unsupported
// language).
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Note  string  `json:"note"`
}

// Translation is the result of one translate call.
type Translation struct {
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Original   string `json:"original"`
	Translated string `json:"translated"`
}

// ProcessSummary is the payload of one text-processing request: the cleaned
// text, its stats and the best-effort joke fetched alongside it.
type ProcessSummary struct {
	Cleaned       string `json:"cleaned"`
	Characters    int    `json:"characters"`
	Words         int    `json:"words"`
	JokeSetup     string `json:"joke_setup"`
	JokePunchline string `json:"joke_punchline"`
}

// JobAnalysis is the structured view of one job posting: vocabulary matches,
// a generated summary and its translation, and the fit score.
type JobAnalysis struct {
	URL               string   `json:"url,omitempty"`
	Characters        int      `json:"characters"`
	Words             int      `json:"words"`
	Summary           string   `json:"summary"`
	SummaryTranslated string   `json:"summary_translated,omitempty"`
	Skills            []string `json:"skills"`
	Languages         []string `json:"languages"`
	TechStack         []string `json:"tech_stack"`
	FitScore          int      `json:"job_fit_score"`
}

// ReportFormat tags the serialization of a report file.
type ReportFormat string

const (
	ReportTXT  ReportFormat = "txt"
	ReportJSON ReportFormat = "json"
	ReportCSV  ReportFormat = "csv"
	ReportPDF  ReportFormat = "pdf"
)

// Report is one generated output file. Reports are written once and never
// updated or deleted by the service.
type Report struct {
	ID        uuid.UUID    `json:"id"`
	Format    ReportFormat `json:"format"`
	Path      string       `json:"path"`
	CreatedAt time.Time    `json:"created_at"`
}

// LogEntry is one record appended to the request logs after a completed
// request. Entries are append-only; there is no read path in the service.
type LogEntry struct {
	Time     time.Time `json:"time"`
	Endpoint string    `json:"endpoint"`
	Input    string    `json:"input"`
	Status   string    `json:"status"`
}

// InvalidInputError marks a request rejected before any external call.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string { return e.Msg }

// DependencyError wraps a failure of an external dependency (browser, model
// service, joke API) so handlers can map it to a 502 uniformly.
type DependencyError struct {
	Service string
	Err     error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }
