package usecase

import (
	"context"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"automation-api/internal/domain"
	"automation-api/pkg/pdftext"

	"go.uber.org/zap"
)

const (
	minProcessChars   = 3
	minSummarizeChars = 10
	minAnalyzeChars   = 50
	maxSummarizeInput = 4000
	englishThreshold  = 0.6
)

// Consumer-side interfaces for the processor's dependencies.

type BrowserScraper interface {
	PlainText(ctx context.Context, url string) (string, error)
	CapturePDF(ctx context.Context, url string) ([]byte, error)
}

type StaticScraper interface {
	ExtractText(ctx context.Context, url string) (string, error)
}

type NLPService interface {
	Summarize(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, targetLang string) (domain.Translation, error)
	Sentiment(ctx context.Context, text string) (domain.Sentiment, error)
}

type JokeSource interface {
	Random(ctx context.Context) (domain.Joke, error)
}

type ReportStore interface {
	SaveTXT(sum domain.ProcessSummary) (domain.Report, error)
	SaveJSON(sum domain.ProcessSummary) (domain.Report, error)
	SaveCSV(sum domain.ProcessSummary) (domain.Report, error)
	SaveScrapeCSV(res domain.ScrapeResult) (domain.Report, error)
	SavePDF(data []byte) (domain.Report, error)
}

type RequestLog interface {
	Append(e domain.LogEntry) error
}

// Processor wires the tools together. Each public method is one stateless
// request flow: compute, optionally persist, append to the request logs.
type Processor struct {
	log         *zap.Logger
	browser     BrowserScraper
	static      StaticScraper
	nlp         NLPService
	jokes       JokeSource
	reports     ReportStore
	requestLog  RequestLog
	analyzer    *Analyzer
	translateTo string
}

type Option func(*Processor)

func WithBrowserScraper(s BrowserScraper) Option { return func(p *Processor) { p.browser = s } }
func WithStaticScraper(s StaticScraper) Option   { return func(p *Processor) { p.static = s } }
func WithNLPService(n NLPService) Option         { return func(p *Processor) { p.nlp = n } }
func WithJokeSource(j JokeSource) Option         { return func(p *Processor) { p.jokes = j } }
func WithReportStore(r ReportStore) Option       { return func(p *Processor) { p.reports = r } }
func WithRequestLog(l RequestLog) Option         { return func(p *Processor) { p.requestLog = l } }
func WithAnalyzer(a *Analyzer) Option            { return func(p *Processor) { p.analyzer = a } }
func WithTranslateTo(lang string) Option         { return func(p *Processor) { p.translateTo = lang } }

func NewProcessor(log *zap.Logger, opts ...Option) *Processor {
	p := &Processor{log: log, translateTo: "fa"}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessResult is the outcome of the full text-processing pipeline.
type ProcessResult struct {
	domain.ProcessSummary
	ReportTXT  string `json:"report_txt"`
	ReportJSON string `json:"report_json"`
	ReportCSV  string `json:"report_csv"`
}

// ProcessText cleans the text, computes stats, fetches a joke best-effort,
// writes the three report formats and appends one record to the logs.
func (p *Processor) ProcessText(ctx context.Context, raw string) (ProcessResult, error) {
	return p.processText(ctx, "/process_text", raw)
}

func (p *Processor) processText(ctx context.Context, endpoint, raw string) (ProcessResult, error) {
	if len(strings.TrimSpace(raw)) < minProcessChars {
		return ProcessResult{}, &domain.InvalidInputError{Msg: "text is too short"}
	}

	cleaned := CleanText(raw)
	stats := Stats(cleaned)
	joke := p.bestEffortJoke(ctx)

	sum := domain.ProcessSummary{
		Cleaned:       cleaned,
		Characters:    stats.Characters,
		Words:         stats.Words,
		JokeSetup:     joke.Setup,
		JokePunchline: joke.Punchline,
	}

	txt, err := p.reports.SaveTXT(sum)
	if err != nil {
		return ProcessResult{}, err
	}
	jsn, err := p.reports.SaveJSON(sum)
	if err != nil {
		return ProcessResult{}, err
	}
	csvr, err := p.reports.SaveCSV(sum)
	if err != nil {
		return ProcessResult{}, err
	}

	if err := p.logRequest(endpoint, raw, "ok"); err != nil {
		return ProcessResult{}, err
	}

	return ProcessResult{
		ProcessSummary: sum,
		ReportTXT:      txt.Path,
		ReportJSON:     jsn.Path,
		ReportCSV:      csvr.Path,
	}, nil
}

// QuickProcess cleans the text, computes stats and fetches a joke without
// writing reports.
func (p *Processor) QuickProcess(ctx context.Context, raw string) (domain.ProcessSummary, error) {
	cleaned := CleanText(raw)
	stats := Stats(cleaned)
	joke := p.bestEffortJoke(ctx)

	if err := p.logRequest("/process", raw, "ok"); err != nil {
		return domain.ProcessSummary{}, err
	}
	return domain.ProcessSummary{
		Cleaned:       cleaned,
		Characters:    stats.Characters,
		Words:         stats.Words,
		JokeSetup:     joke.Setup,
		JokePunchline: joke.Punchline,
	}, nil
}

// AnalyzeOnly cleans the text and computes stats without persisting reports.
func (p *Processor) AnalyzeOnly(ctx context.Context, raw string) (domain.ProcessSummary, error) {
	cleaned := CleanText(raw)
	stats := Stats(cleaned)

	if err := p.logRequest("/analyze_only", raw, "ok"); err != nil {
		return domain.ProcessSummary{}, err
	}
	return domain.ProcessSummary{
		Cleaned:    cleaned,
		Characters: stats.Characters,
		Words:      stats.Words,
	}, nil
}

// ProcessUpload extracts text from an uploaded file (UTF-8 text or PDF,
// decided by extension) and runs it through the processing pipeline.
func (p *Processor) ProcessUpload(ctx context.Context, filename string, data []byte) (ProcessResult, error) {
	endpoint := "/upload_file"
	var text string

	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		endpoint = "/upload_pdf"
		extracted, err := pdftext.Extract(data)
		if err != nil {
			return ProcessResult{}, &domain.InvalidInputError{Msg: "could not read pdf: " + err.Error()}
		}
		text = extracted
	} else {
		if !utf8.Valid(data) {
			return ProcessResult{}, &domain.InvalidInputError{Msg: "file is not valid utf-8 text"}
		}
		text = string(data)
	}

	return p.processText(ctx, endpoint, text)
}

// Scrape loads the URL in the headless browser and returns the visible text
// lines. When the browser fails or yields too little text, the static
// scraper is tried once; there is no further recovery.
func (p *Processor) Scrape(ctx context.Context, url string) (domain.ScrapeResult, error) {
	text, err := p.extractText(ctx, url)
	if err != nil {
		p.bestEffortLog("/scrape", url, "error")
		return domain.ScrapeResult{}, err
	}

	res := domain.ScrapeResult{URL: url, Lines: splitLines(text)}
	if err := p.logRequest("/scrape", url, "ok"); err != nil {
		return domain.ScrapeResult{}, err
	}
	return res, nil
}

// ScrapeResultFiles references the files written by the CSV scrape variant.
type ScrapeResultFiles struct {
	domain.ScrapeResult
	ReportCSV string `json:"report_csv"`
	ReportPDF string `json:"report_pdf,omitempty"`
}

// ScrapeCSV scrapes the URL and exports the lines to a CSV report. With
// snapshot set, a PDF snapshot of the page is stored alongside it.
func (p *Processor) ScrapeCSV(ctx context.Context, url string, snapshot bool) (ScrapeResultFiles, error) {
	text, err := p.extractText(ctx, url)
	if err != nil {
		p.bestEffortLog("/scrape_csv", url, "error")
		return ScrapeResultFiles{}, err
	}

	res := domain.ScrapeResult{URL: url, Lines: splitLines(text)}
	out := ScrapeResultFiles{ScrapeResult: res}

	csvReport, err := p.reports.SaveScrapeCSV(res)
	if err != nil {
		return ScrapeResultFiles{}, err
	}
	out.ReportCSV = csvReport.Path

	if snapshot {
		pdfData, err := p.browser.CapturePDF(ctx, url)
		if err != nil {
			return ScrapeResultFiles{}, &domain.DependencyError{Service: "browser", Err: err}
		}
		pdfReport, err := p.reports.SavePDF(pdfData)
		if err != nil {
			return ScrapeResultFiles{}, err
		}
		out.ReportPDF = pdfReport.Path
	}

	if err := p.logRequest("/scrape_csv", url, "ok"); err != nil {
		return ScrapeResultFiles{}, err
	}
	return out, nil
}

func (p *Processor) extractText(ctx context.Context, url string) (string, error) {
	text, err := p.browser.PlainText(ctx, url)
	if err == nil && len(strings.TrimSpace(text)) >= minAnalyzeChars {
		return text, nil
	}
	if err != nil {
		p.log.Warn("browser scrape failed, falling back to static scraper",
			zap.String("url", url), zap.Error(err))
	}

	text, err = p.static.ExtractText(ctx, url)
	if err != nil {
		return "", &domain.DependencyError{Service: "scraper", Err: err}
	}
	return text, nil
}

// Summarize routes mostly-English text to the summarization model and
// everything else to the local sentence-prefix summary. Text shorter than
// 20 characters is returned unchanged.
func (p *Processor) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if len(text) < minSummarizeChars {
		return "", &domain.InvalidInputError{Msg: "text too short"}
	}

	summary, err := p.summarize(ctx, text)
	if err != nil {
		p.bestEffortLog("/summarize", text, "error")
		return "", err
	}
	if err := p.logRequest("/summarize", text, "ok"); err != nil {
		return "", err
	}
	return summary, nil
}

func (p *Processor) summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if len(text) < 20 {
		return text, nil
	}
	if len(text) > maxSummarizeInput {
		text = truncate(text, maxSummarizeInput)
	}

	if MostlyEnglish(text, englishThreshold) {
		summary, err := p.nlp.Summarize(ctx, text)
		if err != nil {
			return "", &domain.DependencyError{Service: "ai-service", Err: err}
		}
		return summary, nil
	}
	return SimpleSummary(text, 3, 400), nil
}

// Translate passes the text to the translation model. Empty text yields an
// empty result without an external call.
func (p *Processor) Translate(ctx context.Context, text, targetLang string) (domain.Translation, error) {
	text = strings.TrimSpace(text)
	if targetLang == "" {
		targetLang = "en"
	}
	if text == "" {
		return domain.Translation{TargetLang: targetLang}, nil
	}

	tr, err := p.nlp.Translate(ctx, text, targetLang)
	if err != nil {
		p.bestEffortLog("/translate", text, "error")
		return domain.Translation{}, &domain.DependencyError{Service: "ai-service", Err: err}
	}
	if err := p.logRequest("/translate", text, "ok"); err != nil {
		return domain.Translation{}, err
	}
	return tr, nil
}

// Sentiment runs the English sentiment model. Empty text gets a neutral
// result; non-English text is not analyzed since the model is English-only.
func (p *Processor) Sentiment(ctx context.Context, text string) (domain.Sentiment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Sentiment{Label: "NEUTRAL", Score: 0, Note: "Empty text."}, nil
	}
	if !MostlyEnglish(text, englishThreshold) {
		return domain.Sentiment{
			Label: "UNKNOWN",
			Score: 0,
			Note:  "Sentiment model is English-only. For non-English text, sentiment is not analyzed.",
		}, nil
	}

	sent, err := p.nlp.Sentiment(ctx, text)
	if err != nil {
		p.bestEffortLog("/sentiment", text, "error")
		return domain.Sentiment{}, &domain.DependencyError{Service: "ai-service", Err: err}
	}
	if err := p.logRequest("/sentiment", text, "ok"); err != nil {
		return domain.Sentiment{}, err
	}
	return sent, nil
}

// AnalyzeJob runs the full job-posting pipeline: extract the text (scraping
// when a URL is given), match the reference vocabularies, summarize, and
// translate the summary to the configured language.
func (p *Processor) AnalyzeJob(ctx context.Context, url, rawText string) (domain.JobAnalysis, error) {
	text := rawText
	if url != "" {
		extracted, err := p.extractText(ctx, url)
		if err != nil {
			p.bestEffortLog("/analyze_job", url, "error")
			return domain.JobAnalysis{}, err
		}
		text = extracted
	}

	cleaned := CleanText(text)
	if len(cleaned) < minAnalyzeChars {
		return domain.JobAnalysis{}, &domain.InvalidInputError{Msg: "could not extract enough text"}
	}

	analysis := p.analyzer.Analyze(cleaned)
	analysis.URL = url
	stats := Stats(cleaned)
	analysis.Characters = stats.Characters
	analysis.Words = stats.Words

	summary, err := p.summarize(ctx, cleaned)
	if err != nil {
		p.bestEffortLog("/analyze_job", cleaned, "error")
		return domain.JobAnalysis{}, err
	}
	analysis.Summary = summary

	// The translated summary is an enrichment; a translation failure does
	// not fail the analysis.
	if tr, err := p.nlp.Translate(ctx, summary, p.translateTo); err == nil {
		analysis.SummaryTranslated = tr.Translated
	} else {
		p.log.Warn("summary translation failed", zap.Error(err))
	}

	input := url
	if input == "" {
		input = cleaned
	}
	if err := p.logRequest("/analyze_job", input, "ok"); err != nil {
		return domain.JobAnalysis{}, err
	}
	return analysis, nil
}

// AIReportResult is the combined clean/stats/summary/joke/translation
// response with report file references.
type AIReportResult struct {
	Cleaned       string            `json:"cleaned"`
	Characters    int               `json:"characters"`
	Words         int               `json:"words"`
	Summary       string            `json:"summary"`
	JokeSetup     string            `json:"joke_setup"`
	JokePunchline string            `json:"joke_punchline"`
	Translated    string            `json:"translated,omitempty"`
	Reports       map[string]string `json:"reports"`
}

// AIReport runs the whole toolchain over one text.
func (p *Processor) AIReport(ctx context.Context, raw, translateTo string) (AIReportResult, error) {
	if len(strings.TrimSpace(raw)) < minProcessChars {
		return AIReportResult{}, &domain.InvalidInputError{Msg: "text is too short"}
	}

	cleaned := CleanText(raw)
	stats := Stats(cleaned)

	summary, err := p.summarize(ctx, cleaned)
	if err != nil {
		p.bestEffortLog("/ai_report", raw, "error")
		return AIReportResult{}, err
	}

	joke := p.bestEffortJoke(ctx)

	var translated string
	if translateTo != "" {
		tr, err := p.nlp.Translate(ctx, cleaned, translateTo)
		if err != nil {
			p.bestEffortLog("/ai_report", raw, "error")
			return AIReportResult{}, &domain.DependencyError{Service: "ai-service", Err: err}
		}
		translated = tr.Translated
	}

	sum := domain.ProcessSummary{
		Cleaned:       cleaned,
		Characters:    stats.Characters,
		Words:         stats.Words,
		JokeSetup:     joke.Setup,
		JokePunchline: joke.Punchline,
	}
	txt, err := p.reports.SaveTXT(sum)
	if err != nil {
		return AIReportResult{}, err
	}
	jsn, err := p.reports.SaveJSON(sum)
	if err != nil {
		return AIReportResult{}, err
	}
	csvr, err := p.reports.SaveCSV(sum)
	if err != nil {
		return AIReportResult{}, err
	}

	if err := p.logRequest("/ai_report", raw, "ok"); err != nil {
		return AIReportResult{}, err
	}

	return AIReportResult{
		Cleaned:       cleaned,
		Characters:    stats.Characters,
		Words:         stats.Words,
		Summary:       summary,
		JokeSetup:     joke.Setup,
		JokePunchline: joke.Punchline,
		Translated:    translated,
		Reports: map[string]string{
			"txt":  txt.Path,
			"json": jsn.Path,
			"csv":  csvr.Path,
		},
	}, nil
}

// Joke fetches one joke, surfacing API failures to the caller.
func (p *Processor) Joke(ctx context.Context) (domain.Joke, error) {
	joke, err := p.jokes.Random(ctx)
	if err != nil {
		p.bestEffortLog("/joke", "", "error")
		return domain.Joke{}, &domain.DependencyError{Service: "joke-api", Err: err}
	}
	if err := p.logRequest("/joke", "", "ok"); err != nil {
		return domain.Joke{}, err
	}
	return joke, nil
}

func (p *Processor) bestEffortJoke(ctx context.Context) domain.Joke {
	joke, err := p.jokes.Random(ctx)
	if err != nil {
		p.log.Warn("joke api unavailable", zap.Error(err))
		return domain.Joke{}
	}
	return joke
}

func (p *Processor) logRequest(endpoint, input, status string) error {
	return p.requestLog.Append(domain.LogEntry{
		Time:     time.Now(),
		Endpoint: endpoint,
		Input:    truncate(input, 200),
		Status:   status,
	})
}

// bestEffortLog records a failed request; the request is already failing,
// so a log-write error only gets a process-log warning.
func (p *Processor) bestEffortLog(endpoint, input, status string) {
	if err := p.logRequest(endpoint, input, status); err != nil {
		p.log.Warn("request log append failed", zap.Error(err))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	for !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
