package model

// Request payloads for the HTTP surface. Schemas for the richer payloads
// live in validate.go.

type TextRequest struct {
	Text string `json:"text"`
}

type TranslateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

type AIReportRequest struct {
	Text        string `json:"text"`
	TranslateTo string `json:"translate_to,omitempty"`
}

type ScrapeRequest struct {
	URL      string `json:"url"`
	Snapshot bool   `json:"snapshot,omitempty"`
}

// AnalyzeJobRequest carries either a posting URL to scrape or the raw
// posting text directly.
type AnalyzeJobRequest struct {
	URL  string `json:"url,omitempty"`
	Text string `json:"text,omitempty"`
}
