package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAnalyzeJob(t *testing.T) {
	assert.NoError(t, ValidateAnalyzeJob(AnalyzeJobRequest{URL: "https://example.com/job"}))
	assert.NoError(t, ValidateAnalyzeJob(AnalyzeJobRequest{Text: "a job posting"}))
	assert.NoError(t, ValidateAnalyzeJob(AnalyzeJobRequest{URL: "https://example.com", Text: "both"}))

	assert.Error(t, ValidateAnalyzeJob(AnalyzeJobRequest{}))
}

func TestValidateAIReport(t *testing.T) {
	assert.NoError(t, ValidateAIReport(AIReportRequest{Text: "some text to process"}))
	assert.NoError(t, ValidateAIReport(AIReportRequest{Text: "some text", TranslateTo: "fa"}))

	assert.Error(t, ValidateAIReport(AIReportRequest{Text: "ab"}))
	assert.Error(t, ValidateAIReport(AIReportRequest{Text: "some text", TranslateTo: "farsi"}))
	assert.Error(t, ValidateAIReport(AIReportRequest{}))
}
