package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const analyzeJobSchema = `{
  "type": "object",
  "properties": {
    "url": {"type": "string", "format": "uri", "minLength": 1},
    "text": {"type": "string", "minLength": 1}
  },
  "anyOf": [
    {"required": ["url"]},
    {"required": ["text"]}
  ],
  "additionalProperties": false
}`

const aiReportSchema = `{
  "type": "object",
  "properties": {
    "text": {"type": "string", "minLength": 3},
    "translate_to": {"type": "string", "pattern": "^[a-z]{2}$"}
  },
  "required": ["text"],
  "additionalProperties": false
}`

// ValidateAnalyzeJob checks that the payload names a URL or raw text.
func ValidateAnalyzeJob(req AnalyzeJobRequest) error {
	return validate(analyzeJobSchema, req)
}

// ValidateAIReport checks the combined-report payload, including the
// optional two-letter target language code.
func ValidateAIReport(req AIReportRequest) error {
	return validate(aiReportSchema, req)
}

func validate(schema string, doc interface{}) error {
	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
