package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jiwoohan/record-analyzer/internal/model"
	"github.com/tidwall/gjson"
)

// requiredFields are checked for presence after parse. A response missing
// any of them is a structural failure, not merely a parse failure.
var requiredFields = []string{
	"scores",
	"tagline",
	"coreCompetency",
	"inquiryExcellentExamples",
	"inquiryImprovementExample",
}

// ParseEvaluation decodes one LLM response text into an EvaluationResult.
// The text must be exactly one JSON object with no leading or trailing
// prose; anything else is reported as model.ErrInvalidStructure.
func ParseEvaluation(text string) (*model.EvaluationResult, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) == 0 || trimmed[0] != '{' || !gjson.Valid(trimmed) {
		return nil, fmt.Errorf("%w: response is not a JSON object", model.ErrInvalidStructure)
	}

	for _, field := range requiredFields {
		if !gjson.Get(trimmed, field).Exists() {
			return nil, fmt.Errorf("%w: missing field %q", model.ErrInvalidStructure, field)
		}
	}

	var result model.EvaluationResult
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidStructure, err)
	}
	return &result, nil
}
