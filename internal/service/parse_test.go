package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jiwoohan/record-analyzer/internal/model"
	"github.com/jiwoohan/record-analyzer/internal/rubric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseDocument(t *testing.T) map[string]any {
	t.Helper()
	scores := make(map[string]any)
	for _, key := range rubric.AllKeys() {
		scores[string(key)] = map[string]any{"score": rubric.MaxScoreOf(key), "justification": "근거"}
	}
	example := map[string]any{"tag": "수학", "title": "[우수 사례 1]", "description": "설명"}
	return map[string]any{
		"scores":                   scores,
		"studentName":              "김하늘",
		"tagline":                  "태그라인",
		"coreCompetency":           "핵심 역량",
		"keyStrengths":             "주요 강점",
		"suggestions":              "제언",
		"representativeActivities": []any{map[string]any{"title": "활동", "description": "설명"}},
		"inquiryExcellentExamples": []any{example, example, example, example},
		"inquiryImprovementExample": map[string]any{
			"tag": "화학", "title": "[보완 필요 사례]", "description": "설명",
		},
	}
}

func marshal(t *testing.T, doc map[string]any) string {
	t.Helper()
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(b)
}

func TestParseEvaluationSuccess(t *testing.T) {
	result, err := ParseEvaluation(marshal(t, responseDocument(t)))
	require.NoError(t, err)

	assert.Equal(t, "김하늘", result.StudentName)
	assert.Len(t, result.Scores, 20)
	assert.Equal(t, 5, result.Scores["B1_칭찬_남발_배제"].Score)
	assert.Len(t, result.InquiryExcellentExamples, 4)
	assert.Equal(t, "[보완 필요 사례]", result.InquiryImprovementExample.Title)
}

func TestParseEvaluationTrimsWhitespace(t *testing.T) {
	_, err := ParseEvaluation("\n  " + marshal(t, responseDocument(t)) + "\n")
	assert.NoError(t, err)
}

func TestParseEvaluationMissingRequiredField(t *testing.T) {
	for _, field := range []string{"scores", "tagline", "coreCompetency", "inquiryExcellentExamples", "inquiryImprovementExample"} {
		doc := responseDocument(t)
		delete(doc, field)
		_, err := ParseEvaluation(marshal(t, doc))
		assert.ErrorIs(t, err, model.ErrInvalidStructure, "field %s", field)
	}
}

func TestParseEvaluationRejectsProse(t *testing.T) {
	valid := marshal(t, responseDocument(t))
	cases := map[string]string{
		"leading prose":  "Here is the evaluation:\n" + valid,
		"trailing prose": valid + "\nHope this helps!",
		"not json":       "the student did well",
		"empty":          "",
		"json array":     "[1,2,3]",
	}
	for name, text := range cases {
		_, err := ParseEvaluation(text)
		assert.ErrorIs(t, err, model.ErrInvalidStructure, name)
	}
}

func TestParseEvaluationErrorIsNotEmptyReport(t *testing.T) {
	_, err := ParseEvaluation("")
	assert.False(t, errors.Is(err, model.ErrEmptyReport))
}
