package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jiwoohan/record-analyzer/internal/rubric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestBuildSchemaRequiredSets(t *testing.T) {
	schema := BuildSchema()
	require.Equal(t, genai.TypeObject, schema.Type)

	assert.ElementsMatch(t, []string{
		"scores", "studentName", "tagline", "coreCompetency", "keyStrengths",
		"suggestions", "representativeActivities", "inquiryExcellentExamples",
		"inquiryImprovementExample",
	}, schema.Required)

	scores := schema.Properties["scores"]
	require.NotNil(t, scores)

	var want []string
	for _, key := range rubric.AllKeys() {
		want = append(want, string(key))
	}
	assert.Equal(t, want, scores.Required, "scores.required must stay in rubric order")
	assert.Len(t, scores.Properties, 20)
	for _, key := range want {
		item := scores.Properties[key]
		require.NotNil(t, item, "missing schema entry for %s", key)
		assert.Equal(t, []string{"score", "justification"}, item.Required)
		assert.Equal(t, genai.TypeInteger, item.Properties["score"].Type)
	}
}

func TestBuildSchemaExamples(t *testing.T) {
	schema := BuildSchema()

	excellent := schema.Properties["inquiryExcellentExamples"]
	require.Equal(t, genai.TypeArray, excellent.Type)
	assert.ElementsMatch(t, []string{"tag", "title", "description"}, excellent.Items.Required)

	improvement := schema.Properties["inquiryImprovementExample"]
	require.Equal(t, genai.TypeObject, improvement.Type)
	assert.ElementsMatch(t, []string{"tag", "title", "description"}, improvement.Required)
}

func TestBuildSchemaPrompt(t *testing.T) {
	prompt := BuildSchemaPrompt()

	for _, key := range rubric.AllKeys() {
		assert.Contains(t, prompt, `"`+string(key)+`"`, "schema prompt must name every rubric key")
		band := fmt.Sprintf("%q: {\"score\": <integer %d-%d>", string(key), rubric.MinScore, rubric.MaxScoreOf(key))
		assert.Contains(t, prompt, band, "score band for %s must match the rubric", key)
	}

	for _, field := range []string{
		"studentName", "tagline", "coreCompetency", "keyStrengths",
		"suggestions", "representativeActivities", "inquiryExcellentExamples",
		"inquiryImprovementExample",
	} {
		assert.Contains(t, prompt, `"`+field+`"`)
	}
	assert.Contains(t, prompt, `Every key listed under "scores" is required.`)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("학생부 본문")
	assert.True(t, strings.HasSuffix(prompt, "--- Student Report ---\n학생부 본문"))
	assert.Contains(t, prompt, "7-POINT ITEMS SCORING (Range: 3-7)")
	assert.Contains(t, prompt, "5-POINT ITEMS SCORING (Range: 3-5)")
	assert.Contains(t, prompt, "AT LEAST 200 KOREAN CHARACTERS")
}
