package service

import (
	"fmt"
	"strings"

	"github.com/jiwoohan/record-analyzer/internal/rubric"
	"google.golang.org/genai"
)

// EvaluationPrompt is the fixed instruction block sent with every analysis
// request. It encodes the two score bands (3-7 for categories A/C, 3-5 for
// category B), the minimum-justification-length rule and the JSON-only
// output directive.
const EvaluationPrompt = `
You are an expert university admissions officer specializing in evaluating student records for inquiry competency. Your evaluation must be thorough, insightful, and meticulously detailed, aiming for a fair and comprehensive assessment. Your primary goal is to identify and properly credit the student's strengths, while also providing constructive feedback. For a well-prepared student, the overall evaluation should result in an average score of approximately 85-90 out of 100.

**GUIDING SCORING PHILOSOPHY: Differentiated Maximum Scores.**
- **Criteria are divided into two types based on their maximum possible score: 7-point items and 5-point items.**
- Your scoring must adhere to the maximum score for each item.

**7-POINT ITEMS SCORING (Range: 3-7):**
- These items assess deep inquiry skills (Categories A and C).
- **3:** Weak or insufficient evidence.
- **4:** Meets basic expectations.
- **5:** Good performance.
- **6:** Excellent and High-Achieving.
- **7:** Truly Outstanding and Differentiated. Reserved for exceptional, rare instances.

**5-POINT ITEMS SCORING (Range: 3-5):**
- These items assess self-direction and foundational attitudes (Category B).
- **3:** Meets basic expectations.
- **4:** Good performance, showing solid effort.
- **5:** Excellent performance that clearly demonstrates the desired trait.
- **Do not award a score higher than 5 for these items.**

**VERY IMPORTANT SCORING GUIDELINE:** You must be meticulous. Scrutinize each criterion individually. A strong applicant's report will naturally contain a spectrum of performance levels. A credible evaluation will show a mix of scores reflecting the different maximums.

**MANDATORY JUSTIFICATION DETAIL:** For EACH score, you MUST provide a meticulous justification of AT LEAST 200 KOREAN CHARACTERS (approximately 4-5 full sentences). This justification must be analytical, drawing specific examples and direct evidence from the provided student record to support your scoring decision. Your reasoning must be transparent and compelling.

Do not be overly critical, but be precise. Justify every score with specific evidence. Your output must be a valid JSON object following the specified schema and nothing else. Do not add any text before or after the JSON object.
`

// BuildPrompt composes the instruction block with the raw record text.
func BuildPrompt(reportText string) string {
	return EvaluationPrompt + "\n\n--- Student Report ---\n" + reportText
}

// BuildSchemaPrompt renders the expected JSON shape as prompt text, keyed
// off the rubric so the full key set travels with the request even on
// backends that have no structured-output schema parameter.
func BuildSchemaPrompt() string {
	keys := rubric.AllKeys()

	var b strings.Builder
	b.WriteString("Return your answer STRICTLY in JSON format with this schema:\n{\n  \"scores\": {\n")
	for i, key := range keys {
		fmt.Fprintf(&b, "    %q: {\"score\": <integer %d-%d>, \"justification\": \"<at least 200 Korean characters citing specific evidence from the report>\"}",
			string(key), rubric.MinScore, rubric.MaxScoreOf(key))
		if i < len(keys)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(`  },
  "studentName": "<the student's name, or '학생' if not found>",
  "tagline": "<short Korean tagline summarizing the student as a learner>",
  "coreCompetency": "<Korean paragraph for the '[핵심 역량]' section, 음슴체>",
  "keyStrengths": "<Korean paragraph for the '[주요 강점]' section, 음슴체>",
  "suggestions": "<Korean paragraph for the '[보완점 및 제언]' section, 음슴체>",
  "representativeActivities": [{"title": "<Korean>", "description": "<Korean>"}, <exactly 2 items>],
  "inquiryExcellentExamples": [{"tag": "<subject or activity context>", "title": "<starts with '[우수 사례 N]'>", "description": "<Korean, 음슴체>"}, <exactly 4 items>],
  "inquiryImprovementExample": {"tag": "<subject or activity context>", "title": "<starts with '[보완 필요 사례]'>", "description": "<Korean, 음슴체>"}
}
Every key listed under "scores" is required. Do not add any text before or after the JSON object.`)
	return b.String()
}

// BuildSchema derives the structured-output schema from the rubric so the
// request contract can never drift from the rubric definition. Pure function
// of the rubric snapshot; callers compute it once and treat it as immutable.
func BuildSchema() *genai.Schema {
	scoreItemSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"score": {
				Type:        genai.TypeInteger,
				Description: "The evaluation score for the item, following the specified scoring rubric (3-7 for 7-point items, 3-5 for 5-point items).",
			},
			"justification": {
				Type:        genai.TypeString,
				Description: "Meticulous, evidence-based justification for the score, citing specific examples from the report. MUST BE AT LEAST 200 KOREAN CHARACTERS. This is for a professional evaluator's review. (Korean)",
			},
		},
		Required: []string{"score", "justification"},
	}

	scoreProperties := make(map[string]*genai.Schema)
	scoreKeys := make([]string, 0, len(rubric.AllKeys()))
	for _, key := range rubric.AllKeys() {
		scoreProperties[string(key)] = scoreItemSchema
		scoreKeys = append(scoreKeys, string(key))
	}

	inquiryExampleProperties := map[string]*genai.Schema{
		"tag":         {Type: genai.TypeString, Description: "The relevant school subject or activity context (e.g., '2학년 확률과 통계', '자율활동'). (Korean)"},
		"title":       {Type: genai.TypeString, Description: "A concise, impactful title for the example. For excellent cases, start with '[우수 사례 N]'. For improvement cases, start with '[보완 필요 사례]'. (Korean)"},
		"description": {Type: genai.TypeString, Description: "활동에 대한 상세한 설명. 해당 활동이 왜 우수한 혹은 보완이 필요한 탐구 사례인지 설명함. 우수 사례의 경우, 높은 점수를 받은 근거를 서술하되, 평가 항목 코드를 직접적으로 언급하지 말 것. '학생은 ~' 과 같은 서술을 피하고, 간결하고 객관적인 문체(음슴체)로 작성할 것. (Korean)"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"scores": {
				Type:       genai.TypeObject,
				Properties: scoreProperties,
				Required:   scoreKeys,
			},
			"studentName": {
				Type:        genai.TypeString,
				Description: "The name of the student found in the report. If not found, use '학생'.",
			},
			"tagline": {
				Type:        genai.TypeString,
				Description: "A short, catchy tagline summarizing the student's core identity as a learner. e.g., '융합적 사고와 실천적 탐구를 통해 스스로 지식을 창출하는 인재'. (Korean)",
			},
			"coreCompetency": {
				Type:        genai.TypeString,
				Description: "A detailed paragraph for the '[핵심 역량]' section. Summarize the student's core inquiry competency. Write in a concise, declarative style (음슴체). Do not start with the student's name. (Korean)",
			},
			"keyStrengths": {
				Type:        genai.TypeString,
				Description: "A detailed paragraph for the '[주요 강점]' section. Describe the student's key strengths with specific examples. This corresponds to high-scoring items. Write in a concise, declarative style (음슴체). (Korean)",
			},
			"suggestions": {
				Type:        genai.TypeString,
				Description: "A detailed paragraph for the '[보완점 및 제언]' section. Provide constructive feedback. This corresponds to low-scoring items. Write in a concise, declarative style (음슴체). (Korean)",
			},
			"representativeActivities": {
				Type:        genai.TypeArray,
				Description: "Extract two most impressive and representative inquiry activities from the report. (Korean)",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString, Description: "Provide the activity title in a concise, declarative style (음슴체). (Korean)"},
						"description": {Type: genai.TypeString, Description: "Provide the activity description in a concise, declarative style (음슴체). (Korean)"},
					},
					Required: []string{"title", "description"},
				},
			},
			"inquiryExcellentExamples": {
				Type:        genai.TypeArray,
				Description: "Extract exactly 4 of the most impressive 'Excellent Cases' of inquiry from the report, based on the highest-scoring items. These examples must showcase the student's inquiry competency. (Korean)",
				Items: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: inquiryExampleProperties,
					Required:   []string{"tag", "title", "description"},
				},
			},
			"inquiryImprovementExample": {
				Type:        genai.TypeObject,
				Description: "Identify one key area for improvement in inquiry skills, based on lower-scoring items. Frame it constructively as a 'Case Needing Improvement'. (Korean)",
				Properties:  inquiryExampleProperties,
				Required:    []string{"tag", "title", "description"},
			},
		},
		Required: []string{
			"scores", "studentName", "tagline", "coreCompetency", "keyStrengths",
			"suggestions", "representativeActivities", "inquiryExcellentExamples",
			"inquiryImprovementExample",
		},
	}
}
