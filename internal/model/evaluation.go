package model

import (
	"github.com/jiwoohan/record-analyzer/internal/rubric"
)

// ScoreItem is one scored criterion instance as returned by the LLM.
type ScoreItem struct {
	Score         int    `json:"score"`
	Justification string `json:"justification"`
}

// RepresentativeActivity is one of the student's representative inquiry
// activities extracted from the record.
type RepresentativeActivity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// InquiryExample is one excellent or improvement-needed inquiry case.
type InquiryExample struct {
	Tag         string `json:"tag"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// EvaluationResult is the full evaluation record produced by one analysis
// call. It is immutable once received; edits go through report.Editor,
// which replaces it copy-on-write.
type EvaluationResult struct {
	Scores                    map[rubric.Key]ScoreItem `json:"scores"`
	StudentName               string                   `json:"studentName"`
	Tagline                   string                   `json:"tagline"`
	CoreCompetency            string                   `json:"coreCompetency"`
	KeyStrengths              string                   `json:"keyStrengths"`
	Suggestions               string                   `json:"suggestions"`
	RepresentativeActivities  []RepresentativeActivity `json:"representativeActivities"`
	InquiryExcellentExamples  []InquiryExample         `json:"inquiryExcellentExamples"`
	InquiryImprovementExample InquiryExample           `json:"inquiryImprovementExample"`
}
