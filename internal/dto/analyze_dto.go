package dto

import (
	"github.com/google/uuid"
	"github.com/jiwoohan/record-analyzer/internal/analysis"
	"github.com/jiwoohan/record-analyzer/internal/model"
)

type AnalyzeRequest struct {
	ReportText string `json:"reportText"`
}

type AnalyzeResponse struct {
	ID     uuid.UUID              `json:"id"`
	Result model.EvaluationResult `json:"result"`
}

type AggregatesResponse struct {
	Categories []analysis.CategoryAggregate `json:"categories"`
	Grand      analysis.GrandTotal          `json:"grand"`
	MainChart  []analysis.ChartPoint        `json:"mainChart"`
}

type ScoreEditRequest struct {
	Key   string `json:"key"`
	Score int    `json:"score"`
}

type TextEditRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type ElementEditRequest struct {
	Index int    `json:"index"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type EditResponse struct {
	Applied bool `json:"applied"`
}
