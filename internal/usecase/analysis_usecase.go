package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jiwoohan/record-analyzer/internal/analysis"
	"github.com/jiwoohan/record-analyzer/internal/export"
	"github.com/jiwoohan/record-analyzer/internal/model"
	"github.com/jiwoohan/record-analyzer/internal/report"
	"github.com/jiwoohan/record-analyzer/internal/repository"
	"github.com/jiwoohan/record-analyzer/internal/rubric"
	"github.com/jiwoohan/record-analyzer/internal/service"
)

// AnalysisUsecase orchestrates the evaluation pipeline: validate input, one
// evaluator call, session bookkeeping, edits, aggregation and export.
type AnalysisUsecase struct {
	sessions  *repository.SessionRepository
	evaluator service.Evaluator
	exporter  *export.PDFExporter
}

func NewAnalysisUsecase(sessions *repository.SessionRepository, evaluator service.Evaluator, exporter *export.PDFExporter) *AnalysisUsecase {
	return &AnalysisUsecase{sessions: sessions, evaluator: evaluator, exporter: exporter}
}

// Analyze runs one evaluation and opens a session for the result. Empty or
// whitespace-only text is rejected before any outbound call; a failed call
// never disturbs existing sessions.
func (uc *AnalysisUsecase) Analyze(ctx context.Context, reportText string) (*repository.Session, error) {
	if strings.TrimSpace(reportText) == "" {
		return nil, model.ErrEmptyReport
	}
	result, err := uc.evaluator.Evaluate(ctx, reportText)
	if err != nil {
		return nil, err
	}
	return uc.sessions.Create(*result), nil
}

// Result returns the session's current (possibly edited) evaluation result.
func (uc *AnalysisUsecase) Result(id uuid.UUID) (model.EvaluationResult, error) {
	return uc.sessions.Snapshot(id)
}

// Aggregates derives the category aggregates, grand totals and chart series
// from the session's current result.
func (uc *AnalysisUsecase) Aggregates(id uuid.UUID) ([]analysis.CategoryAggregate, analysis.GrandTotal, []analysis.ChartPoint, error) {
	result, err := uc.sessions.Snapshot(id)
	if err != nil {
		return nil, analysis.GrandTotal{}, nil, err
	}
	aggs, grand := analysis.Aggregate(result.Scores)
	return aggs, grand, analysis.MainChartSeries(aggs), nil
}

// SetScore applies a bounded score edit. A rejected edit is a no-op, not an
// error; the returned flag tells the caller which happened.
func (uc *AnalysisUsecase) SetScore(id uuid.UUID, key rubric.Key, score int) (bool, error) {
	return uc.sessions.Update(id, func(e *report.Editor) bool {
		return e.SetScore(key, score)
	})
}

func (uc *AnalysisUsecase) SetTextField(id uuid.UUID, field report.TextField, value string) (bool, error) {
	return uc.sessions.Update(id, func(e *report.Editor) bool {
		return e.SetTextField(field, value)
	})
}

func (uc *AnalysisUsecase) SetActivityField(id uuid.UUID, index int, field report.ExampleField, value string) (bool, error) {
	return uc.sessions.Update(id, func(e *report.Editor) bool {
		return e.SetActivityField(index, field, value)
	})
}

func (uc *AnalysisUsecase) SetExcellentExampleField(id uuid.UUID, index int, field report.ExampleField, value string) (bool, error) {
	return uc.sessions.Update(id, func(e *report.Editor) bool {
		return e.SetExcellentExampleField(index, field, value)
	})
}

func (uc *AnalysisUsecase) SetImprovementExampleField(id uuid.UUID, field report.ExampleField, value string) (bool, error) {
	return uc.sessions.Update(id, func(e *report.Editor) bool {
		return e.SetImprovementExampleField(field, value)
	})
}

// Commit returns the current edited snapshot. No server round-trip, no
// diffing against the original.
func (uc *AnalysisUsecase) Commit(id uuid.UUID) (model.EvaluationResult, error) {
	return uc.sessions.Snapshot(id)
}

// Reset discards the session so a new analysis starts clean.
func (uc *AnalysisUsecase) Reset(id uuid.UUID) {
	uc.sessions.Delete(id)
}

// ExportPDF renders the session's current dashboard data to a PDF.
func (uc *AnalysisUsecase) ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	result, err := uc.sessions.Snapshot(id)
	if err != nil {
		return nil, err
	}
	aggs, grand := analysis.Aggregate(result.Scores)
	return uc.exporter.Export(ctx, result, aggs, grand)
}
