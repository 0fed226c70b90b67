package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jiwoohan/record-analyzer/internal/model"
	"github.com/jiwoohan/record-analyzer/internal/report"
	"github.com/jiwoohan/record-analyzer/internal/repository"
	"github.com/jiwoohan/record-analyzer/internal/rubric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvaluator struct {
	calls  int
	result *model.EvaluationResult
	err    error
}

func (f *fakeEvaluator) Evaluate(ctx context.Context, reportText string) (*model.EvaluationResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func fixedResult() *model.EvaluationResult {
	scores := make(map[rubric.Key]model.ScoreItem)
	for _, key := range rubric.AllKeys() {
		scores[key] = model.ScoreItem{Score: rubric.MaxScoreOf(key), Justification: "근거"}
	}
	return &model.EvaluationResult{
		Scores:      scores,
		StudentName: "김하늘",
		Tagline:     "태그라인",
		RepresentativeActivities: []model.RepresentativeActivity{
			{Title: "활동 1", Description: "설명 1"},
			{Title: "활동 2", Description: "설명 2"},
		},
		InquiryExcellentExamples: []model.InquiryExample{
			{Tag: "수학", Title: "[우수 사례 1]", Description: "설명"},
		},
		InquiryImprovementExample: model.InquiryExample{Tag: "화학", Title: "[보완 필요 사례]", Description: "설명"},
	}
}

func newUsecase(eval *fakeEvaluator) *AnalysisUsecase {
	return NewAnalysisUsecase(repository.NewSessionRepository(), eval, nil)
}

func TestAnalyzeEmptyInputMakesNoCall(t *testing.T) {
	eval := &fakeEvaluator{result: fixedResult()}
	uc := newUsecase(eval)

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := uc.Analyze(context.Background(), text)
		assert.ErrorIs(t, err, model.ErrEmptyReport)
	}
	assert.Zero(t, eval.calls)
}

func TestAnalyzeFailureLeavesPriorSessionIntact(t *testing.T) {
	eval := &fakeEvaluator{result: fixedResult()}
	uc := newUsecase(eval)

	session, err := uc.Analyze(context.Background(), "학생부 내용")
	require.NoError(t, err)

	eval.err = errors.New("quota exceeded")
	_, err = uc.Analyze(context.Background(), "다른 학생부 내용")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrEmptyReport)

	// The earlier session is untouched by the failed attempt.
	result, err := uc.Result(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "김하늘", result.StudentName)
}

func TestAnalyzeEndToEndAllMaxima(t *testing.T) {
	uc := newUsecase(&fakeEvaluator{result: fixedResult()})

	session, err := uc.Analyze(context.Background(), "학생부 내용")
	require.NoError(t, err)

	aggs, grand, chart, err := uc.Aggregates(session.ID)
	require.NoError(t, err)
	require.Len(t, aggs, 3)
	for _, agg := range aggs {
		assert.InDelta(t, 100.0, agg.Average, 1e-9)
	}
	assert.Equal(t, 130, grand.TotalScore)
	assert.Equal(t, 130, grand.MaxScore)
	assert.InDelta(t, 100.0, grand.Average, 1e-9)
	assert.Len(t, chart, 3)
}

func TestEditFlowReflectedInAggregates(t *testing.T) {
	uc := newUsecase(&fakeEvaluator{result: fixedResult()})
	session, err := uc.Analyze(context.Background(), "학생부 내용")
	require.NoError(t, err)

	applied, err := uc.SetScore(session.ID, "A1_구체적_증명", 3)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = uc.SetScore(session.ID, "B1_칭찬_남발_배제", 6)
	require.NoError(t, err)
	assert.False(t, applied, "above the 5-point ceiling")

	applied, err = uc.SetTextField(session.ID, report.FieldTagline, "수정된 태그라인")
	require.NoError(t, err)
	assert.True(t, applied)

	_, grand, _, err := uc.Aggregates(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 126, grand.TotalScore)

	committed, err := uc.Commit(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "수정된 태그라인", committed.Tagline)
	assert.Equal(t, 3, committed.Scores["A1_구체적_증명"].Score)
}

func TestElementEdits(t *testing.T) {
	uc := newUsecase(&fakeEvaluator{result: fixedResult()})
	session, err := uc.Analyze(context.Background(), "학생부 내용")
	require.NoError(t, err)

	applied, err := uc.SetActivityField(session.ID, 1, report.FieldTitle, "새 활동명")
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = uc.SetExcellentExampleField(session.ID, 0, report.FieldTag, "물리학")
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = uc.SetImprovementExampleField(session.ID, report.FieldDescription, "수정된 설명")
	require.NoError(t, err)
	assert.True(t, applied)

	result, err := uc.Result(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "새 활동명", result.RepresentativeActivities[1].Title)
	assert.Equal(t, "활동 1", result.RepresentativeActivities[0].Title)
	assert.Equal(t, "물리학", result.InquiryExcellentExamples[0].Tag)
	assert.Equal(t, "수정된 설명", result.InquiryImprovementExample.Description)
}

func TestResetAndUnknownSession(t *testing.T) {
	uc := newUsecase(&fakeEvaluator{result: fixedResult()})
	session, err := uc.Analyze(context.Background(), "학생부 내용")
	require.NoError(t, err)

	uc.Reset(session.ID)
	_, err = uc.Result(session.ID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	_, err = uc.SetScore(uuid.New(), "A1_구체적_증명", 4)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}
