package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jiwoohan/record-analyzer/internal/model"
	"github.com/jiwoohan/record-analyzer/internal/report"
	"github.com/jiwoohan/record-analyzer/internal/rubric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() model.EvaluationResult {
	scores := make(map[rubric.Key]model.ScoreItem)
	for _, key := range rubric.AllKeys() {
		scores[key] = model.ScoreItem{Score: 4, Justification: "근거"}
	}
	return model.EvaluationResult{Scores: scores, StudentName: "김하늘"}
}

func TestSessionLifecycle(t *testing.T) {
	repo := NewSessionRepository()

	session := repo.Create(testResult())
	assert.NotEqual(t, uuid.Nil, session.ID)

	found, err := repo.Find(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session, found)

	snap, err := repo.Snapshot(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "김하늘", snap.StudentName)

	repo.Delete(session.ID)
	_, err = repo.Find(session.ID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	repo.Delete(session.ID) // idempotent
}

func TestSessionUpdate(t *testing.T) {
	repo := NewSessionRepository()
	session := repo.Create(testResult())

	applied, err := repo.Update(session.ID, func(e *report.Editor) bool {
		return e.SetScore("A1_구체적_증명", 6)
	})
	require.NoError(t, err)
	assert.True(t, applied)

	snap, err := repo.Snapshot(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, snap.Scores["A1_구체적_증명"].Score)

	_, err = repo.Update(uuid.New(), func(e *report.Editor) bool { return true })
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestSessionsAreIndependent(t *testing.T) {
	repo := NewSessionRepository()
	a := repo.Create(testResult())
	b := repo.Create(testResult())

	_, err := repo.Update(a.ID, func(e *report.Editor) bool {
		return e.SetTextField(report.FieldStudentName, "이수민")
	})
	require.NoError(t, err)

	snapB, err := repo.Snapshot(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "김하늘", snapB.StudentName)
}
