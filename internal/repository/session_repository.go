package repository

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jiwoohan/record-analyzer/internal/model"
	"github.com/jiwoohan/record-analyzer/internal/report"
)

// Session is one live analysis: the editable projection of the evaluation
// result produced by a single successful LLM call. Sessions exist only for
// the in-memory lifetime of the process; stored reports are out of scope.
type Session struct {
	ID     uuid.UUID
	Editor *report.Editor
}

// SessionRepository keeps the live sessions keyed by id. All editor access
// goes through the repository's lock, which serializes the synchronous edit
// operations per the contract.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[uuid.UUID]*Session)}
}

// Create stores a fresh session around the received result and returns it.
func (r *SessionRepository) Create(result model.EvaluationResult) *Session {
	s := &Session{ID: uuid.New(), Editor: report.NewEditor(result)}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *SessionRepository) Find(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return s, nil
}

// Delete resets a session; deleting an unknown id is a no-op.
func (r *SessionRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Update applies one edit operation to the session's editor under the lock
// and reports whether the edit was accepted.
func (r *SessionRepository) Update(id uuid.UUID, apply func(*report.Editor) bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return false, model.ErrSessionNotFound
	}
	return apply(s.Editor), nil
}

// Snapshot returns the session's current edited result under the lock.
func (r *SessionRepository) Snapshot(id uuid.UUID) (model.EvaluationResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return model.EvaluationResult{}, model.ErrSessionNotFound
	}
	return s.Editor.Snapshot(), nil
}
