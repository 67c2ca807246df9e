package adaptive

import (
	"context"
	"time"

	"github.com/Shreyas250406/StudySaathi/internal/models"
	"github.com/google/uuid"
)

// ScoreStore owns each learner's persisted proficiency score.
type ScoreStore interface {
	// GetScore returns ErrLearnerNotFound when the learner is absent.
	GetScore(ctx context.Context, learnerID uuid.UUID) (int, error)
	SetScore(ctx context.Context, learnerID uuid.UUID, score int) error
}

// QuestionFilter narrows a question lookup. Nil fields are unconstrained.
type QuestionFilter struct {
	Difficulty *models.Difficulty
	Grade      *int
	Language   *string
	ExcludeIDs []uuid.UUID
}

// QuestionStore is the read side of the question bank.
type QuestionStore interface {
	Find(ctx context.Context, f QuestionFilter) ([]models.Question, error)
	// MarkServed bumps serve counters; advisory, best-effort.
	MarkServed(ctx context.Context, ids []uuid.UUID) error
}

// HistoryStore persists which questions a learner has been served.
type HistoryStore interface {
	// RecentQuestionIDs returns at most limit ids, newest first.
	// No history is an empty slice, not an error.
	RecentQuestionIDs(ctx context.Context, learnerID uuid.UUID, limit int) ([]uuid.UUID, error)
	Append(ctx context.Context, learnerID, questionID uuid.UUID, at time.Time) error
}

// EscalationStore keeps at most one active record per (learner, teacher).
type EscalationStore interface {
	Upsert(ctx context.Context, rec models.Escalation) error
	// Delete is idempotent; deleting an absent record is not an error.
	Delete(ctx context.Context, learnerID, teacherID uuid.UUID) error
}
