package models

import (
	"time"

	"github.com/google/uuid"
)

// Escalation flags a learner for teacher attention. At most one active
// record exists per (learner, teacher) pair; raising again replaces the
// previous record.
type Escalation struct {
	LearnerID     uuid.UUID `json:"learner_id"`
	TeacherID     uuid.UUID `json:"teacher_id"`
	ScoreSnapshot int       `json:"score_snapshot"`
	Reason        string    `json:"reason"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HistoryEntry records that a question was served to a learner.
// Append-only; only the most recent entries are ever queried.
type HistoryEntry struct {
	LearnerID  uuid.UUID `json:"learner_id"`
	QuestionID uuid.UUID `json:"question_id"`
	ServedAt   time.Time `json:"served_at"`
}
