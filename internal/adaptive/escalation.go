package adaptive

import (
	"fmt"
	"time"

	"github.com/Shreyas250406/StudySaathi/internal/models"
	"github.com/google/uuid"
)

// EscalationThreshold is the score below which a learner is flagged for
// teacher attention. Scores at or above it clear any existing flag; there
// is no hysteresis between the two sides.
const EscalationThreshold = 40

type EscalationAction int

const (
	EscalationNoOp EscalationAction = iota
	EscalationRaise
	EscalationClear
)

// EvaluateEscalation decides whether a learner's new score should raise a
// teacher-facing flag, clear one, or do nothing. Without a teacher there
// is no escalation tracking at all. The returned record is non-nil only
// for EscalationRaise.
func EvaluateEscalation(learnerID uuid.UUID, teacherID *uuid.UUID, score int, now time.Time) (EscalationAction, *models.Escalation) {
	if teacherID == nil {
		return EscalationNoOp, nil
	}

	if score < EscalationThreshold {
		return EscalationRaise, &models.Escalation{
			LearnerID:     learnerID,
			TeacherID:     *teacherID,
			ScoreSnapshot: score,
			Reason:        fmt.Sprintf("Learner needs attention: score dropped to %d", score),
			UpdatedAt:     now,
		}
	}
	return EscalationClear, nil
}
