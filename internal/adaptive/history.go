package adaptive

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HistoryWindow is how many recently served questions are excluded from
// the next selection. Best-effort repetition avoidance only; long-horizon
// non-repetition is not guaranteed.
const HistoryWindow = 15

// HistoryTracker reduces immediate question repetition by tracking the
// most recently served question ids per learner.
type HistoryTracker struct {
	store HistoryStore
}

func NewHistoryTracker(store HistoryStore) *HistoryTracker {
	return &HistoryTracker{store: store}
}

// ExclusionSet returns the ids of the learner's last HistoryWindow served
// questions. A learner with no history gets an empty set.
func (t *HistoryTracker) ExclusionSet(ctx context.Context, learnerID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	ids, err := t.store.RecentQuestionIDs(ctx, learnerID, HistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("recent question ids: %w", err)
	}

	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// Record appends one history entry per served question. Returns the first
// append error; earlier appends are not rolled back, since history is
// advisory and a partial append merely degrades variety.
func (t *HistoryTracker) Record(ctx context.Context, learnerID uuid.UUID, questionIDs []uuid.UUID, asOf time.Time) error {
	for _, qid := range questionIDs {
		if err := t.store.Append(ctx, learnerID, qid, asOf); err != nil {
			return fmt.Errorf("append history for question %s: %w", qid, err)
		}
	}
	return nil
}
