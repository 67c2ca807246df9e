package adaptive

import (
	"context"
	"time"

	"github.com/Shreyas250406/StudySaathi/internal/models"
	"github.com/google/uuid"
)

// fakeQuestionStore serves Find from an in-memory slice and records every
// filter it was asked for, so tests can assert fallback tier ordering.
type fakeQuestionStore struct {
	questions []models.Question
	filters   []QuestionFilter
	findErr   error
	served    []uuid.UUID
	markErr   error
}

func (f *fakeQuestionStore) Find(ctx context.Context, filter QuestionFilter) ([]models.Question, error) {
	f.filters = append(f.filters, filter)
	if f.findErr != nil {
		return nil, f.findErr
	}

	excluded := make(map[uuid.UUID]struct{}, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	var out []models.Question
	for _, q := range f.questions {
		if filter.Difficulty != nil && q.Difficulty != *filter.Difficulty {
			continue
		}
		if filter.Grade != nil && q.Grade != *filter.Grade {
			continue
		}
		if filter.Language != nil && q.Language != *filter.Language {
			continue
		}
		if _, skip := excluded[q.ID]; skip {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuestionStore) MarkServed(ctx context.Context, ids []uuid.UUID) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.served = append(f.served, ids...)
	return nil
}

type fakeScoreStore struct {
	scores map[uuid.UUID]int
	setErr error
}

func (f *fakeScoreStore) GetScore(ctx context.Context, learnerID uuid.UUID) (int, error) {
	score, ok := f.scores[learnerID]
	if !ok {
		return 0, ErrLearnerNotFound
	}
	return score, nil
}

func (f *fakeScoreStore) SetScore(ctx context.Context, learnerID uuid.UUID, score int) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.scores[learnerID] = score
	return nil
}

type fakeHistoryStore struct {
	entries   map[uuid.UUID][]uuid.UUID // newest first
	recentErr error
	appendErr error
}

func newFakeHistoryStore() *fakeHistoryStore {
	return &fakeHistoryStore{entries: make(map[uuid.UUID][]uuid.UUID)}
}

func (f *fakeHistoryStore) RecentQuestionIDs(ctx context.Context, learnerID uuid.UUID, limit int) ([]uuid.UUID, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	ids := f.entries[learnerID]
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (f *fakeHistoryStore) Append(ctx context.Context, learnerID, questionID uuid.UUID, at time.Time) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries[learnerID] = append([]uuid.UUID{questionID}, f.entries[learnerID]...)
	return nil
}

type fakeEscalationStore struct {
	records   map[[2]uuid.UUID]models.Escalation
	upsertErr error
	deleteErr error
}

func newFakeEscalationStore() *fakeEscalationStore {
	return &fakeEscalationStore{records: make(map[[2]uuid.UUID]models.Escalation)}
}

func (f *fakeEscalationStore) Upsert(ctx context.Context, rec models.Escalation) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.records[[2]uuid.UUID{rec.LearnerID, rec.TeacherID}] = rec
	return nil
}

func (f *fakeEscalationStore) Delete(ctx context.Context, learnerID, teacherID uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.records, [2]uuid.UUID{learnerID, teacherID})
	return nil
}

// makeQuestion builds a pool question with a fresh id.
func makeQuestion(difficulty models.Difficulty, grade int, language string) models.Question {
	return models.Question{
		ID:         uuid.New(),
		Difficulty: difficulty,
		Grade:      grade,
		Language:   language,
		Prompt:     "prompt",
		Options:    []string{"A", "B", "C", "D"},
		Answer:     "A",
	}
}

// makePool builds n questions per difficulty for one (grade, language).
func makePool(n, grade int, language string) []models.Question {
	var pool []models.Question
	for _, d := range models.AllDifficulties {
		for i := 0; i < n; i++ {
			pool = append(pool, makeQuestion(d, grade, language))
		}
	}
	return pool
}
