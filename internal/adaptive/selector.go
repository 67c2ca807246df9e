package adaptive

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Shreyas250406/StudySaathi/internal/models"
	"github.com/google/uuid"
)

// Selector draws questions satisfying a difficulty mix, avoiding recently
// seen ids and relaxing filters tier by tier when the pool runs thin.
type Selector struct {
	store QuestionStore

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector builds a selector around the question store. rng may be nil,
// in which case a time-seeded source is used; tests inject a fixed seed.
func NewSelector(store QuestionStore, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{store: store, rng: rng}
}

// Select fulfills the mix one difficulty at a time. For each difficulty it
// queries strictly first, then relaxes filters in a fixed order: drop the
// exclusion set, drop the grade filter, drop the language filter, and as a
// last resort draw from the whole pool irrespective of difficulty. A tier
// is only attempted when the previous one produced fewer candidates than
// requested. Partial fulfillment is success; only an empty aggregate
// result is ErrNoQuestionsAvailable.
func (s *Selector) Select(ctx context.Context, mix models.DifficultyMix, grade int, language string, exclusions map[uuid.UUID]struct{}) ([]models.Question, error) {
	var selected []models.Question
	picked := make(map[uuid.UUID]struct{})

	for _, difficulty := range models.AllDifficulties {
		count := mix[difficulty]
		if count <= 0 {
			continue
		}

		candidates, err := s.candidates(ctx, difficulty, grade, language, exclusions, picked, count)
		if err != nil {
			return nil, err
		}

		s.shuffle(candidates)
		if len(candidates) > count {
			candidates = candidates[:count]
		}

		for _, q := range candidates {
			picked[q.ID] = struct{}{}
			selected = append(selected, q)
		}
	}

	if len(selected) == 0 {
		return nil, ErrNoQuestionsAvailable
	}
	return selected, nil
}

// candidates walks the fallback tiers for one difficulty and returns the
// first candidate set large enough, or the largest one seen.
func (s *Selector) candidates(ctx context.Context, difficulty models.Difficulty, grade int, language string, exclusions, picked map[uuid.UUID]struct{}, count int) ([]models.Question, error) {
	d := difficulty
	g := grade
	l := language

	tiers := []struct {
		name   string
		filter QuestionFilter
	}{
		{"strict", QuestionFilter{Difficulty: &d, Grade: &g, Language: &l, ExcludeIDs: setToSlice(exclusions)}},
		{"no-exclusions", QuestionFilter{Difficulty: &d, Grade: &g, Language: &l}},
		{"no-grade", QuestionFilter{Difficulty: &d, Language: &l}},
		{"no-language", QuestionFilter{Difficulty: &d}},
		{"any", QuestionFilter{}},
	}

	var best []models.Question
	for _, tier := range tiers {
		found, err := s.store.Find(ctx, tier.filter)
		if err != nil {
			return nil, fmt.Errorf("find %s questions (%s): %w", difficulty, tier.name, err)
		}

		// Never hand out a question twice within one request, even from
		// the relaxed tiers.
		candidates := found[:0:0]
		for _, q := range found {
			if _, dup := picked[q.ID]; dup {
				continue
			}
			candidates = append(candidates, q)
		}

		if len(candidates) >= count {
			return candidates, nil
		}
		if len(candidates) > len(best) {
			best = candidates
		}
	}
	return best, nil
}

func (s *Selector) shuffle(questions []models.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}

func setToSlice(set map[uuid.UUID]struct{}) []uuid.UUID {
	if len(set) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
