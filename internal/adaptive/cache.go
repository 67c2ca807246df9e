package adaptive

import (
	"context"
	"sync"

	"github.com/Shreyas250406/StudySaathi/internal/models"
	"github.com/google/uuid"
)

type poolKey struct {
	difficulty models.Difficulty
	grade      int
	language   string
}

// PoolCache caches question pools per (difficulty, grade, language) so the
// strict-tier query does not hit the question store on every request. It
// satisfies QuestionStore and wraps the real store: fully-specified
// filters are answered from the cache, relaxed filters pass through.
//
// A cached pool is invalidated when it is exhausted — when the exclusion
// filter leaves no candidates — and rebuilt synchronously from the
// underlying store. A miss or exhaustion always falls through to a fresh
// pool build; nothing ever waits on another request.
type PoolCache struct {
	inner QuestionStore

	mu    sync.Mutex
	pools map[poolKey][]models.Question
}

func NewPoolCache(inner QuestionStore) *PoolCache {
	return &PoolCache{
		inner: inner,
		pools: make(map[poolKey][]models.Question),
	}
}

func (c *PoolCache) Find(ctx context.Context, f QuestionFilter) ([]models.Question, error) {
	if f.Difficulty == nil || f.Grade == nil || f.Language == nil {
		return c.inner.Find(ctx, f)
	}

	key := poolKey{difficulty: *f.Difficulty, grade: *f.Grade, language: *f.Language}

	pool, ok := c.lookup(key)
	if ok {
		if candidates := excludeFrom(pool, f.ExcludeIDs); len(candidates) > 0 {
			return candidates, nil
		}
		// Exhausted: drop the entry and rebuild below.
		c.invalidate(key)
	}

	fresh, err := c.inner.Find(ctx, QuestionFilter{Difficulty: f.Difficulty, Grade: f.Grade, Language: f.Language})
	if err != nil {
		return nil, err
	}
	c.storePool(key, fresh)

	return excludeFrom(fresh, f.ExcludeIDs), nil
}

func (c *PoolCache) MarkServed(ctx context.Context, ids []uuid.UUID) error {
	return c.inner.MarkServed(ctx, ids)
}

// Invalidate drops every cached pool. Exposed for callers that mutate the
// question bank out of band.
func (c *PoolCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pools = make(map[poolKey][]models.Question)
}

func (c *PoolCache) lookup(key poolKey) ([]models.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pool, ok := c.pools[key]
	return pool, ok
}

func (c *PoolCache) invalidate(key poolKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pools, key)
}

func (c *PoolCache) storePool(key poolKey, pool []models.Question) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pools[key] = pool
}

func excludeFrom(pool []models.Question, excludeIDs []uuid.UUID) []models.Question {
	if len(excludeIDs) == 0 {
		// Copy so callers can shuffle without corrupting the cache.
		return append([]models.Question(nil), pool...)
	}
	excluded := make(map[uuid.UUID]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}
	out := make([]models.Question, 0, len(pool))
	for _, q := range pool {
		if _, skip := excluded[q.ID]; skip {
			continue
		}
		out = append(out, q)
	}
	return out
}
