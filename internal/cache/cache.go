// Package cache holds the most recently fetched subject index in memory,
// queryable by subject code and by (year, branch). The index is replaced
// wholesale on each successful refresh; a failed refresh keeps the
// previous generation fully queryable.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/collegepyq/pyq-bot/internal/model"
)

// Fetcher is the spreadsheet client seen from the cache.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]model.Subject, error)
}

type yearBranch struct {
	year   model.Year
	branch model.Branch
}

// generation is one immutable snapshot of a fetch. Both views are built
// once and never mutated, so readers share it lock-free after the swap.
type generation struct {
	id           uuid.UUID
	fetchedAt    time.Time
	byCode       map[string]model.Subject
	byYearBranch map[yearBranch][]model.Subject
}

type Cache struct {
	fetcher Fetcher
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time

	mu  sync.RWMutex
	gen *generation
}

func New(fetcher Fetcher, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		fetcher: fetcher,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// Get returns the record for a subject code. Input is normalized, so
// lookups are insensitive to case and surrounding whitespace.
func (c *Cache) Get(code string) (model.Subject, bool) {
	gen := c.current()
	if gen == nil {
		return model.Subject{}, false
	}
	subject, ok := gen.byCode[model.NormalizeCode(code)]
	return subject, ok
}

// ByYearBranch returns the subjects for a (year, branch) pair, possibly
// empty, never an error.
func (c *Cache) ByYearBranch(year model.Year, branch model.Branch) []model.Subject {
	gen := c.current()
	if gen == nil {
		return nil
	}
	return gen.byYearBranch[yearBranch{year, branch}]
}

// Ready reports whether at least one fetch has ever succeeded.
func (c *Cache) Ready() bool {
	return c.current() != nil
}

// RefreshIfStale fetches and atomically swaps the index when the current
// generation is older than the TTL. Refresh is lazy: the first request
// after staleness pays the fetch cost. On fetch failure the previous
// generation stays in place and the error is returned to the caller.
func (c *Cache) RefreshIfStale(ctx context.Context) error {
	if c.fresh() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have refreshed while we waited for the lock.
	if c.gen != nil && c.now().Sub(c.gen.fetchedAt) < c.ttl {
		return nil
	}

	subjects, err := c.fetcher.FetchAll(ctx)
	if err != nil {
		c.logger.Error("Subject index refresh failed, keeping previous generation",
			zap.Error(err))
		return err
	}

	gen := c.build(subjects)
	c.gen = gen

	c.logger.Info("Subject index refreshed",
		zap.String("generation", gen.id.String()),
		zap.Int("subjects", len(gen.byCode)))
	return nil
}

func (c *Cache) build(subjects []model.Subject) *generation {
	gen := &generation{
		id:           uuid.New(),
		fetchedAt:    c.now(),
		byCode:       make(map[string]model.Subject, len(subjects)),
		byYearBranch: make(map[yearBranch][]model.Subject),
	}

	for _, s := range subjects {
		if _, dup := gen.byCode[s.Code]; dup {
			// Codes must be unique within a fetch; the later row wins.
			c.logger.Warn("Duplicate subject code in sheet", zap.String("code", s.Code))
		}
		gen.byCode[s.Code] = s
		key := yearBranch{s.Year, s.Branch}
		gen.byYearBranch[key] = append(gen.byYearBranch[key], s)
	}

	return gen
}

func (c *Cache) current() *generation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

func (c *Cache) fresh() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen != nil && c.now().Sub(c.gen.fetchedAt) < c.ttl
}
