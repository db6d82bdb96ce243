package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/collegepyq/pyq-bot/internal/boterr"
	"github.com/collegepyq/pyq-bot/internal/model"
)

// SubjectIndex is the lookup cache seen from the service layer.
type SubjectIndex interface {
	Get(code string) (model.Subject, bool)
	ByYearBranch(year model.Year, branch model.Branch) []model.Subject
	RefreshIfStale(ctx context.Context) error
	Ready() bool
}

// LookupService fronts the cache for handlers: every query first gives
// the cache a chance to refresh, then falls back to the stale index when
// the refresh fails. Only a cold cache with a failing source surfaces
// boterr.ErrFetch.
type LookupService struct {
	index  SubjectIndex
	logger *zap.Logger
}

func NewLookupService(index SubjectIndex, logger *zap.Logger) *LookupService {
	return &LookupService{
		index:  index,
		logger: logger,
	}
}

// Subject looks up one record by subject code. boterr.ErrNotFound is the
// expected outcome for an unknown code.
func (s *LookupService) Subject(ctx context.Context, code string) (model.Subject, error) {
	if err := s.refresh(ctx); err != nil {
		return model.Subject{}, err
	}

	subject, ok := s.index.Get(code)
	if !ok {
		return model.Subject{}, fmt.Errorf("%w: subject code %s", boterr.ErrNotFound, model.NormalizeCode(code))
	}
	return subject, nil
}

// SubjectsFor lists the subjects for a (year, branch) pair. An absent
// pair yields an empty list, not an error.
func (s *LookupService) SubjectsFor(ctx context.Context, year model.Year, branch model.Branch) ([]model.Subject, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	return s.index.ByYearBranch(year, branch), nil
}

func (s *LookupService) refresh(ctx context.Context) error {
	err := s.index.RefreshIfStale(ctx)
	if err == nil {
		return nil
	}
	if s.index.Ready() {
		// Stale reads are permitted; the previous generation serves.
		s.logger.Warn("Serving stale subject index after failed refresh", zap.Error(err))
		return nil
	}
	return err
}
