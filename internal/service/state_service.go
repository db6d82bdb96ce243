package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/collegepyq/pyq-bot/internal/model"
)

// UserStateStore is the persistence client seen from the service layer.
type UserStateStore interface {
	Get(ctx context.Context, chatID int64) (model.UserState, error)
	Put(ctx context.Context, state model.UserState) error
}

// StateService reads and writes per-chat state. Storage errors are logged
// and swallowed here so handlers degrade to stateless behavior instead of
// failing the whole request.
type StateService struct {
	store  UserStateStore
	logger *zap.Logger
}

func NewStateService(store UserStateStore, logger *zap.Logger) *StateService {
	return &StateService{
		store:  store,
		logger: logger,
	}
}

// Get returns the stored state, or a default-empty state when storage is
// unavailable.
func (s *StateService) Get(ctx context.Context, chatID int64) model.UserState {
	state, err := s.store.Get(ctx, chatID)
	if err != nil {
		s.logger.Warn("Failed to load user state, continuing stateless",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return model.UserState{ChatID: chatID}
	}
	return state
}

// SetYear records the chosen year and clears any previous branch choice.
func (s *StateService) SetYear(ctx context.Context, chatID int64, year model.Year) {
	state := s.Get(ctx, chatID)
	state.LastYear = year
	state.LastBranch = ""
	if year == model.YearFirst {
		// First year has no branch selection step.
		state.LastBranch = model.BranchCommon
	}
	s.put(ctx, state)
}

// SetBranch records the chosen branch for a year.
func (s *StateService) SetBranch(ctx context.Context, chatID int64, year model.Year, branch model.Branch) {
	state := s.Get(ctx, chatID)
	state.LastYear = year
	state.LastBranch = branch
	s.put(ctx, state)
}

// ClearSelection drops the stored year/branch, keeping the donation flag.
func (s *StateService) ClearSelection(ctx context.Context, chatID int64) {
	state := s.Get(ctx, chatID)
	if state.LastYear == 0 && state.LastBranch == "" && state.CreatedAt.IsZero() {
		// Nothing stored yet, no need to create a row just to clear it.
		return
	}
	state.LastYear = 0
	state.LastBranch = ""
	s.put(ctx, state)
}

// MarkDonated records the donation acknowledgement.
func (s *StateService) MarkDonated(ctx context.Context, chatID int64) {
	state := s.Get(ctx, chatID)
	if state.HasDonated {
		return
	}
	state.HasDonated = true
	s.put(ctx, state)
}

func (s *StateService) put(ctx context.Context, state model.UserState) {
	if err := s.store.Put(ctx, state); err != nil {
		s.logger.Warn("Failed to persist user state",
			zap.Int64("chat_id", state.ChatID),
			zap.Error(err))
	}
}
