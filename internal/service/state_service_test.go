package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/collegepyq/pyq-bot/internal/boterr"
	"github.com/collegepyq/pyq-bot/internal/model"
)

type fakeStore struct {
	states map[int64]model.UserState
	getErr error
	putErr error
	puts   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{states: make(map[int64]model.UserState)}
}

func (f *fakeStore) Get(ctx context.Context, chatID int64) (model.UserState, error) {
	if f.getErr != nil {
		return model.UserState{ChatID: chatID}, f.getErr
	}
	if state, ok := f.states[chatID]; ok {
		return state, nil
	}
	return model.UserState{ChatID: chatID}, nil
}

func (f *fakeStore) Put(ctx context.Context, state model.UserState) error {
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.states[state.ChatID] = state
	return nil
}

func TestSetYearThenBranch(t *testing.T) {
	store := newFakeStore()
	svc := NewStateService(store, zap.NewNop())
	ctx := context.Background()

	svc.SetYear(ctx, 42, model.YearSecond)
	state := svc.Get(ctx, 42)
	assert.Equal(t, model.YearSecond, state.LastYear)
	assert.Empty(t, state.LastBranch, "picking a year clears the old branch")

	svc.SetBranch(ctx, 42, model.YearSecond, "CSE")
	state = svc.Get(ctx, 42)
	assert.Equal(t, model.YearSecond, state.LastYear)
	assert.Equal(t, model.Branch("CSE"), state.LastBranch)
	assert.True(t, state.HasSelection())
}

func TestSetYearFirstYearSelectsCommonBranch(t *testing.T) {
	store := newFakeStore()
	svc := NewStateService(store, zap.NewNop())
	ctx := context.Background()

	svc.SetYear(ctx, 42, model.YearFirst)

	state := svc.Get(ctx, 42)
	assert.Equal(t, model.BranchCommon, state.LastBranch)
	assert.True(t, state.HasSelection())
}

func TestStorageErrorsDegradeToStateless(t *testing.T) {
	store := newFakeStore()
	store.getErr = boterr.ErrStorage
	svc := NewStateService(store, zap.NewNop())
	ctx := context.Background()

	state := svc.Get(ctx, 42)
	assert.Equal(t, int64(42), state.ChatID)
	assert.False(t, state.HasSelection())
	assert.False(t, state.HasDonated)

	// Writes must not panic or propagate either.
	store.putErr = boterr.ErrStorage
	svc.SetYear(ctx, 42, model.YearThird)
	svc.MarkDonated(ctx, 42)
}

func TestMarkDonatedIsIdempotent(t *testing.T) {
	store := newFakeStore()
	svc := NewStateService(store, zap.NewNop())
	ctx := context.Background()

	svc.MarkDonated(ctx, 42)
	require.True(t, svc.Get(ctx, 42).HasDonated)
	puts := store.puts

	svc.MarkDonated(ctx, 42)
	assert.Equal(t, puts, store.puts, "second /donate must not rewrite the row")
}

func TestClearSelectionKeepsDonationFlag(t *testing.T) {
	store := newFakeStore()
	svc := NewStateService(store, zap.NewNop())
	ctx := context.Background()

	svc.SetBranch(ctx, 42, model.YearThird, "ECE")
	svc.MarkDonated(ctx, 42)

	svc.ClearSelection(ctx, 42)

	state := svc.Get(ctx, 42)
	assert.False(t, state.HasSelection())
	assert.True(t, state.HasDonated)
}

func TestClearSelectionSkipsUnknownChats(t *testing.T) {
	store := newFakeStore()
	svc := NewStateService(store, zap.NewNop())

	svc.ClearSelection(context.Background(), 42)
	assert.Zero(t, store.puts, "no row should be created just to clear it")
}
