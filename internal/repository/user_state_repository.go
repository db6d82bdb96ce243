package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collegepyq/pyq-bot/internal/boterr"
	"github.com/collegepyq/pyq-bot/internal/model"
)

type UserStateRepository struct {
	pool *pgxpool.Pool
}

func NewUserStateRepository(pool *pgxpool.Pool) *UserStateRepository {
	return &UserStateRepository{pool: pool}
}

// Get returns the stored state for a chat, or a default-empty state when
// the chat has never been seen. Connectivity problems surface as
// boterr.ErrStorage.
func (r *UserStateRepository) Get(ctx context.Context, chatID int64) (model.UserState, error) {
	query := `
		SELECT chat_id, last_year, last_branch, has_donated, created_at, updated_at
		FROM user_states
		WHERE chat_id = $1
	`

	var (
		state      model.UserState
		lastYear   *int16
		lastBranch *string
	)
	err := r.pool.QueryRow(ctx, query, chatID).Scan(
		&state.ChatID,
		&lastYear,
		&lastBranch,
		&state.HasDonated,
		&state.CreatedAt,
		&state.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserState{ChatID: chatID}, nil
		}
		return model.UserState{ChatID: chatID}, fmt.Errorf("%w: get user state: %v", boterr.ErrStorage, err)
	}

	if lastYear != nil {
		state.LastYear = model.Year(*lastYear)
	}
	if lastBranch != nil {
		state.LastBranch = model.Branch(*lastBranch)
	}

	return state, nil
}

// Put upserts the state for a chat, creating the row on first interaction.
func (r *UserStateRepository) Put(ctx context.Context, state model.UserState) error {
	query := `
		INSERT INTO user_states (chat_id, last_year, last_branch, has_donated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (chat_id) DO UPDATE
		SET last_year = EXCLUDED.last_year,
		    last_branch = EXCLUDED.last_branch,
		    has_donated = EXCLUDED.has_donated,
		    updated_at = now()
	`

	var (
		lastYear   *int16
		lastBranch *string
	)
	if state.LastYear != 0 {
		y := int16(state.LastYear)
		lastYear = &y
	}
	if state.LastBranch != "" {
		b := string(state.LastBranch)
		lastBranch = &b
	}

	_, err := r.pool.Exec(ctx, query, state.ChatID, lastYear, lastBranch, state.HasDonated)
	if err != nil {
		return fmt.Errorf("%w: put user state: %v", boterr.ErrStorage, err)
	}

	return nil
}
