package statestore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on top of a pgx connection pool. Consume
// uses DELETE ... RETURNING so the lookup and removal are one atomic
// statement.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed state store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Put stores a new state record.
func (p *PostgresStore) Put(ctx context.Context, state *State) error {
	if state == nil || state.Token == "" || state.Verifier == "" {
		return ErrInvalidState
	}

	_, err := p.pool.Exec(ctx, `
		INSERT INTO oauth_states (state, code_verifier, provider, redirect_path, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		state.Token, state.Verifier, state.Provider, state.RedirectPath, state.CreatedAt, state.ExpiresAt,
	)
	return err
}

// Consume retrieves and removes the state atomically.
func (p *PostgresStore) Consume(ctx context.Context, token string) (*State, error) {
	state := &State{}
	err := p.pool.QueryRow(ctx, `
		DELETE FROM oauth_states
		WHERE state = $1
		RETURNING state, code_verifier, provider, redirect_path, created_at, expires_at`,
		token,
	).Scan(&state.Token, &state.Verifier, &state.Provider, &state.RedirectPath, &state.CreatedAt, &state.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}

	// The row is gone either way; an expired state is still a failed consume.
	if state.IsExpired() {
		return nil, ErrStateNotFound
	}

	return state, nil
}
