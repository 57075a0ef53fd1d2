package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/profiledeck/socialauth/pkg/slug"
)

const pgUniqueViolation = "23505"

// PostgresStore implements Store on top of a pgx connection pool. The
// duplicate-user race on concurrent first logins is closed by the unique
// index on external_id combined with ON CONFLICT DO UPDATE: both racers
// execute one atomic statement and resolve to the same row.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed user store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const userColumns = `user_id, external_id, provider, username, display_name,
	COALESCE(email, ''), COALESCE(avatar_url, ''), COALESCE(bio, ''),
	COALESCE(expertise, '{}'), COALESCE(vanity_subdomain, ''),
	COALESCE(access_token, ''), COALESCE(refresh_token, ''),
	COALESCE(token_expires_at, 'epoch'::timestamptz), created_at, last_activity_at`

// Upsert creates or updates the user for the given external id.
func (p *PostgresStore) Upsert(ctx context.Context, params UpsertParams) (*User, error) {
	if params.ExternalID == "" || params.Provider == "" || params.Username == "" {
		return nil, ErrInvalidUser
	}

	row := p.pool.QueryRow(ctx, `
		INSERT INTO users (
			user_id, external_id, provider, username, display_name, email,
			avatar_url, bio, expertise, vanity_subdomain, access_token,
			refresh_token, token_expires_at, created_at, last_activity_at
		)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''),
			$9, NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), $13, now(), now())
		ON CONFLICT (external_id) DO UPDATE SET
			display_name     = EXCLUDED.display_name,
			avatar_url       = EXCLUDED.avatar_url,
			bio              = EXCLUDED.bio,
			expertise        = EXCLUDED.expertise,
			access_token     = EXCLUDED.access_token,
			refresh_token    = EXCLUDED.refresh_token,
			token_expires_at = EXCLUDED.token_expires_at,
			last_activity_at = now()
		RETURNING `+userColumns,
		uuid.New().String(), params.ExternalID, params.Provider, params.Username,
		params.DisplayName, params.Email, params.AvatarURL, params.Bio,
		params.Expertise, slug.Make(params.Username), params.AccessToken,
		params.RefreshToken, nullableTime(params.TokenExpiresAt),
	)

	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// ON CONFLICT only absorbs external_id conflicts; a violation
			// here means the username or subdomain belongs to someone else.
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// GetByID returns the user with the given opaque user id.
func (p *PostgresStore) GetByID(ctx context.Context, id string) (*User, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, id)
	return scanUserNotFound(row)
}

// GetByExternalID returns the user with the given external identity.
func (p *PostgresStore) GetByExternalID(ctx context.Context, externalID string) (*User, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE external_id = $1`, externalID)
	return scanUserNotFound(row)
}

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.ExternalID, &user.Provider, &user.Username,
		&user.DisplayName, &user.Email, &user.AvatarURL, &user.Bio,
		&user.Expertise, &user.VanitySubdomain, &user.AccessToken,
		&user.RefreshToken, &user.TokenExpiresAt, &user.CreatedAt,
		&user.LastActivityAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func scanUserNotFound(row pgx.Row) (*User, error) {
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
