package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profiledeck/socialauth/pkg/session"
)

func TestManager_Issue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := session.New()

	t.Run("issues session with generated id", func(t *testing.T) {
		sess, err := manager.Issue(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", sess.UserID)
		// 32 random bytes base64url-encoded without padding
		assert.Len(t, sess.ID, 43)
		assert.True(t, sess.ExpiresAt.After(sess.CreatedAt))
	})

	t.Run("unique ids", func(t *testing.T) {
		a, err := manager.Issue(ctx, "user-1")
		require.NoError(t, err)
		b, err := manager.Issue(ctx, "user-1")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects empty user id", func(t *testing.T) {
		_, err := manager.Issue(ctx, "")
		assert.ErrorIs(t, err, session.ErrInvalidSession)
	})
}

func TestManager_Resolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("resolves live session", func(t *testing.T) {
		manager := session.New()
		issued, err := manager.Issue(ctx, "user-1")
		require.NoError(t, err)

		resolved, err := manager.Resolve(ctx, issued.ID)
		require.NoError(t, err)
		assert.Equal(t, issued.UserID, resolved.UserID)
	})

	t.Run("unknown id", func(t *testing.T) {
		manager := session.New()
		_, err := manager.Resolve(ctx, "does-not-exist")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("expired session is indistinguishable from unknown", func(t *testing.T) {
		store := session.NewMemoryStore()
		manager := session.New(session.WithStore(store))

		expired := &session.Session{
			ID:        "expired-id",
			UserID:    "user-1",
			CreatedAt: time.Now().Add(-31 * 24 * time.Hour),
			ExpiresAt: time.Now().Add(-24 * time.Hour),
		}
		require.NoError(t, store.Create(ctx, expired))

		_, err := manager.Resolve(ctx, "expired-id")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)

		// found-expired-on-lookup destroys the session
		_, err = store.Get(ctx, "expired-id")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestManager_Revoke(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := session.New()

	issued, err := manager.Issue(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, manager.Revoke(ctx, issued.ID))

	_, err = manager.Resolve(ctx, issued.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	t.Run("revoking unknown id is a no-op", func(t *testing.T) {
		assert.NoError(t, manager.Revoke(ctx, "already-gone"))
	})
}

func TestManager_WithTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := session.New(session.WithTTL(time.Hour))

	sess, err := manager.Issue(ctx, "user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute)
}
