package redis

import (
	"context"
	"testing"
	"time"

	domainauth "github.com/APVS-BRO/ai-careers-hub/internal/domain/auth"
	"github.com/APVS-BRO/ai-careers-hub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-1",
		Subject:   "user-123",
		Name:      "Test User",
		Email:     "user@example.com",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Subject, got.Subject)
	assert.Equal(t, session.Email, got.Email)
}

func TestSessionStore_Save_RejectsExpired(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	err := store.Save(context.Background(), domainauth.Session{
		ID:        "expired-session",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.Error(t, err)
}

func TestSessionStore_Get_MissingIsNotFound(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	_, err := store.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-delete",
		Subject:   "user-123",
		ExpiresAt: time.Now().Add(time.Minute),
	}
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, session.ID))

	_, err := store.Get(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing or empty ID is a no-op.
	require.NoError(t, store.Delete(ctx, "does-not-exist"))
	require.NoError(t, store.Delete(ctx, ""))
}
