package service

import (
	"context"
	"testing"
	"time"

	domainauth "github.com/APVS-BRO/ai-careers-hub/internal/domain/auth"
	mockauth "github.com/APVS-BRO/ai-careers-hub/internal/mocks/auth"
	"github.com/APVS-BRO/ai-careers-hub/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() (*mockauth.MockAuthProvider, *mockauth.MemorySessionStore, *AuthService) {
	provider := mockauth.NewMockAuthProvider()
	sessions := mockauth.NewMemorySessionStore()
	service := NewAuthService(AuthServiceOptions{Provider: provider, Sessions: sessions})
	return provider, sessions, service
}

func TestAuthService_BeginLogin(t *testing.T) {
	t.Parallel()
	_, _, service := newAuthService()

	result, err := service.BeginLogin(context.Background(), "https://app.example.com/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.NotEmpty(t, result.State)
	assert.NotEmpty(t, result.Nonce)
}

func TestAuthService_BeginLogin_RequiresRedirectURL(t *testing.T) {
	t.Parallel()
	_, _, service := newAuthService()

	_, err := service.BeginLogin(context.Background(), "")
	require.Error(t, err)
}

func TestAuthService_CompleteLogin_PersistsSession(t *testing.T) {
	t.Parallel()
	_, sessions, service := newAuthService()

	result, err := service.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "code-1",
		State: "state-1",
		Nonce: "nonce-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Session.ID)
	assert.Equal(t, "mock.user@example.com", result.Session.Email)

	stored, err := sessions.Get(context.Background(), result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Session.Subject, stored.Subject)
}

func TestAuthService_CompleteLogin_RequiresParameters(t *testing.T) {
	t.Parallel()
	_, _, service := newAuthService()
	ctx := context.Background()

	_, err := service.CompleteLogin(ctx, CompleteLoginInput{State: "s", Nonce: "n"})
	require.Error(t, err)
	_, err = service.CompleteLogin(ctx, CompleteLoginInput{Code: "c", Nonce: "n"})
	require.Error(t, err)
	_, err = service.CompleteLogin(ctx, CompleteLoginInput{Code: "c", State: "s"})
	require.Error(t, err)
}

func TestAuthService_GetSession_ExpiredSessionIsDeleted(t *testing.T) {
	t.Parallel()
	provider, sessions, service := newAuthService()
	provider.ExchangeFunc = func(context.Context, ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{
			Subject:   "sub-1",
			Email:     "old@example.com",
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil
	}

	result, err := service.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "c", State: "s", Nonce: "n",
	})
	require.NoError(t, err)

	_, err = service.GetSession(context.Background(), result.Session.ID)
	require.Error(t, err)
	assert.True(t, ErrSessionExpired(err))

	_, err = sessions.Get(context.Background(), result.Session.ID)
	assert.ErrorIs(t, err, mockauth.ErrNotFound)
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()
	_, sessions, service := newAuthService()

	result, err := service.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "c", State: "s", Nonce: "n",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), result.Session.ID))
	_, err = sessions.Get(context.Background(), result.Session.ID)
	assert.ErrorIs(t, err, mockauth.ErrNotFound)

	// Empty session ID is a no-op.
	require.NoError(t, service.Logout(context.Background(), ""))
}
