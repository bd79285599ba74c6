package devauth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/APVS-BRO/ai-careers-hub/internal/ports"
)

func TestNewProvider_RequiresEmail(t *testing.T) {
	t.Parallel()
	_, err := NewProvider(Config{})
	require.Error(t, err)
}

func TestProvider_Begin(t *testing.T) {
	t.Parallel()
	provider, err := NewProvider(Config{Email: "dev@example.com"})
	require.NoError(t, err)

	authURL, state, nonce, err := provider.Begin(context.Background(), ports.BeginInput{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(authURL, "/auth/callback?code=dev&state="))
	assert.Len(t, state, 24)
	assert.Len(t, nonce, 24)
	assert.Contains(t, authURL, state)
}

func TestProvider_Exchange(t *testing.T) {
	t.Parallel()
	provider, err := NewProvider(Config{
		Email:           "dev@example.com",
		Name:            "Local Dev",
		SessionDuration: time.Hour,
	})
	require.NoError(t, err)

	identity, err := provider.Exchange(context.Background(), ports.ExchangeInput{
		Code: "dev", State: "s", Nonce: "n",
	})
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", identity.Email)
	assert.Equal(t, "Local Dev", identity.Name)
	assert.Equal(t, "dev|dev@example.com", identity.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), identity.ExpiresAt, 5*time.Second)
}

func TestProvider_Exchange_DefaultsName(t *testing.T) {
	t.Parallel()
	provider, err := NewProvider(Config{Email: "dev@example.com"})
	require.NoError(t, err)

	identity, err := provider.Exchange(context.Background(), ports.ExchangeInput{})
	require.NoError(t, err)
	assert.Equal(t, "Dev User", identity.Name)
}
