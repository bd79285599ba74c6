package oidc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/APVS-BRO/ai-careers-hub/internal/ports"
)

func newDiscoveryServer(t *testing.T) *httptest.Server {
	t.Helper()
	issuer := ""
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		doc := map[string]string{
			"issuer":                 issuer,
			"authorization_endpoint": "https://idp.example.com/auth",
			"token_endpoint":         "https://idp.example.com/token",
			"userinfo_endpoint":      "https://idp.example.com/userinfo",
			"jwks_uri":               "https://idp.example.com/jwks",
		}
		_ = json.NewEncoder(w).Encode(doc)
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	issuer = server.URL
	return server
}

func TestNewProvider_Success(t *testing.T) {
	server := newDiscoveryServer(t)

	provider, err := NewProvider(ProviderConfig{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost:8080/auth/callback",
		Scope:        "openid profile email",
		DiscoveryURL: server.URL,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://idp.example.com/auth", provider.config.Endpoint.AuthURL)
	assert.Equal(t, "https://idp.example.com/token", provider.config.Endpoint.TokenURL)
}

func TestNewProvider_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		config ProviderConfig
		errMsg string
	}{
		{
			name: "missing client ID",
			config: ProviderConfig{
				ClientSecret: "secret",
				RedirectURL:  "http://localhost/callback",
				DiscoveryURL: "http://example.com",
			},
			errMsg: "client ID is required",
		},
		{
			name: "missing client secret",
			config: ProviderConfig{
				ClientID:     "client",
				RedirectURL:  "http://localhost/callback",
				DiscoveryURL: "http://example.com",
			},
			errMsg: "client secret is required",
		},
		{
			name:   "missing redirect URL",
			config: ProviderConfig{ClientID: "client", ClientSecret: "secret", DiscoveryURL: "http://example.com"},
			errMsg: "redirect URL is required",
		},
		{
			name:   "missing discovery URL",
			config: ProviderConfig{ClientID: "client", ClientSecret: "secret", RedirectURL: "http://localhost/callback"},
			errMsg: "discovery URL is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProvider_Begin(t *testing.T) {
	server := newDiscoveryServer(t)

	provider, err := NewProvider(ProviderConfig{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost:8080/auth/callback",
		Scope:        "openid profile email",
		DiscoveryURL: server.URL,
	})
	require.NoError(t, err)

	authURL, state, nonce, err := provider.Begin(context.Background(), ports.BeginInput{
		RedirectURL: "http://localhost:8080/auth/callback",
	})
	require.NoError(t, err)
	assert.Len(t, state, 32)
	assert.Len(t, nonce, 32)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, state, query.Get("state"))
	assert.Equal(t, nonce, query.Get("nonce"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "test-client", query.Get("client_id"))
}

func TestProvider_Begin_RequiresRedirectURL(t *testing.T) {
	server := newDiscoveryServer(t)

	provider, err := NewProvider(ProviderConfig{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost:8080/auth/callback",
		Scope:        "openid",
		DiscoveryURL: server.URL,
	})
	require.NoError(t, err)

	_, _, _, err = provider.Begin(context.Background(), ports.BeginInput{})
	require.Error(t, err)
}

func TestMapIDTokenClaims(t *testing.T) {
	t.Run("combined name preferred", func(t *testing.T) {
		f := mapIDTokenClaims(idTokenClaims{
			Sub:        "user-1",
			Name:       "Ada Lovelace",
			GivenName:  "Ada",
			FamilyName: "Lovelace",
			Email:      "ada@example.com",
		})
		assert.Equal(t, "user-1", f.subject)
		assert.Equal(t, "Ada Lovelace", f.name)
		assert.Equal(t, "ada@example.com", f.email)
	})

	t.Run("falls back to given and family name", func(t *testing.T) {
		f := mapIDTokenClaims(idTokenClaims{
			Sub:        "user-2",
			GivenName:  "Grace",
			FamilyName: "Hopper",
		})
		assert.Equal(t, "Grace Hopper", f.name)
	})

	t.Run("empty claims map to empty fields", func(t *testing.T) {
		f := mapIDTokenClaims(idTokenClaims{})
		assert.Empty(t, f.subject)
		assert.Empty(t, f.name)
		assert.Empty(t, f.email)
	})
}

func TestFillFromUserInfoClaims(t *testing.T) {
	t.Run("fills only missing fields", func(t *testing.T) {
		f := idFields{subject: "user-1", email: "keep@example.com"}
		fillFromUserInfoClaims(&f, UserInfo{
			Subject: "other",
			Name:    "From UserInfo",
			Email:   "discard@example.com",
		})
		assert.Equal(t, "user-1", f.subject)
		assert.Equal(t, "From UserInfo", f.name)
		assert.Equal(t, "keep@example.com", f.email)
	})

	t.Run("fills everything when empty", func(t *testing.T) {
		var f idFields
		fillFromUserInfoClaims(&f, UserInfo{Subject: "s", Name: "n", Email: "e@example.com"})
		assert.Equal(t, idFields{subject: "s", name: "n", email: "e@example.com"}, f)
	})
}

func TestIssuerFromDiscoveryURL(t *testing.T) {
	cases := map[string]string{
		"https://idp.example.com":                                        "https://idp.example.com",
		"https://idp.example.com/":                                       "https://idp.example.com",
		"https://idp.example.com/.well-known/openid-configuration":       "https://idp.example.com",
		"https://idp.example.com/realms/x/.well-known/openid-configuration": "https://idp.example.com/realms/x",
	}
	for in, want := range cases {
		assert.Equal(t, want, issuerFromDiscoveryURL(in), in)
	}
}

func TestGenerateRandomString(t *testing.T) {
	s1, err := generateRandomString(32)
	require.NoError(t, err)
	s2, err := generateRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s1, 32)
	assert.NotEqual(t, s1, s2)

	empty, err := generateRandomString(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
