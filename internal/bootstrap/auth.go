package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/APVS-BRO/ai-careers-hub/config"
	"github.com/APVS-BRO/ai-careers-hub/internal/adapters/devauth"
	"github.com/APVS-BRO/ai-careers-hub/internal/adapters/oidc"
	redisadapter "github.com/APVS-BRO/ai-careers-hub/internal/adapters/redis"
	"github.com/APVS-BRO/ai-careers-hub/internal/ports"
	"github.com/APVS-BRO/ai-careers-hub/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil when auth cannot be built; the API then runs anonymous-only.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: redis client not configured", "mode", cfg.Auth.Mode)
		}
		return nil
	}

	// Redis session store shared by both modes
	sessionStore := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")

	var provider ports.AuthProvider
	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		provider = buildDevAuthProvider(cfg)
	case config.AuthModeOAuth:
		provider = buildOAuthProvider(cfg)
	default:
		return nil
	}
	if provider == nil {
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider:   provider,
		Sessions:   sessionStore,
		SessionTTL: cfg.Auth.SessionTTL,
	})
}

//nolint:ireturn // ports.AuthProvider is the contract the auth service consumes.
func buildDevAuthProvider(cfg AuthConfig) ports.AuthProvider {
	prov, err := devauth.NewProvider(devauth.Config{
		Email:           cfg.Auth.DevAuth.Email,
		Name:            cfg.Auth.DevAuth.Name,
		SessionDuration: cfg.Auth.SessionTTL,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create dev auth provider, auth disabled", "error", err)
		}
		return nil
	}
	return prov
}

//nolint:ireturn // see buildDevAuthProvider.
func buildOAuthProvider(cfg AuthConfig) ports.AuthProvider {
	oauth := cfg.Auth.OAuth
	// Only enable when fully configured
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModeOAuth selected but required config missing; auth disabled",
				"discovery_url_empty", oauth.DiscoveryURL == "",
				"client_id_empty", oauth.ClientID == "",
				"client_secret_empty", oauth.ClientSecret == "")
		}
		return nil
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		}
		return nil
	}
	return prov
}
