package httpx

import (
	"context"

	domainauth "github.com/APVS-BRO/ai-careers-hub/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetUserSessionFromContext returns the user session from context and a boolean indicating presence.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// SessionEmail returns the authenticated user's email from context, or nil
// when the request is unauthenticated. History rows use this for ownership.
func SessionEmail(ctx context.Context) *string {
	session, ok := GetUserSessionFromContext(ctx)
	if !ok || session.Email == "" {
		return nil
	}
	email := session.Email
	return &email
}
