package httpx

import (
	"context"

	domainauth "github.com/sisunitech/careers-api/internal/domain/auth"
)

// sessionKey keys the resolved session in a request context. A struct type
// keeps the key collision-free across packages.
type sessionKey struct{}

// SetSessionInContext returns a context carrying the resolved session. A nil
// session leaves ctx unchanged, so anonymous requests keep their original
// context.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetUserSessionFromContext returns the session placed by the auth middleware
// and whether one is present.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// GetSessionFromContext returns the current session, or nil for anonymous
// requests. Handlers use this form for ownership checks where absence is an
// ordinary outcome.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := GetUserSessionFromContext(ctx); ok {
		return s
	}
	return nil
}
