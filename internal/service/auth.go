package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/sisunitech/careers-api/internal/domain/auth"
	apperrors "github.com/sisunitech/careers-api/internal/errors"
	"github.com/sisunitech/careers-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Passwords  ports.PasswordAuthenticator
	SSO        ports.SSOProvider
	Sessions   ports.SessionStore
	Roles      ports.RoleMapper
	SessionTTL time.Duration
}

// AuthService orchestrates authentication flows by coordinating the
// authenticator, role mapping, and session persistence. Role assignment
// happens here on every login; clients never pick their own role.
type AuthService struct {
	passwords  ports.PasswordAuthenticator
	sso        ports.SSOProvider
	sessions   ports.SessionStore
	roles      ports.RoleMapper
	sessionTTL time.Duration
}

const defaultSessionTTL = 8 * time.Hour

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		passwords:  opts.Passwords,
		sso:        opts.SSO,
		sessions:   opts.Sessions,
		roles:      opts.Roles,
		sessionTTL: ttl,
	}
}

// PasswordLogin verifies credentials, assigns a role and persists a session.
func (s *AuthService) PasswordLogin(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error) {
	if s.passwords == nil {
		return nil, apperrors.Unauthorized("password login is not enabled")
	}

	identity, err := s.passwords.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, identity)
}

// BeginSSOResult contains the result of beginning an SSO login flow.
type BeginSSOResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginSSO initiates the SSO flow and returns the provider auth URL with
// state and nonce for the callback.
func (s *AuthService) BeginSSO(ctx context.Context, redirectURL string) (*BeginSSOResult, error) {
	if s.sso == nil {
		return nil, apperrors.Unauthorized("SSO login is not enabled")
	}
	if redirectURL == "" {
		return nil, apperrors.Validation("redirect URL is required")
	}

	authURL, state, nonce, err := s.sso.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}
	return &BeginSSOResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteSSOInput groups parameters for completing an SSO flow.
type CompleteSSOInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteSSO exchanges the authorization code for an identity, maps the
// role and persists a session.
func (s *AuthService) CompleteSSO(ctx context.Context, input CompleteSSOInput) (*domainauth.Session, error) {
	if s.sso == nil {
		return nil, apperrors.Unauthorized("SSO login is not enabled")
	}
	if input.Code == "" {
		return nil, apperrors.Validation("authorization code is required")
	}
	if input.State == "" {
		return nil, apperrors.Validation("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, apperrors.Validation("nonce parameter is required")
	}

	identity, err := s.sso.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "exchange authorization code")
	}
	return s.createSession(ctx, identity)
}

// GetSession retrieves a session by ID, removing it when expired.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, apperrors.Unauthorized("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.Unauthorized("session not found")
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, fmt.Errorf("delete expired session: %w", deleteErr)
		}
		return nil, apperrors.Unauthorized("session expired")
	}

	return &session, nil
}

// Logout removes a session. Logging out without a session is a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *AuthService) createSession(ctx context.Context, identity domainauth.Identity) (*domainauth.Session, error) {
	role := s.roles.Map(identity)

	expiresAt := time.Now().Add(s.sessionTTL)
	if !identity.ExpiresAt.IsZero() && identity.ExpiresAt.Before(expiresAt) {
		expiresAt = identity.ExpiresAt
	}

	session := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    identity.UserID,
		Name:      identity.Name,
		Email:     identity.Email,
		Role:      role,
		ExpiresAt: expiresAt,
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}
	return &session, nil
}
