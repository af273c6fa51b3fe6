package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/sisunitech/careers-api/internal/domain/auth"
	apperrors "github.com/sisunitech/careers-api/internal/errors"
	mockauth "github.com/sisunitech/careers-api/internal/mocks/auth"
	"github.com/sisunitech/careers-api/internal/ports"
)

func newAuthService(t *testing.T) (*mockauth.MemorySessionStore, *AuthService) {
	t.Helper()

	sessions := mockauth.NewMemorySessionStore()
	service := NewAuthService(AuthServiceOptions{
		Passwords:  &mockauth.MockPasswordAuthenticator{},
		SSO:        mockauth.NewMockSSOProvider(),
		Sessions:   sessions,
		Roles:      mockauth.EmailRoleMapper{AdminEmails: []string{"admin@sisuni.tech"}},
		SessionTTL: time.Hour,
	})
	return sessions, service
}

func TestAuthService_PasswordLogin_UserRole(t *testing.T) {
	t.Parallel()
	sessions, service := newAuthService(t)

	sess, err := service.PasswordLogin(context.Background(), ports.Credentials{
		Email:    "jane@example.com",
		Password: "anything",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "jane@example.com", sess.Email)
	assert.Equal(t, domainauth.RoleUser, sess.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, 5*time.Second)
	assert.Equal(t, 1, sessions.Len())
}

func TestAuthService_PasswordLogin_AdminByEmail(t *testing.T) {
	t.Parallel()
	_, service := newAuthService(t)

	sess, err := service.PasswordLogin(context.Background(), ports.Credentials{
		Email:    "admin@sisuni.tech",
		Password: "anything",
	})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, sess.Role)
	assert.True(t, sess.IsAdmin())
}

func TestAuthService_PasswordLogin_AuthenticatorRejects(t *testing.T) {
	t.Parallel()

	sessions := mockauth.NewMemorySessionStore()
	service := NewAuthService(AuthServiceOptions{
		Passwords: &mockauth.MockPasswordAuthenticator{
			Err: apperrors.Unauthorized("invalid credentials"),
		},
		Sessions: sessions,
		Roles:    mockauth.EmailRoleMapper{},
	})

	_, err := service.PasswordLogin(context.Background(), ports.Credentials{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthService_PasswordLogin_NotEnabled(t *testing.T) {
	t.Parallel()

	service := NewAuthService(AuthServiceOptions{
		Sessions: mockauth.NewMemorySessionStore(),
		Roles:    mockauth.EmailRoleMapper{},
	})

	_, err := service.PasswordLogin(context.Background(), ports.Credentials{
		Email:    "jane@example.com",
		Password: "x",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_SSOFlow(t *testing.T) {
	t.Parallel()
	_, service := newAuthService(t)
	ctx := context.Background()

	begin, err := service.BeginSSO(ctx, "http://localhost:8080/auth/callback")
	require.NoError(t, err)
	assert.NotEmpty(t, begin.AuthURL)
	assert.NotEmpty(t, begin.State)
	assert.NotEmpty(t, begin.Nonce)

	sess, err := service.CompleteSSO(ctx, CompleteSSOInput{
		Code:  "auth-code",
		State: begin.State,
		Nonce: begin.Nonce,
	})
	require.NoError(t, err)
	assert.Equal(t, "mock.user@example.com", sess.Email)
	assert.Equal(t, domainauth.RoleUser, sess.Role)

	got, err := service.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
}

func TestAuthService_CompleteSSO_ValidationErrors(t *testing.T) {
	t.Parallel()
	_, service := newAuthService(t)
	ctx := context.Background()

	cases := []CompleteSSOInput{
		{State: "s", Nonce: "n"},
		{Code: "c", Nonce: "n"},
		{Code: "c", State: "s"},
	}
	for _, input := range cases {
		_, err := service.CompleteSSO(ctx, input)
		require.Error(t, err, "input %+v", input)
		assert.True(t, apperrors.IsValidation(err), "input %+v", input)
	}
}

func TestAuthService_GetSession_ExpiredIsDeleted(t *testing.T) {
	t.Parallel()
	sessions, service := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, sessions.Save(ctx, domainauth.Session{
		ID:        "expired-session",
		UserID:    "jane@example.com",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := service.GetSession(ctx, "expired-session")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, 0, sessions.Len(), "expired session is removed")
}

func TestAuthService_GetSession_MissingOrEmpty(t *testing.T) {
	t.Parallel()
	_, service := newAuthService(t)
	ctx := context.Background()

	_, err := service.GetSession(ctx, "")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	_, err = service.GetSession(ctx, "no-such-session")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()
	sessions, service := newAuthService(t)
	ctx := context.Background()

	sess, err := service.PasswordLogin(ctx, ports.Credentials{
		Email:    "jane@example.com",
		Password: "x",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, sess.ID))
	assert.Equal(t, 0, sessions.Len())

	// stale tab: the old session id no longer resolves
	_, err = service.GetSession(ctx, sess.ID)
	require.Error(t, err)

	// logout without a session is a no-op
	require.NoError(t, service.Logout(ctx, ""))
}

func TestAuthService_SessionExpiryCappedByIdentity(t *testing.T) {
	t.Parallel()

	sessions := mockauth.NewMemorySessionStore()
	shortLived := domainauth.Identity{
		UserID:    "jane@example.com",
		Email:     "jane@example.com",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	service := NewAuthService(AuthServiceOptions{
		Passwords:  &mockauth.MockPasswordAuthenticator{DefaultIdentity: shortLived},
		Sessions:   sessions,
		Roles:      mockauth.EmailRoleMapper{},
		SessionTTL: 8 * time.Hour,
	})

	sess, err := service.PasswordLogin(context.Background(), ports.Credentials{
		Email:    "jane@example.com",
		Password: "x",
	})
	require.NoError(t, err)
	assert.WithinDuration(t, shortLived.ExpiresAt, sess.ExpiresAt, time.Second,
		"identity expiry shorter than TTL wins")
}
