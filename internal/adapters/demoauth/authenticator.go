// Package demoauth implements password authentication for demo and local
// development deployments. It accepts any non-empty email/password pair and
// never checks the password against anything. It must not be enabled in
// production; the bootstrap layer only wires it when AUTH_MODE=demo.
package demoauth

import (
	"context"
	"strings"

	domainauth "github.com/sisunitech/careers-api/internal/domain/auth"
	apperrors "github.com/sisunitech/careers-api/internal/errors"
	"github.com/sisunitech/careers-api/internal/ports"
)

// Authenticator implements ports.PasswordAuthenticator for demo mode.
type Authenticator struct{}

// New creates a demo authenticator.
func New() *Authenticator {
	return &Authenticator{}
}

// Authenticate accepts any non-empty credentials. The identity's UserID is
// the lowercased email; role assignment happens in the role mapper, never
// here and never from client input.
func (a *Authenticator) Authenticate(_ context.Context, creds ports.Credentials) (domainauth.Identity, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || !strings.Contains(email, "@") {
		return domainauth.Identity{}, apperrors.Unauthorized("invalid credentials")
	}
	if creds.Password == "" {
		return domainauth.Identity{}, apperrors.Unauthorized("invalid credentials")
	}

	return domainauth.Identity{
		UserID: email,
		Name:   displayNameFromEmail(email),
		Email:  email,
	}, nil
}

// displayNameFromEmail derives a readable name from the local part of the
// address, e.g. "jane.doe@x.com" becomes "Jane Doe".
func displayNameFromEmail(email string) string {
	local := email
	if i := strings.Index(email, "@"); i > 0 {
		local = email[:i]
	}
	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return local
	}
	return strings.Join(words, " ")
}
