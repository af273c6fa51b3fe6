package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOIDC uses OIDC/OAuth for authentication.
	AuthModeOIDC AuthMode = "oidc"
	// AuthModeDemo uses the demo password authenticator. It accepts any
	// non-empty credential pair and must never be enabled in production.
	AuthModeDemo AuthMode = "demo"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oidc", "demo":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oidc, demo)", v)
	}
}

// OIDCConfig contains OIDC/OAuth configuration.
type OIDCConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oidc"`

	// OIDC configuration (used when Mode=oidc).
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// AdminEmails lists the addresses granted the admin role at login time.
	AdminEmails []string `env:"ADMIN_EMAILS" envDefault:"admin@sisuni.tech" envSeparator:";"`

	// AdminGroup is the IdP group granting admin in SSO mode.
	AdminGroup string `env:"ADMIN_GROUP" envDefault:"careers-admins"`

	// SessionTTL is how long a session stays valid after login.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 8 * time.Hour
	}
	emails := make([]string, 0, len(a.AdminEmails))
	for _, e := range a.AdminEmails {
		if trimmed := strings.ToLower(strings.TrimSpace(e)); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	a.AdminEmails = emails
}
