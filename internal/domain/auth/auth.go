package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Identity represents the authenticated principal returned by an
// authenticator. Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    string // stable user identifier (email for password logins, sub for SSO)
	Name      string
	Email     string
	Groups    []string
	ExpiresAt time.Time // absolute session expiry
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier. The browser only ever holds the ID;
// role and identity are resolved server-side on every request, so a stale
// tab cannot retain privileges after logout.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin returns true if the session role is admin.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Role == RoleGuest }
