// Package authroles maps authenticated identities to application roles.
// Role decisions are made server-side only; nothing a client sends can
// influence the result.
package authroles

import (
	"strings"

	domainauth "github.com/sisunitech/careers-api/internal/domain/auth"
)

// StaticRoleMapper grants admin to identities whose email is on the
// configured admin list or who belong to the configured admin group.
// Everyone else authenticated is a regular user.
type StaticRoleMapper struct {
	adminEmails map[string]struct{}
	adminGroup  string
}

// NewStaticRoleMapper creates a role mapper from the configured admin emails
// and admin group name. Emails are matched case-insensitively.
func NewStaticRoleMapper(adminEmails []string, adminGroup string) *StaticRoleMapper {
	emails := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			emails[e] = struct{}{}
		}
	}
	return &StaticRoleMapper{
		adminEmails: emails,
		adminGroup:  strings.TrimSpace(adminGroup),
	}
}

// Map returns the role for an authenticated identity.
func (m *StaticRoleMapper) Map(identity domainauth.Identity) domainauth.Role {
	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if _, ok := m.adminEmails[email]; ok && email != "" {
		return domainauth.RoleAdmin
	}
	if m.adminGroup != "" {
		for _, g := range identity.Groups {
			if strings.EqualFold(strings.TrimSpace(g), m.adminGroup) {
				return domainauth.RoleAdmin
			}
		}
	}
	return domainauth.RoleUser
}
