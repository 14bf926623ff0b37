package models

import "strings"

// Role is the closed set of roles a user account can hold. Using a dedicated
// type instead of free-form strings keeps role comparison drift-free; the
// original case-insensitive inputs are still accepted through [ParseRole].
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleInstructor Role = "Instructor"
	RoleStudent    Role = "Student"

	// RoleUnknown is returned by [ParseRole] for input that matches no known
	// role. Group membership operations reject users carrying it.
	RoleUnknown Role = ""
)

// ParseRole maps free-form role input to a Role. Matching is case-insensitive
// and ignores surrounding whitespace, so "admin", "ADMIN" and " Admin " all
// resolve to [RoleAdmin].
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "instructor":
		return RoleInstructor
	case "student":
		return RoleStudent
	default:
		return RoleUnknown
	}
}

// IsAdmin reports whether the role is [RoleAdmin].
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// IsInstructor reports whether the role is [RoleInstructor].
func (r Role) IsInstructor() bool { return r == RoleInstructor }

// IsPrivileged reports whether the role bypasses group-based article access
// checks. Admins and instructors can read every article and restore backups.
func (r Role) IsPrivileged() bool { return r == RoleAdmin || r == RoleInstructor }

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleInstructor || r == RoleStudent
}
