package domain

import "time"

// Role separates regular members from administrators.
type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

// User is the domain model for dashboard accounts.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the account holds the administrator capability.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
