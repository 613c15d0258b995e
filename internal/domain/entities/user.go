package entities

import "strings"

// UserRole defines user roles
type UserRole string

const (
	RoleAdmin       UserRole = "Admin"
	RoleNotulis     UserRole = "Notulis"
	RoleParticipant UserRole = "Participant"
)

// IsValid checks if the user role is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleNotulis, RoleParticipant:
		return true
	}
	return false
}

// User represents a person who can attend, record or administer meetings
type User struct {
	ID     string   `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	Email  string   `json:"email" yaml:"email"`
	Role   UserRole `json:"role" yaml:"role"`
	Avatar string   `json:"avatar" yaml:"avatar"`

	// PasswordHash is a bcrypt hash. Never exposed in JSON.
	PasswordHash string `json:"-" yaml:"-"`
}

// IsAdmin checks if user is admin
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CanTakeMinutes reports whether the user may be assigned as a meeting's notulis
func (u *User) CanTakeMinutes() bool {
	return u != nil && u.Role == RoleNotulis
}

// HasEmail compares emails case-insensitively
func (u *User) HasEmail(email string) bool {
	return u != nil && strings.EqualFold(strings.TrimSpace(u.Email), strings.TrimSpace(email))
}

// Validate validates user data
func (u *User) Validate() error {
	if u.ID == "" {
		return ErrInvalidUser
	}
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrInvalidName
	}
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}

// PublicUser returns a user with sensitive fields removed
type PublicUser struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Avatar string   `json:"avatar"`
}

// ToPublic converts User to PublicUser
func (u *User) ToPublic() *PublicUser {
	return &PublicUser{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}
