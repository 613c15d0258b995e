// Package permission answers who may see and change a meeting.
package permission

import "github.com/johnquangdev/notulensi/internal/domain/entities"

// Gate decides access to a meeting. A nil user is denied everything.
type Gate interface {
	CanView(user *entities.User, meeting *entities.Meeting) bool
	CanEditMinutes(user *entities.User, meeting *entities.Meeting) bool
	CanEditDetails(user *entities.User, meeting *entities.Meeting) bool
}

// RoleGate is the default role-based gate
type RoleGate struct{}

// NewGate returns the default gate
func NewGate() RoleGate {
	return RoleGate{}
}

// CanView allows admins, the notulis and listed participants
func (RoleGate) CanView(user *entities.User, meeting *entities.Meeting) bool {
	if user == nil || meeting == nil {
		return false
	}
	return user.IsAdmin() || meeting.IsNotulis(user.ID) || meeting.HasParticipant(user.ID)
}

// CanEditMinutes allows admins and the notulis
func (RoleGate) CanEditMinutes(user *entities.User, meeting *entities.Meeting) bool {
	if user == nil || meeting == nil {
		return false
	}
	return user.IsAdmin() || meeting.IsNotulis(user.ID)
}

// CanEditDetails allows admins only
func (RoleGate) CanEditDetails(user *entities.User, meeting *entities.Meeting) bool {
	if user == nil || meeting == nil {
		return false
	}
	return user.IsAdmin()
}
