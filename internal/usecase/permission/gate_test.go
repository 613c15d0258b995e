package permission

import (
	"testing"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

func TestRoleGate(t *testing.T) {
	admin := &entities.User{ID: "u1", Role: entities.RoleAdmin}
	notulis := &entities.User{ID: "u2", Role: entities.RoleNotulis}
	otherNotulis := &entities.User{ID: "u8", Role: entities.RoleNotulis}
	participant := &entities.User{ID: "u3", Role: entities.RoleParticipant}
	outsider := &entities.User{ID: "u20", Role: entities.RoleParticipant}

	meeting := &entities.Meeting{
		ID:           "m1",
		Notulis:      *notulis,
		Participants: []entities.User{*admin, *participant},
	}

	tests := []struct {
		name                   string
		user                   *entities.User
		view, minutes, details bool
	}{
		{"admin", admin, true, true, true},
		{"notulis", notulis, true, true, false},
		{"other notulis", otherNotulis, false, false, false},
		{"participant", participant, true, false, false},
		{"outsider", outsider, false, false, false},
		{"nil user", nil, false, false, false},
	}

	g := NewGate()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CanView(tt.user, meeting); got != tt.view {
				t.Fatalf("CanView: got %v want %v", got, tt.view)
			}
			if got := g.CanEditMinutes(tt.user, meeting); got != tt.minutes {
				t.Fatalf("CanEditMinutes: got %v want %v", got, tt.minutes)
			}
			if got := g.CanEditDetails(tt.user, meeting); got != tt.details {
				t.Fatalf("CanEditDetails: got %v want %v", got, tt.details)
			}
		})
	}
}
