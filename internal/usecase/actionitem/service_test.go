package actionitem

import (
	"context"
	"errors"
	"testing"

	"github.com/johnquangdev/notulensi/internal/adapter/repository"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	ucerrors "github.com/johnquangdev/notulensi/internal/usecase/errors"
	"github.com/johnquangdev/notulensi/internal/usecase/permission"
)

func newService() (*Service, *repository.MeetingRepository) {
	store := repository.NewMeetingRepository(fixture())
	return NewService(store, permission.NewGate(), nil), store
}

func TestServiceListMine(t *testing.T) {
	svc, _ := newService()
	items := svc.List(context.Background(), &cahyo, ListFilter{Mine: true, Filter: Filter{PICID: "u1"}})
	equalIDs(t, "mine", items, "a5", "a3")
}

func TestChangeStatusPermissions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   *entities.User
		item    string
		wantErr error
	}{
		{"pic", &dewi, "a2", nil},
		{"notulis", &budi, "a2", nil},
		{"admin", &anisa, "a3", nil},
		{"other participant", &cahyo, "a2", nil},
		{"not invited", &eko, "a2", ucerrors.ErrForbidden},
		{"anonymous", nil, "a2", ucerrors.ErrUnauthorized},
		{"missing item", &budi, "a42", ucerrors.ErrActionItemNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newService()
			got, err := svc.ChangeStatus(ctx, tt.actor, "m1", tt.item, entities.ActionItemDone)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err: got %v want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got.Status != entities.ActionItemDone || got.Meeting.ID != "m1" {
				t.Fatalf("result: got %+v", got)
			}
			m, _ := store.FindByID(ctx, "m1")
			if m.Minutes.ActionItems[m.ActionItemIndex(tt.item)].Status != entities.ActionItemDone {
				t.Fatalf("status not written through")
			}
		})
	}
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newService()
	_, err := svc.ChangeStatus(context.Background(), &budi, "m1", "a1", "Closed")
	if !errors.Is(err, ucerrors.ErrInvalidStatus) {
		t.Fatalf("err: got %v", err)
	}
}

func TestChangeStatusMissingMeeting(t *testing.T) {
	svc, _ := newService()
	_, err := svc.ChangeStatus(context.Background(), &budi, "m9", "a1", entities.ActionItemDone)
	if !errors.Is(err, ucerrors.ErrActionItemNotFound) {
		t.Fatalf("err: got %v", err)
	}
}
