package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository([]*entities.User{
		{ID: "u1", Name: "Anisa", Email: "anisa.admin@example.com", Role: entities.RoleAdmin},
		{ID: "u2", Name: "Budi", Email: "budi.notulis@example.com", Role: entities.RoleNotulis},
		{ID: "u3", Name: "Cahyo", Email: "cahyo@example.com", Role: entities.RoleParticipant},
	})

	u, err := r.FindByEmail(ctx, "  ANISA.Admin@Example.com ")
	if err != nil || u.ID != "u1" {
		t.Fatalf("FindByEmail: got %v, %v", u, err)
	}
	if _, err := r.FindByID(ctx, "u9"); !errors.Is(err, entities.ErrUserNotFound) {
		t.Fatalf("FindByID missing: got %v", err)
	}

	notulis, _ := r.ListByRole(ctx, entities.RoleNotulis)
	if len(notulis) != 1 || notulis[0].ID != "u2" {
		t.Fatalf("ListByRole: got %v", notulis)
	}

	all, _ := r.List(ctx)
	all[0].Name = "changed"
	again, _ := r.FindByID(ctx, "u1")
	if again.Name != "Anisa" {
		t.Fatalf("directory mutated through List result")
	}
}
