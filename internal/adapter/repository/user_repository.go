package repository

import (
	"context"
	"strings"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

// UserRepository is the read-only in-memory user directory
type UserRepository struct {
	users   []*entities.User
	byID    map[string]*entities.User
	byEmail map[string]*entities.User
}

// NewUserRepository creates a directory over the given users
func NewUserRepository(users []*entities.User) *UserRepository {
	r := &UserRepository{
		users:   make([]*entities.User, 0, len(users)),
		byID:    make(map[string]*entities.User, len(users)),
		byEmail: make(map[string]*entities.User, len(users)),
	}
	for _, u := range users {
		c := *u
		r.users = append(r.users, &c)
		r.byID[c.ID] = &c
		r.byEmail[normalizeEmail(c.Email)] = &c
	}
	return r
}

// FindByID finds a user by ID
func (r *UserRepository) FindByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

// FindByEmail finds a user by email, case-insensitively
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	u, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

// List returns every user in directory order
func (r *UserRepository) List(_ context.Context) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(r.users))
	for _, u := range r.users {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

// ListByRole returns users holding the given role
func (r *UserRepository) ListByRole(_ context.Context, role entities.UserRole) ([]*entities.User, error) {
	out := []*entities.User{}
	for _, u := range r.users {
		if u.Role == role {
			c := *u
			out = append(out, &c)
		}
	}
	return out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
