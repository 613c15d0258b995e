package repositories

import (
	"context"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

// UserRepository defines the interface for the user directory
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*entities.User, error)

	// FindByEmail finds a user by email, case-insensitively
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// List returns every user in directory order
	List(ctx context.Context) ([]*entities.User, error)

	// ListByRole returns users holding the given role
	ListByRole(ctx context.Context, role entities.UserRole) ([]*entities.User, error)
}
