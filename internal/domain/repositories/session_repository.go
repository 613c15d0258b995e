package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

// SessionRepository persists the logged-in user record per session
type SessionRepository interface {
	// Save stores the complete user record under the session key
	Save(ctx context.Context, sessionID string, user *entities.User, ttl time.Duration) error

	// Load returns the stored user record.
	// entities.ErrSessionNotFound when absent, entities.ErrSessionCorrupt when unreadable.
	Load(ctx context.Context, sessionID string) (*entities.User, error)

	// Delete removes the record
	Delete(ctx context.Context, sessionID string) error
}
