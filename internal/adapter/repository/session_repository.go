package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/infrastructure/cache"
)

// SessionRepository keeps the logged-in user record as JSON in a key-value store
type SessionRepository struct {
	store cache.Store
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(store cache.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Save stores the complete user record under the session key
func (r *SessionRepository) Save(ctx context.Context, sessionID string, user *entities.User, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}
	if err := r.store.Set(ctx, entities.SessionKey(sessionID), string(payload), ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the stored user record
func (r *SessionRepository) Load(ctx context.Context, sessionID string) (*entities.User, error) {
	raw, ok, err := r.store.Get(ctx, entities.SessionKey(sessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return nil, entities.ErrSessionNotFound
	}

	var user entities.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrSessionCorrupt, err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("%w: record has no user id", entities.ErrSessionCorrupt)
	}
	return &user, nil
}

// Delete removes the record
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.store.Delete(ctx, entities.SessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
