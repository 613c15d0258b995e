package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

// MeetingRepository is the in-memory canonical meeting store
type MeetingRepository struct {
	mu       sync.RWMutex
	meetings []*entities.Meeting

	// NewID generates meeting IDs
	NewID func() string
}

// NewMeetingRepository creates a store seeded with the given meetings, keeping their IDs
func NewMeetingRepository(seed []*entities.Meeting) *MeetingRepository {
	r := &MeetingRepository{
		meetings: make([]*entities.Meeting, 0, len(seed)),
		NewID:    uuid.NewString,
	}
	for _, m := range seed {
		r.meetings = append(r.meetings, m.Clone())
	}
	return r
}

// List returns every meeting, most recently created first
func (r *MeetingRepository) List(_ context.Context) []*entities.Meeting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Meeting, len(r.meetings))
	for i, m := range r.meetings {
		out[i] = m.Clone()
	}
	return out
}

// FindByID finds a meeting by ID
func (r *MeetingRepository) FindByID(_ context.Context, id string) (*entities.Meeting, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.meetings[i].Clone(), true
	}
	return nil, false
}

// Create assigns a fresh ID and prepends the meeting
func (r *MeetingRepository) Create(_ context.Context, meeting *entities.Meeting) *entities.Meeting {
	stored := meeting.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored.ID = r.NewID()
	for r.indexOf(stored.ID) >= 0 {
		stored.ID = r.NewID()
	}
	r.meetings = append([]*entities.Meeting{stored}, r.meetings...)
	return stored.Clone()
}

// Update replaces the stored meeting with the same ID
func (r *MeetingRepository) Update(_ context.Context, meeting *entities.Meeting) bool {
	if meeting == nil {
		return false
	}
	stored := meeting.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(stored.ID)
	if i < 0 {
		return false
	}
	r.meetings[i] = stored
	return true
}

// Delete removes a meeting
func (r *MeetingRepository) Delete(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.meetings = append(r.meetings[:i], r.meetings[i+1:]...)
	return true
}

func (r *MeetingRepository) indexOf(id string) int {
	for i, m := range r.meetings {
		if m.ID == id {
			return i
		}
	}
	return -1
}
