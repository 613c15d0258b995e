package repositories

import (
	"context"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

// MeetingRepository is the canonical store of meetings.
// Every meeting handed out or accepted is a snapshot; callers never share
// memory with the store. Not-found outcomes are reported as booleans.
type MeetingRepository interface {
	// List returns every meeting, most recently created first
	List(ctx context.Context) []*entities.Meeting

	// FindByID finds a meeting by ID
	FindByID(ctx context.Context, id string) (*entities.Meeting, bool)

	// Create assigns a fresh ID and prepends the meeting
	Create(ctx context.Context, meeting *entities.Meeting) *entities.Meeting

	// Update replaces the stored meeting with the same ID
	Update(ctx context.Context, meeting *entities.Meeting) bool

	// Delete removes a meeting
	Delete(ctx context.Context, id string) bool
}

// MeetingEventType names the kind of write that happened to a meeting
type MeetingEventType string

const (
	MeetingCreated MeetingEventType = "created"
	MeetingUpdated MeetingEventType = "updated"
	MeetingDeleted MeetingEventType = "deleted"
)

// MeetingEvent is broadcast after a successful store write
type MeetingEvent struct {
	Type       MeetingEventType `json:"type"`
	MeetingID  string           `json:"meeting_id"`
	Title      string           `json:"title,omitempty"`
	OccurredAt string           `json:"occurred_at"`
}

// EventPublisher delivers meeting events to interested parties
type EventPublisher interface {
	Publish(ctx context.Context, event MeetingEvent) error
}
