package meeting

import (
	"context"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

// Service defines the interface for meeting use cases
type Service interface {
	// Dashboard splits the visible meetings into upcoming and past
	Dashboard(ctx context.Context, actor *entities.User, filter DashboardFilter) (*DashboardOutput, error)

	// Archive lists meetings dated before today
	Archive(ctx context.Context, filter ArchiveFilter) ([]*entities.Meeting, error)

	// Create schedules a new meeting
	Create(ctx context.Context, actor *entities.User, input CreateMeetingInput) (*entities.Meeting, error)

	// Get retrieves a meeting the actor may view
	Get(ctx context.Context, actor *entities.User, meetingID string) (*entities.Meeting, error)

	// UpdateDetails replaces the meeting's scheduling details (admin only)
	UpdateDetails(ctx context.Context, actor *entities.User, meetingID string, input UpdateDetailsInput) (*entities.Meeting, error)

	// Delete removes a meeting (admin only)
	Delete(ctx context.Context, actor *entities.User, meetingID string) error

	// UpdateSummary replaces the minutes summary
	UpdateSummary(ctx context.Context, actor *entities.User, meetingID, summary string) (*entities.Meeting, error)

	// SaveActionItem creates an action item when input.ID is empty, updates it otherwise
	SaveActionItem(ctx context.Context, actor *entities.User, meetingID string, input ActionItemInput) (*entities.Meeting, *entities.ActionItem, error)

	// DeleteActionItem removes an action item from the minutes
	DeleteActionItem(ctx context.Context, actor *entities.User, meetingID, itemID string) (*entities.Meeting, error)

	// AddAttachment records a file reference in the minutes
	AddAttachment(ctx context.Context, actor *entities.User, meetingID, fileName string) (*entities.Meeting, *entities.Attachment, error)

	// DeleteAttachment removes a file reference from the minutes
	DeleteAttachment(ctx context.Context, actor *entities.User, meetingID, attachmentID string) (*entities.Meeting, error)

	// AddParticipant adds a user to the meeting; adding an existing participant is a no-op
	AddParticipant(ctx context.Context, actor *entities.User, meetingID, userID string) (*entities.Meeting, error)

	// RemoveParticipant removes a user from the meeting
	RemoveParticipant(ctx context.Context, actor *entities.User, meetingID, userID string) (*entities.Meeting, error)
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)

// Scope selects whose meetings the dashboard shows
type Scope string

const (
	ScopeAll Scope = "all"
	ScopeMy  Scope = "my"
)

// DashboardFilter narrows the dashboard
type DashboardFilter struct {
	Scope  Scope
	Search string
}

// DashboardOutput holds the two dashboard lists
type DashboardOutput struct {
	Upcoming []*entities.Meeting
	Past     []*entities.Meeting
}

// ArchiveFilter narrows the archive. Empty dates leave that side of the range open.
type ArchiveFilter struct {
	Search    string
	StartDate string
	EndDate   string
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title          string
	Agenda         string
	Date           string
	StartTime      string
	EndTime        string
	Location       string
	NotulisID      string
	ParticipantIDs []string
}

// UpdateDetailsInput represents input for editing a meeting's details
type UpdateDetailsInput struct {
	CreateMeetingInput
	Status entities.MeetingStatus
}

// ActionItemInput represents input for saving an action item
type ActionItemInput struct {
	ID       string
	Task     string
	PICID    string
	Deadline string
	Status   entities.ActionItemStatus
}
