package meeting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/notulensi/internal/usecase/errors"
	"github.com/johnquangdev/notulensi/internal/usecase/permission"
)

// MeetingService handles meeting business logic
type MeetingService struct {
	meetings repositories.MeetingRepository
	users    repositories.UserRepository
	gate     permission.Gate
	logger   *zap.Logger

	// Now is the clock used to split upcoming and past meetings
	Now func() time.Time
	// NewID generates action item and attachment IDs
	NewID func() string
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetings repositories.MeetingRepository,
	users repositories.UserRepository,
	gate permission.Gate,
	logger *zap.Logger,
) *MeetingService {
	return &MeetingService{
		meetings: meetings,
		users:    users,
		gate:     gate,
		logger:   logger,
		Now:      time.Now,
		NewID:    uuid.NewString,
	}
}

// today is the current calendar day, comparable with Meeting.Day
func (s *MeetingService) today() time.Time {
	y, m, d := s.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Dashboard splits the visible meetings into upcoming and past.
// Meetings with a malformed date only appear once completed.
func (s *MeetingService) Dashboard(ctx context.Context, actor *entities.User, filter DashboardFilter) (*DashboardOutput, error) {
	if filter.Scope == ScopeMy && actor == nil {
		return nil, usecaseErrors.ErrUnauthorized
	}

	today := s.today()
	out := &DashboardOutput{
		Upcoming: []*entities.Meeting{},
		Past:     []*entities.Meeting{},
	}
	for _, m := range s.meetings.List(ctx) {
		if filter.Scope == ScopeMy && !m.Involves(actor.ID) {
			continue
		}
		if !m.Matches(filter.Search) {
			continue
		}

		day, ok := m.Day()
		switch {
		case ok && !day.Before(today) && m.Status != entities.MeetingCompleted:
			out.Upcoming = append(out.Upcoming, m)
		case (ok && day.Before(today)) || m.Status == entities.MeetingCompleted:
			out.Past = append(out.Past, m)
		}
	}

	sortByDay(out.Upcoming, false)
	sortByDay(out.Past, true)
	return out, nil
}

// Archive lists meetings dated before today, newest first
func (s *MeetingService) Archive(ctx context.Context, filter ArchiveFilter) ([]*entities.Meeting, error) {
	start, hasStart, err := parseBound(filter.StartDate)
	if err != nil {
		return nil, err
	}
	end, hasEnd, err := parseBound(filter.EndDate)
	if err != nil {
		return nil, err
	}

	today := s.today()
	out := []*entities.Meeting{}
	for _, m := range s.meetings.List(ctx) {
		day, ok := m.Day()
		if !ok || !day.Before(today) {
			continue
		}
		if !m.Matches(filter.Search) {
			continue
		}
		if hasStart && day.Before(start) {
			continue
		}
		if hasEnd && day.After(end) {
			continue
		}
		out = append(out, m)
	}

	sortByDay(out, true)
	return out, nil
}

func parseBound(value string) (time.Time, bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(entities.DateLayout, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: date %q must be YYYY-MM-DD", usecaseErrors.ErrInvalidInput, value)
	}
	return t, true, nil
}

func sortByDay(meetings []*entities.Meeting, newestFirst bool) {
	sort.SliceStable(meetings, func(i, j int) bool {
		a, _ := meetings[i].Day()
		b, _ := meetings[j].Day()
		if newestFirst {
			return a.After(b)
		}
		return a.Before(b)
	})
}

// Create schedules a new meeting
func (s *MeetingService) Create(ctx context.Context, actor *entities.User, input CreateMeetingInput) (*entities.Meeting, error) {
	if actor == nil {
		return nil, usecaseErrors.ErrUnauthorized
	}

	m := &entities.Meeting{
		Status:    entities.MeetingScheduled,
		CreatedBy: *actor,
	}
	if err := s.applyDetails(ctx, m, input); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidInput, err)
	}

	created := s.meetings.Create(ctx, m)

	if s.logger != nil {
		s.logger.Info("meeting.created",
			zap.String("meeting_id", created.ID),
			zap.String("created_by", actor.ID),
			zap.Int("participants", len(created.Participants)),
		)
	}

	return created, nil
}

// applyDetails resolves the notulis and participants and copies the scheduling fields
func (s *MeetingService) applyDetails(ctx context.Context, m *entities.Meeting, input CreateMeetingInput) error {
	notulis, err := s.users.FindByID(ctx, input.NotulisID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return fmt.Errorf("%w: %q", usecaseErrors.ErrInvalidNotulis, input.NotulisID)
		}
		return err
	}
	if !notulis.CanTakeMinutes() {
		return fmt.Errorf("%w: %q has role %s", usecaseErrors.ErrInvalidNotulis, notulis.ID, notulis.Role)
	}

	participants := make([]entities.User, 0, len(input.ParticipantIDs))
	seen := make(map[string]bool, len(input.ParticipantIDs))
	for _, id := range input.ParticipantIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		u, err := s.users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, entities.ErrUserNotFound) {
				return fmt.Errorf("%w: %q", usecaseErrors.ErrInvalidParticipant, id)
			}
			return err
		}
		participants = append(participants, *u)
	}

	m.Title = strings.TrimSpace(input.Title)
	m.Agenda = input.Agenda
	m.Date = input.Date
	m.StartTime = input.StartTime
	m.EndTime = input.EndTime
	m.Location = input.Location
	m.Notulis = *notulis
	m.Participants = participants
	return nil
}

// Get retrieves a meeting the actor may view
func (s *MeetingService) Get(ctx context.Context, actor *entities.User, meetingID string) (*entities.Meeting, error) {
	m, ok := s.meetings.FindByID(ctx, meetingID)
	if !ok {
		return nil, usecaseErrors.ErrMeetingNotFound
	}
	if !s.gate.CanView(actor, m) {
		return nil, usecaseErrors.ErrForbidden
	}
	return m, nil
}

// UpdateDetails replaces the meeting's scheduling details, keeping its minutes
func (s *MeetingService) UpdateDetails(ctx context.Context, actor *entities.User, meetingID string, input UpdateDetailsInput) (*entities.Meeting, error) {
	m, err := s.loadFor(ctx, actor, meetingID, s.gate.CanEditDetails)
	if err != nil {
		return nil, err
	}

	if err := s.applyDetails(ctx, m, input.CreateMeetingInput); err != nil {
		return nil, err
	}
	if input.Status != "" {
		m.Status = input.Status
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidInput, err)
	}

	return s.save(ctx, m, "meeting.details_updated", actor)
}

// Delete removes a meeting
func (s *MeetingService) Delete(ctx context.Context, actor *entities.User, meetingID string) error {
	if _, err := s.loadFor(ctx, actor, meetingID, s.gate.CanEditDetails); err != nil {
		return err
	}
	if !s.meetings.Delete(ctx, meetingID) {
		return usecaseErrors.ErrMeetingNotFound
	}

	if s.logger != nil {
		s.logger.Info("meeting.deleted",
			zap.String("meeting_id", meetingID),
			zap.String("actor_id", actor.ID),
		)
	}
	return nil
}

// UpdateSummary replaces the minutes summary
func (s *MeetingService) UpdateSummary(ctx context.Context, actor *entities.User, meetingID, summary string) (*entities.Meeting, error) {
	m, err := s.loadFor(ctx, actor, meetingID, s.gate.CanEditMinutes)
	if err != nil {
		return nil, err
	}
	m.EnsureMinutes().Summary = summary
	return s.save(ctx, m, "minutes.summary_updated", actor)
}

// SaveActionItem creates an action item when input.ID is empty, updates it otherwise.
// The PIC must already be a participant of the meeting.
func (s *MeetingService) SaveActionItem(ctx context.Context, actor *entities.User, meetingID string, input ActionItemInput) (*entities.Meeting, *entities.ActionItem, error) {
	m, err := s.loadFor(ctx, actor, meetingID, s.gate.CanEditMinutes)
	if err != nil {
		return nil, nil, err
	}

	pic, ok := participant(m, input.PICID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", usecaseErrors.ErrInvalidPIC, input.PICID)
	}
	if strings.TrimSpace(input.Task) == "" {
		return nil, nil, fmt.Errorf("%w: task is required", usecaseErrors.ErrInvalidInput)
	}

	minutes := m.EnsureMinutes()
	item := entities.ActionItem{
		ID:       input.ID,
		Task:     input.Task,
		PIC:      pic,
		Deadline: input.Deadline,
		Status:   input.Status,
	}

	if item.ID == "" {
		item.ID = s.NewID()
		item.Status = entities.ActionItemOpen
		minutes.ActionItems = append(minutes.ActionItems, item)
	} else {
		i := m.ActionItemIndex(item.ID)
		if i < 0 {
			return nil, nil, usecaseErrors.ErrActionItemNotFound
		}
		if item.Status == "" {
			item.Status = minutes.ActionItems[i].Status
		}
		if !item.Status.IsValid() {
			return nil, nil, fmt.Errorf("%w: %q", usecaseErrors.ErrInvalidStatus, item.Status)
		}
		minutes.ActionItems[i] = item
	}

	saved, err := s.save(ctx, m, "minutes.action_item_saved", actor)
	if err != nil {
		return nil, nil, err
	}
	return saved, &item, nil
}

func participant(m *entities.Meeting, userID string) (entities.User, bool) {
	for _, p := range m.Participants {
		if p.ID == userID {
			return p, true
		}
	}
	return entities.User{}, false
}

// DeleteActionItem removes an action item from the minutes
func (s *MeetingService) DeleteActionItem(ctx context.Context, actor *entities.User, meetingID, itemID string) (*entities.Meeting, error) {
	m, err := s.loadFor(ctx, actor, meetingID, s.gate.CanEditMinutes)
	if err != nil {
		return nil, err
	}
	i := m.ActionItemIndex(itemID)
	if i < 0 {
		return nil, usecaseErrors.ErrActionItemNotFound
	}
	items := m.Minutes.ActionItems
	m.Minutes.ActionItems = append(items[:i], items[i+1:]...)
	return s.save(ctx, m, "minutes.action_item_deleted", actor)
}

// AddAttachment records a file reference; the type is inferred from the name
func (s *MeetingService) AddAttachment(ctx context.Context, actor *entities.User, meetingID, fileName string) (*entities.Meeting, *entities.Attachment, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, nil, fmt.Errorf("%w: file name is required", usecaseErrors.ErrInvalidInput)
	}
	m, err := s.loadFor(ctx, actor, meetingID, s.gate.CanEditMinutes)
	if err != nil {
		return nil, nil, err
	}

	att := entities.Attachment{
		ID:   s.NewID(),
		Name: fileName,
		URL:  "#",
		Type: entities.InferAttachmentType(fileName),
	}
	minutes := m.EnsureMinutes()
	minutes.Attachments = append(minutes.Attachments, att)

	saved, err := s.save(ctx, m, "minutes.attachment_added", actor)
	if err != nil {
		return nil, nil, err
	}
	return saved, &att, nil
}

// DeleteAttachment removes a file reference from the minutes
func (s *MeetingService) DeleteAttachment(ctx context.Context, actor *entities.User, meetingID, attachmentID string) (*entities.Meeting, error) {
	m, err := s.loadFor(ctx, actor, meetingID, s.gate.CanEditMinutes)
	if err != nil {
		return nil, err
	}
	i := m.AttachmentIndex(attachmentID)
	if i < 0 {
		return nil, usecaseErrors.ErrAttachmentNotFound
	}
	atts := m.Minutes.Attachments
	m.Minutes.Attachments = append(atts[:i], atts[i+1:]...)
	return s.save(ctx, m, "minutes.attachment_deleted", actor)
}

// AddParticipant adds a directory user to the meeting
func (s *MeetingService) AddParticipant(ctx context.Context, actor *entities.User, meetingID, userID string) (*entities.Meeting, error) {
	m, err := s.loadFor(ctx, actor, meetingID, s.gate.CanEditMinutes)
	if err != nil {
		return nil, err
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %q", usecaseErrors.ErrInvalidParticipant, userID)
		}
		return nil, err
	}
	if !m.AddParticipant(*u) {
		return m, nil
	}
	return s.save(ctx, m, "meeting.participant_added", actor)
}

// RemoveParticipant removes a user from the meeting. Removing a non-participant is a no-op.
func (s *MeetingService) RemoveParticipant(ctx context.Context, actor *entities.User, meetingID, userID string) (*entities.Meeting, error) {
	m, err := s.loadFor(ctx, actor, meetingID, s.gate.CanEditMinutes)
	if err != nil {
		return nil, err
	}
	if !m.RemoveParticipant(userID) {
		return m, nil
	}
	return s.save(ctx, m, "meeting.participant_removed", actor)
}

// loadFor fetches a meeting snapshot and checks the actor against allowed
func (s *MeetingService) loadFor(ctx context.Context, actor *entities.User, meetingID string, allowed func(*entities.User, *entities.Meeting) bool) (*entities.Meeting, error) {
	if actor == nil {
		return nil, usecaseErrors.ErrUnauthorized
	}
	m, ok := s.meetings.FindByID(ctx, meetingID)
	if !ok {
		return nil, usecaseErrors.ErrMeetingNotFound
	}
	if !allowed(actor, m) {
		return nil, usecaseErrors.ErrForbidden
	}
	return m, nil
}

// save writes the whole meeting back; the meeting may have been deleted meanwhile
func (s *MeetingService) save(ctx context.Context, m *entities.Meeting, event string, actor *entities.User) (*entities.Meeting, error) {
	if !s.meetings.Update(ctx, m) {
		return nil, usecaseErrors.ErrMeetingNotFound
	}
	if s.logger != nil {
		s.logger.Info(event,
			zap.String("meeting_id", m.ID),
			zap.String("actor_id", actor.ID),
		)
	}
	return m, nil
}
