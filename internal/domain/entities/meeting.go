package entities

import (
	"strings"
	"time"
)

const (
	// DateLayout is the calendar-day format used for meeting dates and deadlines
	DateLayout = "2006-01-02"
	// ClockLayout is the wall-clock format used for start and end times
	ClockLayout = "15:04"
)

// MeetingStatus represents the lifecycle state of a meeting
type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "Scheduled"
	MeetingCompleted MeetingStatus = "Completed"
	MeetingCanceled  MeetingStatus = "Canceled"
)

// IsValid checks if the status is one of the known values
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingScheduled, MeetingCompleted, MeetingCanceled:
		return true
	}
	return false
}

// Minutes is the record written during or after a meeting
type Minutes struct {
	Summary     string       `json:"summary"`
	ActionItems []ActionItem `json:"actionItems"`
	Attachments []Attachment `json:"attachments"`
}

// Meeting is the aggregate root; minutes are embedded and never addressed on their own
type Meeting struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Agenda       string        `json:"agenda"`
	Date         string        `json:"date"`
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime"`
	Location     string        `json:"location"`
	Participants []User        `json:"participants"`
	Notulis      User          `json:"notulis"`
	CreatedBy    User          `json:"createdBy"`
	Status       MeetingStatus `json:"status"`
	Minutes      *Minutes      `json:"minutes,omitempty"`
}

// Day parses the meeting date. ok is false when the date is malformed.
func (m *Meeting) Day() (t time.Time, ok bool) {
	t, err := time.Parse(DateLayout, m.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// HasParticipant reports whether userID is in the participant list
func (m *Meeting) HasParticipant(userID string) bool {
	return m.participantIndex(userID) >= 0
}

func (m *Meeting) participantIndex(userID string) int {
	for i := range m.Participants {
		if m.Participants[i].ID == userID {
			return i
		}
	}
	return -1
}

// IsNotulis reports whether userID is the assigned note-taker
func (m *Meeting) IsNotulis(userID string) bool {
	return userID != "" && m.Notulis.ID == userID
}

// Involves reports whether the user attends or records the meeting
func (m *Meeting) Involves(userID string) bool {
	return m.IsNotulis(userID) || m.HasParticipant(userID)
}

// Matches reports whether title or agenda contains the search term, case-insensitively
func (m *Meeting) Matches(search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Title), search) ||
		strings.Contains(strings.ToLower(m.Agenda), search)
}

// EnsureMinutes creates empty minutes on first edit
func (m *Meeting) EnsureMinutes() *Minutes {
	if m.Minutes == nil {
		m.Minutes = &Minutes{
			ActionItems: []ActionItem{},
			Attachments: []Attachment{},
		}
	}
	return m.Minutes
}

// AddParticipant appends the user unless already present
func (m *Meeting) AddParticipant(u User) bool {
	if m.HasParticipant(u.ID) {
		return false
	}
	m.Participants = append(m.Participants, u)
	return true
}

// RemoveParticipant drops the user from the participant list
func (m *Meeting) RemoveParticipant(userID string) bool {
	i := m.participantIndex(userID)
	if i < 0 {
		return false
	}
	m.Participants = append(m.Participants[:i], m.Participants[i+1:]...)
	return true
}

// ActionItemIndex returns the position of the action item, or -1
func (m *Meeting) ActionItemIndex(itemID string) int {
	if m.Minutes == nil {
		return -1
	}
	for i := range m.Minutes.ActionItems {
		if m.Minutes.ActionItems[i].ID == itemID {
			return i
		}
	}
	return -1
}

// AttachmentIndex returns the position of the attachment, or -1
func (m *Meeting) AttachmentIndex(attachmentID string) int {
	if m.Minutes == nil {
		return -1
	}
	for i := range m.Minutes.Attachments {
		if m.Minutes.Attachments[i].ID == attachmentID {
			return i
		}
	}
	return -1
}

// Clone returns a fully independent copy
func (m *Meeting) Clone() *Meeting {
	if m == nil {
		return nil
	}
	c := *m
	if m.Participants != nil {
		c.Participants = make([]User, len(m.Participants))
		copy(c.Participants, m.Participants)
	}
	if m.Minutes != nil {
		mins := Minutes{Summary: m.Minutes.Summary}
		if m.Minutes.ActionItems != nil {
			mins.ActionItems = make([]ActionItem, len(m.Minutes.ActionItems))
			copy(mins.ActionItems, m.Minutes.ActionItems)
		}
		if m.Minutes.Attachments != nil {
			mins.Attachments = make([]Attachment, len(m.Minutes.Attachments))
			copy(mins.Attachments, m.Minutes.Attachments)
		}
		c.Minutes = &mins
	}
	return &c
}

// Validate checks the fields every stored meeting must carry
func (m *Meeting) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidMeeting
	}
	if _, ok := m.Day(); !ok {
		return ErrInvalidMeetingDate
	}
	for _, clock := range []string{m.StartTime, m.EndTime} {
		if _, err := time.Parse(ClockLayout, clock); err != nil {
			return ErrInvalidMeetingTime
		}
	}
	if !m.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
