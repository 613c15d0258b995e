package entities

import "time"

// ActionItemStatus is the progress state of an action item
type ActionItemStatus string

const (
	ActionItemOpen       ActionItemStatus = "Open"
	ActionItemInProgress ActionItemStatus = "On Progress"
	ActionItemDone       ActionItemStatus = "Done"
)

// ActionItemStatuses lists every status in display order
var ActionItemStatuses = []ActionItemStatus{ActionItemOpen, ActionItemInProgress, ActionItemDone}

// IsValid checks if the status is one of the known values
func (s ActionItemStatus) IsValid() bool {
	switch s {
	case ActionItemOpen, ActionItemInProgress, ActionItemDone:
		return true
	}
	return false
}

// ActionItem is a task recorded in a meeting's minutes
type ActionItem struct {
	ID       string           `json:"id" yaml:"id"`
	Task     string           `json:"task" yaml:"task"`
	PIC      User             `json:"pic" yaml:"-"`
	Deadline string           `json:"deadline" yaml:"deadline"`
	Status   ActionItemStatus `json:"status" yaml:"status"`
}

// DeadlineTime parses the deadline as a calendar day.
// ok is false when the deadline is not in YYYY-MM-DD form.
func (a ActionItem) DeadlineTime() (t time.Time, ok bool) {
	t, err := time.Parse(DateLayout, a.Deadline)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MeetingRef identifies the meeting an enriched action item came from
type MeetingRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// EnrichedActionItem is an action item tagged with its owning meeting.
// It is derived on every read and never stored.
type EnrichedActionItem struct {
	ActionItem
	Meeting MeetingRef `json:"meeting"`
}
