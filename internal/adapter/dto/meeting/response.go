package meeting

import "github.com/johnquangdev/notulensi/internal/adapter/dto/auth"

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Agenda       string               `json:"agenda"`
	Date         string               `json:"date"`
	StartTime    string               `json:"start_time"`
	EndTime      string               `json:"end_time"`
	Location     string               `json:"location"`
	Status       string               `json:"status"`
	Notulis      *auth.UserResponse   `json:"notulis"`
	CreatedBy    *auth.UserResponse   `json:"created_by"`
	Participants []*auth.UserResponse `json:"participants"`
	Minutes      *MinutesResponse     `json:"minutes,omitempty"`
}

// MinutesResponse represents the minutes of a meeting
type MinutesResponse struct {
	Summary     string                `json:"summary"`
	ActionItems []*ActionItemResponse `json:"action_items"`
	Attachments []*AttachmentResponse `json:"attachments"`
}

// ActionItemResponse represents an action item
type ActionItemResponse struct {
	ID       string             `json:"id"`
	Task     string             `json:"task"`
	PIC      *auth.UserResponse `json:"pic"`
	Deadline string             `json:"deadline"`
	Status   string             `json:"status"`
}

// AttachmentResponse represents an attachment
type AttachmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// DashboardResponse splits meetings into upcoming and past
type DashboardResponse struct {
	Upcoming []*MeetingResponse `json:"upcoming"`
	Past     []*MeetingResponse `json:"past"`
}

// ArchivedExportResponse represents an archived export
type ArchivedExportResponse struct {
	Key      string `json:"key"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
