package actionitem

import "github.com/johnquangdev/notulensi/internal/adapter/dto/meeting"

// MeetingRefResponse identifies the meeting an item belongs to
type MeetingRefResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ActionItemResponse is an action item tagged with its meeting
type ActionItemResponse struct {
	meeting.ActionItemResponse
	Meeting MeetingRefResponse `json:"meeting"`
}
