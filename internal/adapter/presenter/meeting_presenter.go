package presenter

import (
	authDTO "github.com/johnquangdev/notulensi/internal/adapter/dto/auth"
	"github.com/johnquangdev/notulensi/internal/adapter/dto/meeting"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	meetingUsecase "github.com/johnquangdev/notulensi/internal/usecase/meeting"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	participants := make([]*authDTO.UserResponse, len(m.Participants))
	for i := range m.Participants {
		participants[i] = ToUserResponse(&m.Participants[i])
	}

	response := &meeting.MeetingResponse{
		ID:           m.ID,
		Title:        m.Title,
		Agenda:       m.Agenda,
		Date:         m.Date,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Location:     m.Location,
		Status:       string(m.Status),
		Notulis:      ToUserResponse(&m.Notulis),
		CreatedBy:    ToUserResponse(&m.CreatedBy),
		Participants: participants,
	}

	if m.Minutes != nil {
		minutes := &meeting.MinutesResponse{
			Summary:     m.Minutes.Summary,
			ActionItems: make([]*meeting.ActionItemResponse, len(m.Minutes.ActionItems)),
			Attachments: make([]*meeting.AttachmentResponse, len(m.Minutes.Attachments)),
		}
		for i := range m.Minutes.ActionItems {
			minutes.ActionItems[i] = ToActionItemResponse(&m.Minutes.ActionItems[i])
		}
		for i := range m.Minutes.Attachments {
			minutes.Attachments[i] = ToAttachmentResponse(&m.Minutes.Attachments[i])
		}
		response.Minutes = minutes
	}

	return response
}

// ToMeetingListResponse converts meetings to their DTOs
func ToMeetingListResponse(meetings []*entities.Meeting) []*meeting.MeetingResponse {
	out := make([]*meeting.MeetingResponse, len(meetings))
	for i, m := range meetings {
		out[i] = ToMeetingResponse(m)
	}
	return out
}

// ToDashboardResponse converts the dashboard split
func ToDashboardResponse(d *meetingUsecase.DashboardOutput) *meeting.DashboardResponse {
	return &meeting.DashboardResponse{
		Upcoming: ToMeetingListResponse(d.Upcoming),
		Past:     ToMeetingListResponse(d.Past),
	}
}

// ToActionItemResponse converts an ActionItem to its DTO
func ToActionItemResponse(a *entities.ActionItem) *meeting.ActionItemResponse {
	if a == nil {
		return nil
	}
	return &meeting.ActionItemResponse{
		ID:       a.ID,
		Task:     a.Task,
		PIC:      ToUserResponse(&a.PIC),
		Deadline: a.Deadline,
		Status:   string(a.Status),
	}
}

// ToAttachmentResponse converts an Attachment to its DTO
func ToAttachmentResponse(a *entities.Attachment) *meeting.AttachmentResponse {
	if a == nil {
		return nil
	}
	return &meeting.AttachmentResponse{
		ID:   a.ID,
		Name: a.Name,
		URL:  a.URL,
		Type: string(a.Type),
	}
}
