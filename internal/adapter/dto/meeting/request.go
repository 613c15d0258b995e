package meeting

// CreateMeetingRequest represents the request to schedule a meeting
type CreateMeetingRequest struct {
	Title          string   `json:"title" validate:"required,max=255"`
	Agenda         string   `json:"agenda" validate:"max=2000"`
	Date           string   `json:"date" validate:"required,calendar_date"`
	StartTime      string   `json:"start_time" validate:"required,clock"`
	EndTime        string   `json:"end_time" validate:"required,clock"`
	Location       string   `json:"location" validate:"max=255"`
	NotulisID      string   `json:"notulis_id" validate:"required"`
	ParticipantIDs []string `json:"participant_ids" validate:"dive,required"`
}

// UpdateMeetingRequest represents the request to edit a meeting's details
type UpdateMeetingRequest struct {
	CreateMeetingRequest
	Status string `json:"status" validate:"omitempty,meeting_status"`
}

// DashboardRequest represents query parameters for the dashboard
type DashboardRequest struct {
	Scope  string `query:"scope" validate:"omitempty,oneof=all my"`
	Search string `query:"search"`
}

// ArchiveRequest represents query parameters for the archive
type ArchiveRequest struct {
	Search    string `query:"search"`
	StartDate string `query:"start_date" validate:"omitempty,calendar_date"`
	EndDate   string `query:"end_date" validate:"omitempty,calendar_date"`
}

// UpdateSummaryRequest represents the request to replace the minutes summary
type UpdateSummaryRequest struct {
	Summary string `json:"summary"`
}

// ActionItemRequest represents the request to create or update an action item
type ActionItemRequest struct {
	Task     string `json:"task" validate:"required"`
	PICID    string `json:"pic_id" validate:"required"`
	Deadline string `json:"deadline" validate:"required,calendar_date"`
	Status   string `json:"status" validate:"omitempty,action_status"`
}

// AddAttachmentRequest represents the request to record an attachment
type AddAttachmentRequest struct {
	FileName string `json:"file_name" validate:"required,max=255"`
}

// AddParticipantRequest represents the request to add a participant
type AddParticipantRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// ExportRequest represents query parameters for a minutes export
type ExportRequest struct {
	Locale string `query:"locale" validate:"omitempty,oneof=id en"`
}
