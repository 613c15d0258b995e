package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUser   = errors.New("invalid user")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidRole   = errors.New("invalid role")
	ErrNotANotulis   = errors.New("user is not a notulis")
	ErrNotAttending  = errors.New("user is not a participant of the meeting")
	ErrInvalidStatus = errors.New("invalid status")

	// Meeting errors
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrInvalidMeeting     = errors.New("invalid meeting")
	ErrInvalidMeetingDate = errors.New("meeting date must be YYYY-MM-DD")
	ErrInvalidMeetingTime = errors.New("meeting time must be HH:MM")

	// Minutes errors
	ErrActionItemNotFound = errors.New("action item not found")
	ErrAttachmentNotFound = errors.New("attachment not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionCorrupt  = errors.New("session record corrupt")
	ErrInvalidToken    = errors.New("invalid token")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)
