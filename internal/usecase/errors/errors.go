package errors

import "errors"

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden access")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionStore       = errors.New("session store unavailable")
)

// Meeting errors
var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrInvalidNotulis     = errors.New("notulis must be an existing user with role Notulis")
	ErrInvalidParticipant = errors.New("participant does not exist")
)

// Minutes errors
var (
	ErrActionItemNotFound = errors.New("action item not found")
	ErrInvalidPIC         = errors.New("PIC must be a participant of the meeting")
	ErrInvalidStatus      = errors.New("unknown action item status")
	ErrAttachmentNotFound = errors.New("attachment not found")
)

// Export errors
var (
	ErrRenderFailed = errors.New("failed to render document")
)
