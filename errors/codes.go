package errors

import "strconv"

// ErrorCode is the machine-readable error identifier returned in API bodies.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK           ErrorCode = 200
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1007

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED       ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2002
	ErrorCode_AUTH_USER_NOT_FOUND      ErrorCode = 2003
	ErrorCode_AUTH_SESSION_EXPIRED     ErrorCode = 2004

	// Meetings and minutes
	ErrorCode_MEETING_NOT_FOUND       ErrorCode = 3000
	ErrorCode_MEETING_INVALID_NOTULIS ErrorCode = 3001
	ErrorCode_MEETING_INVALID_MEMBER  ErrorCode = 3002
	ErrorCode_ACTION_ITEM_NOT_FOUND   ErrorCode = 3100
	ErrorCode_ACTION_ITEM_INVALID_PIC ErrorCode = 3101
	ErrorCode_ACTION_ITEM_BAD_STATUS  ErrorCode = 3102
	ErrorCode_ATTACHMENT_NOT_FOUND    ErrorCode = 3200

	// Export
	ErrorCode_EXPORT_RENDER_FAILED ErrorCode = 4000

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED   ErrorCode = 5000
	ErrorCode_INTEGRATION_CACHE_FAILED     ErrorCode = 5001
	ErrorCode_INTEGRATION_MESSAGING_FAILED ErrorCode = 5002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                      "HTTP_OK",
	ErrorCode_INTERNAL:                     "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:             "INVALID_ARGUMENT",
	ErrorCode_PERMISSION_DENIED:            "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:              "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:              "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:           "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:           "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:     "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:          "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_SESSION_EXPIRED:         "AUTH_SESSION_EXPIRED",
	ErrorCode_MEETING_NOT_FOUND:            "MEETING_NOT_FOUND",
	ErrorCode_MEETING_INVALID_NOTULIS:      "MEETING_INVALID_NOTULIS",
	ErrorCode_MEETING_INVALID_MEMBER:       "MEETING_INVALID_MEMBER",
	ErrorCode_ACTION_ITEM_NOT_FOUND:        "ACTION_ITEM_NOT_FOUND",
	ErrorCode_ACTION_ITEM_INVALID_PIC:      "ACTION_ITEM_INVALID_PIC",
	ErrorCode_ACTION_ITEM_BAD_STATUS:       "ACTION_ITEM_BAD_STATUS",
	ErrorCode_ATTACHMENT_NOT_FOUND:         "ATTACHMENT_NOT_FOUND",
	ErrorCode_EXPORT_RENDER_FAILED:         "EXPORT_RENDER_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED:   "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:     "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_MESSAGING_FAILED: "INTEGRATION_MESSAGING_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText renders the code by name in JSON bodies.
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
