package common

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Info    string `json:"info,omitempty"`
}

// SuccessResponse represents a standard success envelope
type SuccessResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MessageResponse carries a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// ListResponse represents an unpaginated list response
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int         `json:"total"`
}

// NewListResponse wraps items with their count
func NewListResponse(items interface{}, total int) *ListResponse {
	return &ListResponse{Items: items, Total: total}
}
