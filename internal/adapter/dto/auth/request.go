package auth

// LoginRequest represents the request to log in with email and password
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ListUsersRequest represents query parameters for the user directory
type ListUsersRequest struct {
	Role string `query:"role" validate:"omitempty,oneof=Admin Notulis Participant"`
}
