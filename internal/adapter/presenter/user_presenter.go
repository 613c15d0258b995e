package presenter

import (
	authDTO "github.com/johnquangdev/notulensi/internal/adapter/dto/auth"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}
	return &authDTO.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
		Avatar: u.Avatar,
	}
}

// ToUserListResponse converts users to their DTOs
func ToUserListResponse(users []*entities.User) []*authDTO.UserResponse {
	out := make([]*authDTO.UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}

// ToAuthResponse converts usecase AuthResponse to DTO AuthResponse
func ToAuthResponse(usecaseResp *auth.AuthResponse) *authDTO.AuthResponse {
	if usecaseResp == nil {
		return nil
	}

	return &authDTO.AuthResponse{
		AccessToken: usecaseResp.AccessToken,
		ExpiresIn:   int(usecaseResp.ExpiresIn),
		TokenType:   "Bearer",
		User:        ToUserResponse(usecaseResp.User),
	}
}
