package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authDTO "github.com/johnquangdev/notulensi/internal/adapter/dto/auth"
	"github.com/johnquangdev/notulensi/internal/adapter/dto/common"
	"github.com/johnquangdev/notulensi/internal/adapter/presenter"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/domain/repositories"
)

// User serves the user directory used by participant and PIC pickers
type User struct {
	users  repositories.UserRepository
	logger *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users repositories.UserRepository, logger *zap.Logger) *User {
	return &User{users: users, logger: logger}
}

// List handles GET /users
// @Summary      List users
// @Description  Lists the user directory, optionally by role
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        role  query     string  false  "Admin, Notulis or Participant"
// @Success      200   {object}  common.ListResponse
// @Router       /users [get]
func (h *User) List(c echo.Context) error {
	var req authDTO.ListUsersRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	var (
		users []*entities.User
		err   error
	)
	if req.Role != "" {
		users, err = h.users.ListByRole(c.Request().Context(), entities.UserRole(req.Role))
	} else {
		users, err = h.users.List(c.Request().Context())
	}
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.NewListResponse(presenter.ToUserListResponse(users), len(users)))
}
