package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authDTO "github.com/johnquangdev/notulensi/internal/adapter/dto/auth"
	"github.com/johnquangdev/notulensi/internal/adapter/presenter"
	httpmw "github.com/johnquangdev/notulensi/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/notulensi/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService  *auth.Service
	secureCookie bool
	logger       *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, secureCookie bool, logger *zap.Logger) *Auth {
	return &Auth{
		authService:  authService,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Login handles POST /auth/login
// @Summary      Log in
// @Description  Checks email and password against the user directory and opens a session
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      authDTO.LoginRequest  true  "Credentials"
// @Success      200      {object}  authDTO.AuthResponse
// @Failure      400      {object}  common.ErrorResponse  "Validation failed"
// @Failure      401      {object}  common.ErrorResponse  "Invalid email or password"
// @Router       /auth/login [post]
func (h *Auth) Login(c echo.Context) error {
	var req authDTO.LoginRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	SetCookie(c, httpmw.TokenCookie, resp.AccessToken, int(resp.ExpiresIn), h.secureCookie)
	return HandleSuccess(h.logger, c, presenter.ToAuthResponse(resp))
}

// Logout handles POST /auth/logout
// @Summary      Log out
// @Description  Deletes the persisted user record of the current session
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.MessageResponse
// @Failure      401  {object}  common.ErrorResponse
// @Router       /auth/logout [post]
func (h *Auth) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), httpmw.CurrentSession(c)); err != nil {
		return HandleError(h.logger, c, err)
	}
	DeleteCookie(c, httpmw.TokenCookie)
	return HandleSuccess(h.logger, c, map[string]string{
		"message": "Logged out successfully",
	})
}

// Me handles GET /auth/me
// @Summary      Current user
// @Description  Returns the user record stored for the current session
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authDTO.UserResponse
// @Failure      401  {object}  common.ErrorResponse
// @Router       /auth/me [get]
func (h *Auth) Me(c echo.Context) error {
	user := actor(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return HandleSuccess(h.logger, c, presenter.ToUserResponse(user))
}
