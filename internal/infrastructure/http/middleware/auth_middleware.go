package middleware

import (
	"context"
	stdErrors "errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/notulensi/errors"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/notulensi/internal/usecase/errors"
)

const (
	// UserKey is the echo context key for the authenticated user
	UserKey = "user"
	// SessionKey is the echo context key for the session id
	SessionKey = "session_id"
	// TokenCookie is the cookie carrying the access token for browser clients
	TokenCookie = "access_token"
)

// Authenticator resolves a bearer token to the logged-in user and its session
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, string, error)
}

// EchoAuth returns an Echo middleware that validates the token and sets
// "user" (*entities.User) and "session_id" (string) into Echo context
func EchoAuth(authn Authenticator, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c.Request())
			if token == "" {
				return reject(errors.ErrUnauthenticated())
			}

			user, sessionID, err := authn.Authenticate(c.Request().Context(), token)
			if err != nil {
				if logger != nil {
					logger.Debug("auth.rejected",
						zap.String("path", c.Path()),
						zap.Error(err),
					)
				}
				return reject(rejection(err))
			}

			c.Set(UserKey, user)
			c.Set(SessionKey, sessionID)

			return next(c)
		}
	}
}

type rejectionBody struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
}

func reject(appErr errors.AppError) *echo.HTTPError {
	return echo.NewHTTPError(appErr.HTTPCode, rejectionBody{Code: appErr.Code, Message: appErr.Message})
}

// rejection tells an expired token or ended session apart from a bad token
func rejection(err error) errors.AppError {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrTokenExpired):
		return errors.ErrTokenExpired()
	case stdErrors.Is(err, usecaseErrors.ErrSessionNotFound):
		return errors.ErrSessionExpired()
	default:
		return errors.ErrInvalidToken()
	}
}

// CurrentUser returns the authenticated user, or nil
func CurrentUser(c echo.Context) *entities.User {
	user, _ := c.Get(UserKey).(*entities.User)
	return user
}

// CurrentSession returns the authenticated session id, or ""
func CurrentSession(c echo.Context) string {
	sessionID, _ := c.Get(SessionKey).(string)
	return sessionID
}

// ExtractToken reads the token from the Authorization header, falling back to the cookie
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	cookie, err := r.Cookie(TokenCookie)
	if err == nil {
		return cookie.Value
	}

	return ""
}
