package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/notulensi/errors"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	httpmw "github.com/johnquangdev/notulensi/internal/infrastructure/http/middleware"
	usecaseErrors "github.com/johnquangdev/notulensi/internal/usecase/errors"
	"github.com/johnquangdev/notulensi/internal/usecase/export"
	pkgvalidator "github.com/johnquangdev/notulensi/pkg/validator"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	appErr := toAppError(c, err)
	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps use case and domain errors onto API errors
func toAppError(c echo.Context, err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	meetingID := c.Param("id")
	if meetingID == "" {
		meetingID = c.Param("meetingId")
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		appErr = errors.ErrInvalidArgument("Invalid input")
	case stdErrors.Is(err, export.ErrUnsupportedLocale):
		appErr = errors.ErrInvalidArgument("Unsupported locale")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidCredentials):
		appErr = errors.ErrInvalidCredentials()
	case stdErrors.Is(err, usecaseErrors.ErrSessionStore):
		appErr = errors.ErrCacheFailed("session", err)
	case stdErrors.Is(err, usecaseErrors.ErrTokenExpired):
		appErr = errors.ErrTokenExpired()
	case stdErrors.Is(err, usecaseErrors.ErrTokenInvalid):
		appErr = errors.ErrInvalidToken()
	case stdErrors.Is(err, usecaseErrors.ErrSessionNotFound):
		appErr = errors.ErrSessionExpired()
	case stdErrors.Is(err, usecaseErrors.ErrUnauthorized):
		appErr = errors.ErrUnauthenticated()
	case stdErrors.Is(err, usecaseErrors.ErrForbidden):
		appErr = errors.ErrPermissionDenied(c.Request().Method + " " + c.Path())
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		appErr = errors.ErrMeetingNotFound(meetingID)
	case stdErrors.Is(err, entities.ErrUserNotFound):
		appErr = errors.ErrUserNotFound(c.Param("userId"))
	case stdErrors.Is(err, usecaseErrors.ErrInvalidNotulis):
		appErr = errors.ErrInvalidNotulis("")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidParticipant):
		appErr = errors.ErrInvalidParticipant("")
	case stdErrors.Is(err, usecaseErrors.ErrActionItemNotFound):
		appErr = errors.ErrActionItemNotFound(meetingID, c.Param("itemId"))
	case stdErrors.Is(err, usecaseErrors.ErrInvalidPIC):
		appErr = errors.ErrInvalidPIC("")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidStatus):
		appErr = errors.ErrInvalidActionStatus("")
	case stdErrors.Is(err, usecaseErrors.ErrAttachmentNotFound):
		appErr = errors.ErrAttachmentNotFound(meetingID, c.Param("attachmentId"))
	case stdErrors.Is(err, usecaseErrors.ErrRenderFailed):
		return errors.ErrExportFailed(meetingID, err)
	default:
		return errors.ErrInternal(err)
	}

	for k, v := range appErr.Details {
		if v == "" {
			delete(appErr.Details, k)
		}
	}
	appErr.Raw = err
	return appErr
}

// bind parses and validates the request, reporting failures as 400 with field details
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload().WithDetail("body", err.Error())
	}
	if err := c.Validate(req); err != nil {
		appErr := errors.ErrInvalidArgument("Validation failed")
		for field, tag := range pkgvalidator.FieldErrors(err) {
			appErr = appErr.WithDetail(field, tag)
		}
		return appErr
	}
	return nil
}

// SetCookie sets an HTTP cookie with common security settings
func SetCookie(c echo.Context, name, value string, maxAge int, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// DeleteCookie deletes an HTTP cookie by setting MaxAge to -1
func DeleteCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:   name,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// actor returns the authenticated user set by the auth middleware
func actor(c echo.Context) *entities.User {
	return httpmw.CurrentUser(c)
}
