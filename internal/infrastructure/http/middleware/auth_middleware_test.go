package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/notulensi/internal/usecase/errors"
)

type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(_ context.Context, token string) (*entities.User, string, error) {
	switch token {
	case "good":
		return &entities.User{ID: "u1", Role: entities.RoleAdmin}, "s1", nil
	case "expired":
		return nil, "", usecaseErrors.ErrTokenExpired
	case "ended":
		return nil, "", usecaseErrors.ErrSessionNotFound
	default:
		return nil, "", fmt.Errorf("%w: %v", usecaseErrors.ErrTokenInvalid, errors.New("bad signature"))
	}
}

func TestEchoAuth(t *testing.T) {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, CurrentUser(c).ID+"/"+CurrentSession(c))
	}, EchoAuth(stubAuthenticator{}, nil))

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
		body   string
	}{
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, http.StatusOK, "u1/s1"},
		{"lowercase scheme", func(r *http.Request) { r.Header.Set("Authorization", "bearer good") }, http.StatusOK, "u1/s1"},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: TokenCookie, Value: "good"}) }, http.StatusOK, "u1/s1"},
		{"missing", func(r *http.Request) {}, http.StatusUnauthorized, `"code":"UNAUTHENTICATED"`},
		{"invalid", func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") }, http.StatusUnauthorized, `"code":"AUTH_INVALID_TOKEN"`},
		{"expired", func(r *http.Request) { r.Header.Set("Authorization", "Bearer expired") }, http.StatusUnauthorized, `"code":"AUTH_TOKEN_EXPIRED"`},
		{"session ended", func(r *http.Request) { r.Header.Set("Authorization", "Bearer ended") }, http.StatusUnauthorized, `"code":"AUTH_SESSION_EXPIRED"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != tt.status {
				t.Fatalf("status: got %d want %d", rec.Code, tt.status)
			}
			if tt.status == http.StatusOK && rec.Body.String() != tt.body {
				t.Fatalf("body: got %q want %q", rec.Body.String(), tt.body)
			}
			if tt.status != http.StatusOK && !strings.Contains(rec.Body.String(), tt.body) {
				t.Fatalf("body: got %q want it to contain %s", rec.Body.String(), tt.body)
			}
		})
	}
}
