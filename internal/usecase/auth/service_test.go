package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/johnquangdev/notulensi/internal/adapter/repository"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/notulensi/internal/usecase/errors"
	"github.com/johnquangdev/notulensi/pkg/jwt"
)

func newService(t *testing.T) (*Service, cache.Store) {
	t.Helper()
	store := cache.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	return newServiceWith(t, store, jwt.NewManager("test-secret", time.Hour)), store
}

func newServiceWith(t *testing.T, store cache.Store, manager *jwt.Manager) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	users := repository.NewUserRepository([]*entities.User{
		{ID: "u1", Name: "Anisa Rahmawati", Email: "anisa.admin@example.com", Role: entities.RoleAdmin, PasswordHash: string(hash)},
		{ID: "u2", Name: "Budi Setiawan", Email: "budi.notulis@example.com", Role: entities.RoleNotulis, PasswordHash: string(hash)},
	})
	return NewService(users, repository.NewSessionRepository(store), manager, time.Hour, nil)
}

// downStore fails every call, like an unreachable Redis
type downStore struct{}

func (downStore) Set(context.Context, string, string, time.Duration) error {
	return errors.New("connection refused")
}
func (downStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}
func (downStore) Delete(context.Context, string) error { return errors.New("connection refused") }
func (downStore) Close() error                         { return nil }

func TestLoginAndAuthenticate(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "  ANISA.admin@example.com ", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.User.ID != "u1" || res.AccessToken == "" || res.ExpiresIn != 3600 {
		t.Fatalf("response: %+v", res)
	}

	raw, ok, err := store.Get(ctx, entities.SessionKey(res.SessionID))
	if err != nil || !ok {
		t.Fatalf("user record not persisted: %v %v", ok, err)
	}
	if raw == "" || strings.Contains(raw, "$2a$") {
		t.Fatalf("stored record must not carry the password hash: %s", raw)
	}

	user, sessionID, err := svc.Authenticate(ctx, res.AccessToken)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.ID != "u1" || sessionID != res.SessionID {
		t.Fatalf("authenticated: %s %s", user.ID, sessionID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for _, tc := range []struct{ email, password string }{
		{"anisa.admin@example.com", "wrong"},
		{"nobody@example.com", "password123"},
	} {
		if _, err := svc.Login(ctx, tc.email, tc.password); !errors.Is(err, usecaseErrors.ErrInvalidCredentials) {
			t.Errorf("%s: got %v", tc.email, err)
		}
	}
}

func TestLogoutEndsSession(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "budi.notulis@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(ctx, res.SessionID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok := svc.CurrentUser(ctx, res.SessionID); ok {
		t.Fatalf("session should be gone")
	}
	if _, _, err := svc.Authenticate(ctx, res.AccessToken); !errors.Is(err, usecaseErrors.ErrSessionNotFound) {
		t.Fatalf("Authenticate after logout: got %v", err)
	}
}

func TestCorruptRecordMeansLoggedOut(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	if err := store.Set(ctx, entities.SessionKey("s1"), "{not json", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok := svc.CurrentUser(ctx, "s1"); ok {
		t.Fatalf("corrupt record should read as logged out")
	}
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc, _ := newService(t)
	if _, _, err := svc.Authenticate(context.Background(), "not-a-token"); !errors.Is(err, usecaseErrors.ErrTokenInvalid) {
		t.Fatalf("got %v", err)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	store := cache.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	svc := newServiceWith(t, store, jwt.NewManager("test-secret", -time.Minute))
	ctx := context.Background()

	res, err := svc.Login(ctx, "anisa.admin@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	_, _, err = svc.Authenticate(ctx, res.AccessToken)
	if !errors.Is(err, usecaseErrors.ErrTokenExpired) {
		t.Fatalf("got %v", err)
	}
	if errors.Is(err, usecaseErrors.ErrTokenInvalid) {
		t.Fatalf("expired token reported as invalid")
	}
}

func TestSessionStoreFailure(t *testing.T) {
	svc := newServiceWith(t, downStore{}, jwt.NewManager("test-secret", time.Hour))
	ctx := context.Background()

	if _, err := svc.Login(ctx, "anisa.admin@example.com", "password123"); !errors.Is(err, usecaseErrors.ErrSessionStore) {
		t.Fatalf("Login: got %v", err)
	}
	if err := svc.Logout(ctx, "s1"); !errors.Is(err, usecaseErrors.ErrSessionStore) {
		t.Fatalf("Logout: got %v", err)
	}
}
