package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/notulensi/internal/usecase/errors"
	"github.com/johnquangdev/notulensi/pkg/jwt"
)

// Service handles email/password login and the persisted user record
type Service struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	jwtManager  *jwt.Manager
	sessionTTL  time.Duration
	logger      *zap.Logger
}

// NewService creates a new auth service
func NewService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	jwtManager *jwt.Manager,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtManager:  jwtManager,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	User        *entities.User `json:"user"`
	AccessToken string         `json:"access_token"`
	ExpiresIn   int64          `json:"expires_in"`
	SessionID   string         `json:"session_id,omitempty"`
}

// Login checks the credentials, stores the user record for a new session and issues a token
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.TrimSpace(email)
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if s.logger != nil {
			s.logger.Info("auth.login_rejected", zap.String("user_id", user.ID))
		}
		return nil, usecaseErrors.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	if err := s.sessionRepo.Save(ctx, sessionID, user, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("%w: create session: %v", usecaseErrors.ErrSessionStore, err)
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, sessionID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("auth.login",
			zap.String("user_id", user.ID),
			zap.String("session_id", sessionID),
		)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.jwtManager.GetAccessExpiry().Seconds()),
		SessionID:   sessionID,
	}, nil
}

// CurrentUser returns the user stored for the session.
// A missing or unreadable record means logged out.
func (s *Service) CurrentUser(ctx context.Context, sessionID string) (*entities.User, bool) {
	user, err := s.sessionRepo.Load(ctx, sessionID)
	if err == nil {
		return user, true
	}
	if s.logger != nil {
		switch {
		case errors.Is(err, entities.ErrSessionNotFound):
		case errors.Is(err, entities.ErrSessionCorrupt):
			s.logger.Warn("auth.session_corrupt",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		default:
			s.logger.Error("auth.session_load_failed",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		}
	}
	return nil, false
}

// Authenticate resolves a bearer token to the logged-in user and its session
func (s *Service) Authenticate(ctx context.Context, token string) (*entities.User, string, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, "", usecaseErrors.ErrTokenExpired
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", usecaseErrors.ErrTokenInvalid, err)
	}
	user, ok := s.CurrentUser(ctx, claims.SessionID)
	if !ok {
		return nil, "", usecaseErrors.ErrSessionNotFound
	}
	if user.ID != claims.UserID {
		return nil, "", fmt.Errorf("%w: session belongs to another user", usecaseErrors.ErrTokenInvalid)
	}
	return user, claims.SessionID, nil
}

// Logout deletes the session's user record
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: delete session: %v", usecaseErrors.ErrSessionStore, err)
	}
	if s.logger != nil {
		s.logger.Info("auth.logout", zap.String("session_id", sessionID))
	}
	return nil
}
