// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/angelamos/givehub/internal/core"
)

var (
	// ErrInvalidCredentials is returned for both unknown-email and
	// wrong-password logins so the two cases are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
)

// UserInfo is the credential-store projection auth works with.
type UserInfo struct {
	ID           string
	Email        string
	Name         string
	Phone        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// UserProvider is the slice of the user service auth depends on.
type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	Create(
		ctx context.Context,
		email, passwordHash, name, phone string,
	) (*UserInfo, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
}

type Service struct {
	jwtManager *JWTManager
	users      UserProvider
}

func NewService(jwtManager *JWTManager, users UserProvider) *Service {
	return &Service{
		jwtManager: jwtManager,
		users:      users,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user, err := s.users.Create(ctx, email, passwordHash, req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	slog.Info("user registered", "user_id", user.ID)

	return s.issueSession(user)
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("login: %w", err)
	}

	// Always run a full verify, against a dummy hash when the account does
	// not exist, so response timing does not reveal which emails are
	// registered.
	var storedHash *string
	if user != nil {
		storedHash = &user.PasswordHash
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(req.Password, storedHash)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if !valid || user == nil {
		return nil, ErrInvalidCredentials
	}

	// A verified hash with outdated cost parameters comes back re-derived;
	// persist it so the account migrates forward. The login itself never
	// fails on a rehash write problem.
	if newHash != "" {
		if err := s.users.UpdatePasswordHash(ctx, user.ID, newHash); err != nil {
			slog.Warn("password rehash persist failed",
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	slog.Info("user logged in", "user_id", user.ID)

	return s.issueSession(user)
}

func (s *Service) issueSession(user *UserInfo) (*AuthResponse, error) {
	token, err := s.jwtManager.CreateSessionToken(SessionTokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	return &AuthResponse{
		Token: token,
		User: UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
