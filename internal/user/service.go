// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/angelamos/givehub/internal/auth"
	"github.com/angelamos/givehub/internal/core"
)

// Seeded super-admin accounts get a placeholder phone; the original account
// never registers through the public flow.
const seededAdminPhone = "0000000000"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	email, passwordHash, name, phone string,
) (*auth.UserInfo, error) {
	user := &User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		Name:         strings.TrimSpace(name),
		Phone:        phone,
		Role:         RoleUser,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePasswordHash(
	ctx context.Context,
	id, passwordHash string,
) error {
	return s.repo.UpdatePasswordHash(ctx, id, passwordHash)
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetUserByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *Service) UpdateRole(ctx context.Context, id, role string) error {
	if role != RoleUser && role != RoleAdmin {
		return fmt.Errorf(
			"update role: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	return s.repo.UpdateRole(ctx, id, role)
}

func (s *Service) ListAll(ctx context.Context) ([]User, error) {
	return s.repo.ListAll(ctx)
}

// SeedSuperAdmin creates the configured super-admin account on first boot.
// An existing account is never overwritten, and nothing is created unless a
// seed password is configured.
func (s *Service) SeedSuperAdmin(
	ctx context.Context,
	email, name, password string,
) error {
	normalized := strings.ToLower(strings.TrimSpace(email))

	_, err := s.repo.GetByEmail(ctx, normalized)
	if err == nil {
		slog.Info("super admin already exists", "email", normalized)
		return nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("seed super admin: %w", err)
	}

	if password == "" {
		slog.Info("super admin absent and no seed password configured, skipping")
		return nil
	}

	passwordHash, err := core.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed super admin: %w", err)
	}

	admin := &User{
		ID:           uuid.New().String(),
		Email:        normalized,
		PasswordHash: passwordHash,
		Name:         name,
		Phone:        seededAdminPhone,
		Role:         RoleAdmin,
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed super admin: %w", err)
	}

	slog.Info("super admin initialized", "email", normalized)
	return nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}

var _ auth.UserProvider = (*Service)(nil)
