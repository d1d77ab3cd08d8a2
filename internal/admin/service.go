// AngelaMos | 2026
// service.go

package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/angelamos/givehub/internal/config"
	"github.com/angelamos/givehub/internal/core"
	"github.com/angelamos/givehub/internal/donation"
	"github.com/angelamos/givehub/internal/user"
)

const auditFeedLimit = 200

// UserDirectory is the slice of the user service role management needs.
type UserDirectory interface {
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateRole(ctx context.Context, id, role string) error
	ListAll(ctx context.Context) ([]user.User, error)
}

// LedgerReader is the slice of the donation service the admin views need.
type LedgerReader interface {
	ListForUser(ctx context.Context, userID string) ([]donation.Donation, error)
	ListAll(ctx context.Context) ([]donation.Donation, error)
	TotalCollected(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]donation.StatusCount, error)
}

type Service struct {
	users      UserDirectory
	ledger     LedgerReader
	audit      Repository
	superAdmin config.SuperAdminConfig
}

func NewService(
	users UserDirectory,
	ledger LedgerReader,
	audit Repository,
	superAdmin config.SuperAdminConfig,
) *Service {
	return &Service{
		users:      users,
		ledger:     ledger,
		audit:      audit,
		superAdmin: superAdmin,
	}
}

// Promote raises the target account to admin. The super-admin account is
// untouchable, a missing account is 404, and promoting an admin is a no-op
// error; the ordering of those guards is part of the contract. actorEmail is
// the acting admin's verified claim email, recorded in the audit trail.
func (s *Service) Promote(
	ctx context.Context,
	actorEmail, targetEmail string,
) (*RoleChangeResponse, error) {
	return s.changeRole(ctx, actorEmail, targetEmail, ActionPromote)
}

// Demote lowers the target account back to a regular user, with the same
// guard ordering as Promote.
func (s *Service) Demote(
	ctx context.Context,
	actorEmail, targetEmail string,
) (*RoleChangeResponse, error) {
	return s.changeRole(ctx, actorEmail, targetEmail, ActionDemote)
}

func (s *Service) changeRole(
	ctx context.Context,
	actorEmail, targetEmail, action string,
) (*RoleChangeResponse, error) {
	if s.superAdmin.IsSuperAdmin(targetEmail) {
		return nil, core.ForbiddenError(
			"the super admin account cannot be modified",
		)
	}

	target, err := s.users.GetUserByEmail(ctx, targetEmail)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("user")
		}
		return nil, fmt.Errorf("change role: %w", err)
	}

	newRole := user.RoleAdmin
	if action == ActionDemote {
		newRole = user.RoleUser
	}

	if target.Role == newRole {
		if action == ActionPromote {
			return nil, core.NoOpError("user is already an admin")
		}
		return nil, core.NoOpError("user is not an admin")
	}

	oldRole := target.Role
	if err := s.users.UpdateRole(ctx, target.ID, newRole); err != nil {
		return nil, fmt.Errorf("change role: %w", err)
	}

	entry := &AuditLogEntry{
		ID:          uuid.New().String(),
		Action:      action,
		PerformedBy: actorEmail,
		TargetEmail: target.Email,
		OldRole:     oldRole,
		NewRole:     newRole,
	}
	if err := s.audit.Insert(ctx, entry); err != nil {
		// The role change already landed; losing one audit row is
		// logged, not surfaced.
		slog.Error("audit entry write failed",
			"action", action,
			"target", target.Email,
			"error", err,
		)
	}

	slog.Info("role changed",
		"action", action,
		"actor", actorEmail,
		"target", target.Email,
		"old_role", oldRole,
		"new_role", newRole,
	)

	return &RoleChangeResponse{
		Email:   target.Email,
		OldRole: oldRole,
		NewRole: newRole,
	}, nil
}

// ListUsers returns every account with its ledger embedded, for the admin
// dashboard.
func (s *Service) ListUsers(ctx context.Context) ([]UserWithDonations, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]UserWithDonations, 0, len(users))
	for i := range users {
		u := &users[i]

		donations, err := s.ledger.ListForUser(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("list users: ledger for %s: %w", u.ID, err)
		}

		out = append(out, UserWithDonations{
			UserResponse: user.ToUserResponse(u),
			Donations:    donation.ToResponseList(donations),
			TotalDonated: donation.SumSuccessful(donations),
		})
	}

	return out, nil
}

func (s *Service) AuditLog(ctx context.Context) ([]AuditLogEntry, error) {
	return s.audit.ListRecent(ctx, auditFeedLimit)
}

// AllDonations is the cross-user transaction feed, most recent first.
func (s *Service) AllDonations(
	ctx context.Context,
) ([]donation.Donation, error) {
	return s.ledger.ListAll(ctx)
}

// Stats aggregates the collection summary: total successfully collected,
// account count, and donation counts per status.
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	total, err := s.ledger.TotalCollected(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	counts, err := s.ledger.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	byStatus := make(map[string]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}

	return &StatsResponse{
		TotalCollected: total,
		UserCount:      len(users),
		ByStatus:       byStatus,
	}, nil
}
