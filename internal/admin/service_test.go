// AngelaMos | 2026
// service_test.go

package admin

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/givehub/internal/config"
	"github.com/angelamos/givehub/internal/core"
	"github.com/angelamos/givehub/internal/donation"
	"github.com/angelamos/givehub/internal/user"
)

type fakeDirectory struct {
	byEmail map[string]*user.User
}

func (f *fakeDirectory) GetUserByEmail(
	_ context.Context,
	email string,
) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeDirectory) UpdateRole(
	_ context.Context,
	id, role string,
) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeDirectory) ListAll(_ context.Context) ([]user.User, error) {
	out := []user.User{}
	for _, u := range f.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

type fakeLedger struct {
	byUser map[string][]donation.Donation
}

func (f *fakeLedger) ListForUser(
	_ context.Context,
	userID string,
) ([]donation.Donation, error) {
	return f.byUser[userID], nil
}

func (f *fakeLedger) ListAll(_ context.Context) ([]donation.Donation, error) {
	out := []donation.Donation{}
	for _, donations := range f.byUser {
		out = append(out, donations...)
	}
	return out, nil
}

func (f *fakeLedger) TotalCollected(_ context.Context) (int64, error) {
	var total int64
	for _, donations := range f.byUser {
		total += donation.SumSuccessful(donations)
	}
	return total, nil
}

func (f *fakeLedger) CountByStatus(
	_ context.Context,
) ([]donation.StatusCount, error) {
	counts := map[string]int64{}
	for _, donations := range f.byUser {
		for _, d := range donations {
			counts[d.Status]++
		}
	}
	out := []donation.StatusCount{}
	for status, count := range counts {
		out = append(out, donation.StatusCount{Status: status, Count: count})
	}
	return out, nil
}

type fakeAudit struct {
	entries []AuditLogEntry
}

func (f *fakeAudit) Insert(_ context.Context, entry *AuditLogEntry) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAudit) ListRecent(
	_ context.Context,
	_ int,
) ([]AuditLogEntry, error) {
	return f.entries, nil
}

// actorEmail is the claim email of the admin performing role changes.
const actorEmail = "admin@gmail.com"

func newTestService() (*Service, *fakeDirectory, *fakeAudit) {
	dir := &fakeDirectory{byEmail: map[string]*user.User{
		"admin@gmail.com": {
			ID:    "super-1",
			Email: "admin@gmail.com",
			Role:  user.RoleAdmin,
		},
		"alice@example.com": {
			ID:    "user-1",
			Email: "alice@example.com",
			Role:  user.RoleUser,
		},
		"bob@example.com": {
			ID:    "user-2",
			Email: "bob@example.com",
			Role:  user.RoleAdmin,
		},
	}}
	ledger := &fakeLedger{byUser: map[string][]donation.Donation{
		"user-1": {
			{Amount: 2500, Status: donation.StatusSuccess},
			{Amount: 100, Status: donation.StatusPending},
		},
	}}
	audit := &fakeAudit{}

	svc := NewService(dir, ledger, audit, config.SuperAdminConfig{
		Email: "admin@gmail.com",
	})
	return svc, dir, audit
}

func requireAppStatus(t *testing.T, err error, status int, code string) {
	t.Helper()

	var appErr *core.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, status, appErr.Status)
	require.Equal(t, code, appErr.Code)
}

func TestPromoteUser(t *testing.T) {
	svc, dir, audit := newTestService()

	resp, err := svc.Promote(context.Background(), actorEmail, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user.RoleUser, resp.OldRole)
	require.Equal(t, user.RoleAdmin, resp.NewRole)
	require.Equal(t, user.RoleAdmin, dir.byEmail["alice@example.com"].Role)

	require.Len(t, audit.entries, 1)
	require.Equal(t, ActionPromote, audit.entries[0].Action)
	// The audit trail identifies the actor by email, not by account ID.
	require.Equal(t, actorEmail, audit.entries[0].PerformedBy)
	require.Equal(t, "alice@example.com", audit.entries[0].TargetEmail)
}

func TestPromoteAdminIsNoOp(t *testing.T) {
	svc, _, audit := newTestService()

	_, err := svc.Promote(context.Background(), actorEmail, "bob@example.com")
	requireAppStatus(t, err, http.StatusBadRequest, "NO_OP")
	require.Empty(t, audit.entries)
}

func TestDemoteAdmin(t *testing.T) {
	svc, dir, audit := newTestService()

	resp, err := svc.Demote(context.Background(), actorEmail, "bob@example.com")
	require.NoError(t, err)
	require.Equal(t, user.RoleAdmin, resp.OldRole)
	require.Equal(t, user.RoleUser, resp.NewRole)
	require.Equal(t, user.RoleUser, dir.byEmail["bob@example.com"].Role)

	require.Len(t, audit.entries, 1)
	require.Equal(t, ActionDemote, audit.entries[0].Action)
}

func TestDemoteRegularUserIsNoOp(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Demote(context.Background(), actorEmail, "alice@example.com")
	requireAppStatus(t, err, http.StatusBadRequest, "NO_OP")
}

func TestSuperAdminIsUntouchable(t *testing.T) {
	svc, dir, audit := newTestService()

	_, err := svc.Demote(context.Background(), actorEmail, "admin@gmail.com")
	requireAppStatus(t, err, http.StatusForbidden, "FORBIDDEN")

	// Matching is case-insensitive.
	_, err = svc.Demote(context.Background(), actorEmail, "ADMIN@GMAIL.COM")
	requireAppStatus(t, err, http.StatusForbidden, "FORBIDDEN")

	require.Equal(t, user.RoleAdmin, dir.byEmail["admin@gmail.com"].Role)
	require.Empty(t, audit.entries)
}

func TestRoleChangeUnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Promote(context.Background(), actorEmail, "ghost@example.com")
	requireAppStatus(t, err, http.StatusNotFound, "NOT_FOUND")
}

func TestPromoteThenDemoteRoundTrip(t *testing.T) {
	svc, dir, audit := newTestService()

	_, err := svc.Promote(context.Background(), actorEmail, "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Demote(context.Background(), actorEmail, "alice@example.com")
	require.NoError(t, err)

	require.Equal(t, user.RoleUser, dir.byEmail["alice@example.com"].Role)
	require.Len(t, audit.entries, 2)
	require.Equal(t, ActionPromote, audit.entries[0].Action)
	require.Equal(t, ActionDemote, audit.entries[1].Action)
}

func TestListUsersEmbedsLedgers(t *testing.T) {
	svc, _, _ := newTestService()

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)

	for _, u := range users {
		if u.ID != "user-1" {
			require.Empty(t, u.Donations)
			continue
		}
		require.Len(t, u.Donations, 2)
		require.Equal(t, int64(2500), u.TotalDonated)
	}
}

func TestStats(t *testing.T) {
	svc, _, _ := newTestService()

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2500), stats.TotalCollected)
	require.Equal(t, 3, stats.UserCount)
	require.Equal(t, int64(1), stats.ByStatus[donation.StatusSuccess])
	require.Equal(t, int64(1), stats.ByStatus[donation.StatusPending])
}
