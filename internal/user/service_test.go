// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/givehub/internal/core"
)

type fakeRepo struct {
	byEmail map[string]*User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]*User{}}
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return core.ErrDuplicateKey
	}
	stored := *u
	f.byEmail[u.Email] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) UpdateRole(_ context.Context, id, role string) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeRepo) UpdatePasswordHash(
	_ context.Context,
	id, passwordHash string,
) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeRepo) ListAll(_ context.Context) ([]User, error) {
	out := []User{}
	for _, u := range f.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

func TestCreateNormalizesAndDefaults(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	info, err := svc.Create(
		context.Background(),
		"  Alice@Example.COM ",
		"$argon2id$fake",
		"  Alice  ",
		"0771234567",
	)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", info.Email)
	require.Equal(t, "Alice", info.Name)
	require.Equal(t, RoleUser, info.Role)
	require.NotEmpty(t, info.ID)

	stored := repo.byEmail["alice@example.com"]
	require.NotNil(t, stored)
	require.Equal(t, RoleUser, stored.Role)
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	svc := NewService(newFakeRepo())

	err := svc.UpdateRole(context.Background(), "user-1", "superuser")
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestUpdatePasswordHash(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Create(
		context.Background(),
		"alice@example.com",
		"$argon2id$old",
		"Alice",
		"0771234567",
	)
	require.NoError(t, err)
	id := repo.byEmail["alice@example.com"].ID

	err = svc.UpdatePasswordHash(context.Background(), id, "$argon2id$new")
	require.NoError(t, err)
	require.Equal(
		t,
		"$argon2id$new",
		repo.byEmail["alice@example.com"].PasswordHash,
	)

	err = svc.UpdatePasswordHash(context.Background(), "ghost", "$argon2id$x")
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestSeedSuperAdminCreatesAccount(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	err := svc.SeedSuperAdmin(
		context.Background(),
		"Admin@Gmail.com",
		"Super Admin",
		"seedpass1",
	)
	require.NoError(t, err)

	admin := repo.byEmail["admin@gmail.com"]
	require.NotNil(t, admin)
	require.Equal(t, RoleAdmin, admin.Role)
	require.Equal(t, seededAdminPhone, admin.Phone)
	require.True(t, strings.HasPrefix(admin.PasswordHash, "$argon2id$"))
}

func TestSeedSuperAdminNeverOverwrites(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	require.NoError(t, svc.SeedSuperAdmin(
		context.Background(),
		"admin@gmail.com",
		"Super Admin",
		"seedpass1",
	))
	original := repo.byEmail["admin@gmail.com"].PasswordHash

	require.NoError(t, svc.SeedSuperAdmin(
		context.Background(),
		"admin@gmail.com",
		"Super Admin",
		"different2",
	))

	require.Equal(t, original, repo.byEmail["admin@gmail.com"].PasswordHash)
}

func TestSeedSuperAdminSkipsWithoutPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	require.NoError(t, svc.SeedSuperAdmin(
		context.Background(),
		"admin@gmail.com",
		"Super Admin",
		"",
	))

	require.Empty(t, repo.byEmail)
}
