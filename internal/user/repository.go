// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/angelamos/givehub/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateRole(ctx context.Context, id, role string) error
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
	ListAll(ctx context.Context) ([]User, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, phone, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	err := r.db.GetContext(qctx, user, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Phone,
		user.Role,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, email, password_hash, name, phone, role,
		       created_at, updated_at
		FROM users
		WHERE id = $1`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	var user User
	err := r.db.GetContext(qctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `
		SELECT id, email, password_hash, name, phone, role,
		       created_at, updated_at
		FROM users
		WHERE email = $1`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	var user User
	err := r.db.GetContext(qctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

// UpdateRole is the single mutation role management performs: one atomic
// UPDATE on one row. Concurrent calls race at last-write-wins granularity,
// which is acceptable because the target value is fixed per call.
func (r *repository) UpdateRole(ctx context.Context, id, role string) error {
	query := `
		UPDATE users
		SET role = $2, updated_at = NOW()
		WHERE id = $1`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	result, err := r.db.ExecContext(qctx, query, id, role)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update role: %w", core.ErrNotFound)
	}

	return nil
}

// UpdatePasswordHash swaps the stored credential in place, used when a login
// verifies against a hash produced with outdated cost parameters.
func (r *repository) UpdatePasswordHash(
	ctx context.Context,
	id, passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	result, err := r.db.ExecContext(qctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update password hash: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ListAll(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, email, password_hash, name, phone, role,
		       created_at, updated_at
		FROM users
		ORDER BY created_at DESC`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	users := []User{}
	if err := r.db.SelectContext(qctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
