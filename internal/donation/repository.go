// AngelaMos | 2026
// repository.go

package donation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/givehub/internal/core"
)

type StatusCount struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

type Repository interface {
	Create(ctx context.Context, d *Donation) error
	UpdateStatus(
		ctx context.Context,
		userID, donationID, status string,
		transactionID *string,
	) (*Donation, error)
	ListForUser(ctx context.Context, userID string) ([]Donation, error)
	ListAll(ctx context.Context, limit int) ([]Donation, error)
	TotalCollected(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Donation) error {
	query := `
		INSERT INTO donations (id, user_id, amount, status, transaction_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING seq, created_at, updated_at`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	err := r.db.GetContext(qctx, d, query,
		d.ID,
		d.UserID,
		d.Amount,
		d.Status,
		d.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("create donation: %w", err)
	}

	return nil
}

// UpdateStatus is the only write path after creation. The SET list touches
// status and transaction_id exclusively; amount and created_at cannot be
// altered through any statement this repository issues.
func (r *repository) UpdateStatus(
	ctx context.Context,
	userID, donationID, status string,
	transactionID *string,
) (*Donation, error) {
	query := `
		UPDATE donations
		SET status = $3,
		    transaction_id = COALESCE($4, transaction_id),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, seq, user_id, amount, status, transaction_id,
		          created_at, updated_at`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	var d Donation
	err := r.db.GetContext(qctx, &d, query,
		donationID,
		userID,
		status,
		transactionID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update donation status: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update donation status: %w", err)
	}

	return &d, nil
}

func (r *repository) ListForUser(
	ctx context.Context,
	userID string,
) ([]Donation, error) {
	query := `
		SELECT id, seq, user_id, amount, status, transaction_id,
		       created_at, updated_at
		FROM donations
		WHERE user_id = $1
		ORDER BY created_at DESC, seq DESC`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	donations := []Donation{}
	if err := r.db.SelectContext(qctx, &donations, query, userID); err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}

	return donations, nil
}

func (r *repository) ListAll(
	ctx context.Context,
	limit int,
) ([]Donation, error) {
	query := `
		SELECT id, seq, user_id, amount, status, transaction_id,
		       created_at, updated_at
		FROM donations
		ORDER BY created_at DESC, seq DESC
		LIMIT $1`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	donations := []Donation{}
	if err := r.db.SelectContext(qctx, &donations, query, limit); err != nil {
		return nil, fmt.Errorf("list all donations: %w", err)
	}

	return donations, nil
}

func (r *repository) TotalCollected(ctx context.Context) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM donations
		WHERE status = $1`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	var total int64
	if err := r.db.GetContext(qctx, &total, query, StatusSuccess); err != nil {
		return 0, fmt.Errorf("total collected: %w", err)
	}

	return total, nil
}

func (r *repository) CountByStatus(
	ctx context.Context,
) ([]StatusCount, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM donations
		GROUP BY status`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	counts := []StatusCount{}
	if err := r.db.SelectContext(qctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count donations by status: %w", err)
	}

	return counts, nil
}
