// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/angelamos/givehub/internal/core"
)

type Repository interface {
	Insert(ctx context.Context, entry *AuditLogEntry) error
	ListRecent(ctx context.Context, limit int) ([]AuditLogEntry, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, entry *AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (id, action, performed_by, target_email,
		                       old_role, new_role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	err := r.db.GetContext(qctx, entry, query,
		entry.ID,
		entry.Action,
		entry.PerformedBy,
		entry.TargetEmail,
		entry.OldRole,
		entry.NewRole,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}

func (r *repository) ListRecent(
	ctx context.Context,
	limit int,
) ([]AuditLogEntry, error) {
	query := `
		SELECT id, action, performed_by, target_email, old_role, new_role,
		       created_at
		FROM audit_log
		ORDER BY created_at DESC
		LIMIT $1`

	qctx, cancel := core.QueryContext(ctx)
	defer cancel()

	entries := []AuditLogEntry{}
	if err := r.db.SelectContext(qctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	return entries, nil
}
