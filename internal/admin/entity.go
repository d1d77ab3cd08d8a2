// AngelaMos | 2026
// entity.go

package admin

import (
	"time"
)

const (
	ActionPromote = "PROMOTE"
	ActionDemote  = "DEMOTE"
)

// AuditLogEntry records one role transition: who performed it, on whom, and
// the before/after roles. Entries are append-only.
type AuditLogEntry struct {
	ID          string    `db:"id"`
	Action      string    `db:"action"`
	PerformedBy string    `db:"performed_by"`
	TargetEmail string    `db:"target_email"`
	OldRole     string    `db:"old_role"`
	NewRole     string    `db:"new_role"`
	CreatedAt   time.Time `db:"created_at"`
}
