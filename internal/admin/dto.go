// AngelaMos | 2026
// dto.go

package admin

import (
	"time"

	"github.com/angelamos/givehub/internal/donation"
	"github.com/angelamos/givehub/internal/user"
)

type RoleChangeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type RoleChangeResponse struct {
	Email   string `json:"email"`
	OldRole string `json:"old_role"`
	NewRole string `json:"new_role"`
}

// UserWithDonations is one row of the admin user listing: the public user
// projection with that user's full ledger embedded.
type UserWithDonations struct {
	user.UserResponse
	Donations    []donation.Response `json:"donations"`
	TotalDonated int64               `json:"total_donated"`
}

type UserListResponse struct {
	Users []UserWithDonations `json:"users"`
	Count int                 `json:"count"`
}

type AuditEntryResponse struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	PerformedBy string    `json:"performed_by"`
	TargetEmail string    `json:"target_email"`
	OldRole     string    `json:"old_role"`
	NewRole     string    `json:"new_role"`
	CreatedAt   time.Time `json:"created_at"`
}

type StatsResponse struct {
	TotalCollected int64            `json:"total_collected"`
	UserCount      int              `json:"user_count"`
	ByStatus       map[string]int64 `json:"donations_by_status"`
}

func toAuditResponses(entries []AuditLogEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:          e.ID,
			Action:      e.Action,
			PerformedBy: e.PerformedBy,
			TargetEmail: e.TargetEmail,
			OldRole:     e.OldRole,
			NewRole:     e.NewRole,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out
}
