// AngelaMos | 2026
// entity.go

package donation

import (
	"time"
)

// Donation statuses follow the payment gateway's vocabulary. A donation is
// created Pending (or Success for instant captures) and only ever changes
// status after that; amount and date are immutable once recorded.
const (
	StatusPending = "Pending"
	StatusSuccess = "Success"
	StatusFailed  = "Failed"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusSuccess, StatusFailed:
		return true
	}
	return false
}

type Donation struct {
	ID            string    `db:"id"`
	Seq           int64     `db:"seq"`
	UserID        string    `db:"user_id"`
	Amount        int64     `db:"amount"`
	Status        string    `db:"status"`
	TransactionID *string   `db:"transaction_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
