// AngelaMos | 2026
// dto.go

package donation

import (
	"time"
)

type RecordRequest struct {
	Amount        int64  `json:"amount"                  validate:"required,gt=0"`
	Status        string `json:"status"                  validate:"required,oneof=Pending Success Failed"`
	TransactionID string `json:"transactionId,omitempty" validate:"omitempty,max=128"`
}

type UpdateStatusRequest struct {
	DonationID    string `json:"donationId"              validate:"required,uuid4"`
	Status        string `json:"status"                  validate:"required,oneof=Pending Success Failed"`
	TransactionID string `json:"transactionId,omitempty" validate:"omitempty,max=128"`
}

type Response struct {
	ID            string    `json:"id"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId,omitempty"`
	Date          time.Time `json:"date"`
}

type LedgerResponse struct {
	Donations []Response `json:"donations"`
	Total     int64      `json:"total"`
}

func ToResponse(d *Donation) Response {
	resp := Response{
		ID:     d.ID,
		Amount: d.Amount,
		Status: d.Status,
		Date:   d.CreatedAt,
	}
	if d.TransactionID != nil {
		resp.TransactionID = *d.TransactionID
	}
	return resp
}

func ToResponseList(donations []Donation) []Response {
	responses := make([]Response, 0, len(donations))
	for _, d := range donations {
		responses = append(responses, ToResponse(&d))
	}
	return responses
}
