// AngelaMos | 2026
// service.go

package donation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/angelamos/givehub/internal/core"
)

const allFeedLimit = 500

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends a donation to the acting user's own ledger. The user ID
// must come from a verified session claim; callers never pass a
// client-supplied target identity here.
func (s *Service) Record(
	ctx context.Context,
	userID string,
	amount int64,
	status, transactionID string,
) (*Donation, error) {
	if amount <= 0 {
		return nil, fmt.Errorf(
			"record donation: amount must be positive: %w",
			core.ErrInvalidInput,
		)
	}

	if !ValidStatus(status) {
		return nil, fmt.Errorf(
			"record donation: invalid status %q: %w",
			status,
			core.ErrInvalidInput,
		)
	}

	d := &Donation{
		ID:     uuid.New().String(),
		UserID: userID,
		Amount: amount,
		Status: status,
	}
	if transactionID != "" {
		d.TransactionID = &transactionID
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

// UpdateStatus mutates status (and optionally the gateway transaction
// reference) of one donation in the acting user's ledger. Amount and date
// are immutable after creation.
func (s *Service) UpdateStatus(
	ctx context.Context,
	userID, donationID, status, transactionID string,
) (*Donation, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf(
			"update donation: invalid status %q: %w",
			status,
			core.ErrInvalidInput,
		)
	}

	var txID *string
	if transactionID != "" {
		txID = &transactionID
	}

	return s.repo.UpdateStatus(ctx, userID, donationID, status, txID)
}

func (s *Service) ListForUser(
	ctx context.Context,
	userID string,
) ([]Donation, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]Donation, error) {
	return s.repo.ListAll(ctx, allFeedLimit)
}

func (s *Service) TotalCollected(ctx context.Context) (int64, error) {
	return s.repo.TotalCollected(ctx)
}

func (s *Service) CountByStatus(
	ctx context.Context,
) ([]StatusCount, error) {
	return s.repo.CountByStatus(ctx)
}

// SumSuccessful totals the successfully captured amounts in a ledger slice.
// Pending and Failed attempts never contribute.
func SumSuccessful(donations []Donation) int64 {
	var total int64
	for _, d := range donations {
		if d.Status == StatusSuccess {
			total += d.Amount
		}
	}
	return total
}
