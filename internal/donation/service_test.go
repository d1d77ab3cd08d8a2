// AngelaMos | 2026
// service_test.go

package donation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/givehub/internal/core"
)

type fakeRepo struct {
	donations map[string]*Donation
	nextSeq   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{donations: map[string]*Donation{}}
}

func (f *fakeRepo) Create(_ context.Context, d *Donation) error {
	f.nextSeq++
	d.Seq = f.nextSeq
	stored := *d
	f.donations[d.ID] = &stored
	return nil
}

func (f *fakeRepo) UpdateStatus(
	_ context.Context,
	userID, donationID, status string,
	transactionID *string,
) (*Donation, error) {
	d, ok := f.donations[donationID]
	if !ok || d.UserID != userID {
		return nil, core.ErrNotFound
	}

	// Mirrors the SQL UPDATE: only status and transaction_id move.
	d.Status = status
	if transactionID != nil {
		d.TransactionID = transactionID
	}

	updated := *d
	return &updated, nil
}

func (f *fakeRepo) ListForUser(
	_ context.Context,
	userID string,
) ([]Donation, error) {
	out := []Donation{}
	for _, d := range f.donations {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAll(_ context.Context, _ int) ([]Donation, error) {
	out := []Donation{}
	for _, d := range f.donations {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeRepo) TotalCollected(ctx context.Context) (int64, error) {
	donations, _ := f.ListAll(ctx, 0)
	return SumSuccessful(donations), nil
}

func (f *fakeRepo) CountByStatus(_ context.Context) ([]StatusCount, error) {
	counts := map[string]int64{}
	for _, d := range f.donations {
		counts[d.Status]++
	}
	out := []StatusCount{}
	for status, count := range counts {
		out = append(out, StatusCount{Status: status, Count: count})
	}
	return out, nil
}

func TestRecordDonation(t *testing.T) {
	svc := NewService(newFakeRepo())

	d, err := svc.Record(context.Background(), "user-1", 2500, StatusPending, "")
	require.NoError(t, err)
	require.NotEmpty(t, d.ID)
	require.Equal(t, "user-1", d.UserID)
	require.Equal(t, int64(2500), d.Amount)
	require.Equal(t, StatusPending, d.Status)
	require.Nil(t, d.TransactionID)
}

func TestRecordRejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Record(context.Background(), "user-1", 0, StatusPending, "")
	require.True(t, errors.Is(err, core.ErrInvalidInput))

	_, err = svc.Record(context.Background(), "user-1", -100, StatusPending, "")
	require.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestRecordRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Record(context.Background(), "user-1", 100, "Refunded", "")
	require.True(t, errors.Is(err, core.ErrInvalidInput))

	// Status values are case-sensitive.
	_, err = svc.Record(context.Background(), "user-1", 100, "pending", "")
	require.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestUpdateStatusPreservesAmount(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	d, err := svc.Record(context.Background(), "user-1", 2500, StatusPending, "")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(
		context.Background(),
		"user-1",
		d.ID,
		StatusSuccess,
		"TXN-99",
	)
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, updated.Status)
	require.NotNil(t, updated.TransactionID)
	require.Equal(t, "TXN-99", *updated.TransactionID)
	require.Equal(t, int64(2500), updated.Amount)
}

func TestUpdateStatusKeepsTransactionIDWhenOmitted(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	d, err := svc.Record(
		context.Background(),
		"user-1",
		500,
		StatusPending,
		"TXN-1",
	)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(
		context.Background(),
		"user-1",
		d.ID,
		StatusFailed,
		"",
	)
	require.NoError(t, err)
	require.Equal(t, StatusFailed, updated.Status)
	require.NotNil(t, updated.TransactionID)
	require.Equal(t, "TXN-1", *updated.TransactionID)
}

func TestUpdateStatusScopedToOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	d, err := svc.Record(context.Background(), "user-1", 500, StatusPending, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(
		context.Background(),
		"user-2",
		d.ID,
		StatusSuccess,
		"",
	)
	require.True(t, errors.Is(err, core.ErrNotFound))
}

func TestSumSuccessfulCountsOnlySuccess(t *testing.T) {
	donations := []Donation{
		{Amount: 1000, Status: StatusSuccess},
		{Amount: 250, Status: StatusPending},
		{Amount: 400, Status: StatusFailed},
		{Amount: 2500, Status: StatusSuccess},
	}

	require.Equal(t, int64(3500), SumSuccessful(donations))
	require.Equal(t, int64(0), SumSuccessful(nil))
}

func TestValidStatus(t *testing.T) {
	require.True(t, ValidStatus(StatusPending))
	require.True(t, ValidStatus(StatusSuccess))
	require.True(t, ValidStatus(StatusFailed))
	require.False(t, ValidStatus("success"))
	require.False(t, ValidStatus(""))
}
