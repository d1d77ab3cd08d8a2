// AngelaMos | 2026
// signer_test.go

package payhere

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/givehub/internal/config"
	"github.com/angelamos/givehub/internal/core"
)

func testSigner() *Signer {
	return NewSigner(config.PayHereConfig{
		MerchantID:     "1211149",
		MerchantSecret: "MySecret123",
		Currency:       "LKR",
	})
}

func TestComputeHashKnownVector(t *testing.T) {
	signer := testSigner()

	hash, err := signer.ComputeHash("ORDER-1001", 2500, "LKR")
	require.NoError(t, err)
	require.Equal(t, "989E2A9E8685F6009E628C832C182ABA", hash)
}

func TestComputeHashDeterministic(t *testing.T) {
	signer := testSigner()

	first, err := signer.ComputeHash("ORDER-1001", 2500, "LKR")
	require.NoError(t, err)

	second, err := signer.ComputeHash("ORDER-1001", 2500, "LKR")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestComputeHashAmountChangesHash(t *testing.T) {
	signer := testSigner()

	hash, err := signer.ComputeHash("ORDER-1001", 2500.50, "LKR")
	require.NoError(t, err)
	require.Equal(t, "7B1E68A96AF9CAC0DCC704EDEE9B3BA5", hash)
	require.NotEqual(t, "989E2A9E8685F6009E628C832C182ABA", hash)
}

func TestComputeHashCurrencyChangesHash(t *testing.T) {
	signer := testSigner()

	hash, err := signer.ComputeHash("ORDER-1001", 2500, "USD")
	require.NoError(t, err)
	require.Equal(t, "EE1ED2F2C98BDC7A769C9C2150E33022", hash)
}

func TestComputeHashOrderChangesHash(t *testing.T) {
	signer := testSigner()

	hash, err := signer.ComputeHash("ORDER-1002", 2500, "LKR")
	require.NoError(t, err)
	require.Equal(t, "E02AFD59A0FC9E15C1792FE95A00DFA9", hash)
}

func TestComputeHashAmountAlwaysTwoDecimals(t *testing.T) {
	signer := NewSigner(config.PayHereConfig{
		MerchantID:     "121",
		MerchantSecret: "s3cret",
		Currency:       "LKR",
	})

	// 10 and 10.00 must sign identically.
	whole, err := signer.ComputeHash("ORD1", 10, "LKR")
	require.NoError(t, err)
	require.Equal(t, "51600585B4FF6ACA651739276B81E57D", whole)

	fractional, err := signer.ComputeHash("ORD1", 10.00, "LKR")
	require.NoError(t, err)
	require.Equal(t, whole, fractional)
}

func TestComputeHashDefaultCurrency(t *testing.T) {
	signer := testSigner()

	explicit, err := signer.ComputeHash("ORDER-1001", 2500, "LKR")
	require.NoError(t, err)

	defaulted, err := signer.ComputeHash("ORDER-1001", 2500, "")
	require.NoError(t, err)

	require.Equal(t, explicit, defaulted)
}

func TestComputeHashRejectsInvalidInput(t *testing.T) {
	signer := testSigner()

	_, err := signer.ComputeHash("", 2500, "LKR")
	require.True(t, errors.Is(err, core.ErrInvalidInput))

	_, err = signer.ComputeHash("ORDER-1001", 0, "LKR")
	require.True(t, errors.Is(err, core.ErrInvalidInput))

	_, err = signer.ComputeHash("ORDER-1001", -5, "LKR")
	require.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestComputeHashMissingCredentials(t *testing.T) {
	signer := NewSigner(config.PayHereConfig{Currency: "LKR"})

	_, err := signer.ComputeHash("ORDER-1001", 2500, "LKR")
	require.True(t, errors.Is(err, core.ErrConfig))
}
