// AngelaMos | 2026
// signer.go

package payhere

import (
	"crypto/md5" //nolint:gosec // gateway protocol mandates MD5
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/angelamos/givehub/internal/config"
	"github.com/angelamos/givehub/internal/core"
)

// Signer computes PayHere checkout signatures. The scheme is fixed by the
// gateway:
//
//	UPPER(HEX(MD5(merchantID + orderID + amount + currency +
//	              UPPER(HEX(MD5(merchantSecret))))))
//
// with the amount formatted to exactly two decimal places.
type Signer struct {
	merchantID string
	secret     string
	currency   string
}

func NewSigner(cfg config.PayHereConfig) *Signer {
	return &Signer{
		merchantID: cfg.MerchantID,
		secret:     cfg.MerchantSecret,
		currency:   cfg.Currency,
	}
}

// ComputeHash signs one checkout. An empty currency falls back to the
// configured default. The merchant secret never leaves this package.
func (s *Signer) ComputeHash(
	orderID string,
	amount float64,
	currency string,
) (string, error) {
	if s.merchantID == "" || s.secret == "" {
		return "", core.ConfigurationError()
	}

	if orderID == "" {
		return "", core.ValidationError("orderId is required")
	}

	if amount <= 0 {
		return "", core.ValidationError("amount must be greater than 0")
	}

	if currency == "" {
		currency = s.currency
	}

	formattedAmount := fmt.Sprintf("%.2f", amount)

	innerHash := md5Upper(s.secret)
	payload := s.merchantID + orderID + formattedAmount + currency + innerHash

	return md5Upper(payload), nil
}

// MerchantID exposes the public merchant identifier checkout forms need.
func (s *Signer) MerchantID() string {
	return s.merchantID
}

func md5Upper(input string) string {
	sum := md5.Sum([]byte(input)) //nolint:gosec // gateway protocol mandates MD5
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
