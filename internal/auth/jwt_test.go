// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/givehub/internal/config"
	"github.com/angelamos/givehub/internal/core"
)

func newTestManager(t *testing.T, expire time.Duration) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privateKeyPath := filepath.Join(dir, "private.pem")
	publicKeyPath := filepath.Join(dir, "public.pem")

	require.NoError(t, GenerateKeyPair(privateKeyPath, publicKeyPath))

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath: privateKeyPath,
		PublicKeyPath:  publicKeyPath,
		SessionExpire:  expire,
		Issuer:         "givehub",
		Audience:       "givehub-api",
	})
	require.NoError(t, err)

	return manager
}

func TestSessionTokenRoundTrip(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	token, err := manager.CreateSessionToken(SessionTokenClaims{
		UserID: "user-1",
		Email:  "alice@example.com",
		Role:   "admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifySessionToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "admin", claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := newTestManager(t, -time.Minute)

	token, err := manager.CreateSessionToken(SessionTokenClaims{
		UserID: "user-1",
		Email:  "alice@example.com",
		Role:   "user",
	})
	require.NoError(t, err)

	_, err = manager.VerifySessionToken(context.Background(), token)
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrTokenExpired))
}

func TestTamperedTokenRejected(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	token, err := manager.CreateSessionToken(SessionTokenClaims{
		UserID: "user-1",
		Email:  "alice@example.com",
		Role:   "user",
	})
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"

	_, err = manager.VerifySessionToken(context.Background(), tampered)
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestTokenFromOtherKeyRejected(t *testing.T) {
	issuing := newTestManager(t, time.Hour)
	verifying := newTestManager(t, time.Hour)

	token, err := issuing.CreateSessionToken(SessionTokenClaims{
		UserID: "user-1",
		Email:  "alice@example.com",
		Role:   "user",
	})
	require.NoError(t, err)

	_, err = verifying.VerifySessionToken(context.Background(), token)
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestGarbageTokenRejected(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	_, err := manager.VerifySessionToken(
		context.Background(),
		"not-a-jwt-at-all",
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrTokenInvalid))
}
