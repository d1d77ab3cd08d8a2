// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/givehub/internal/core"
)

func TestExtractToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", ""},
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi"},
		{"wrong scheme", "Basic abc", ""},
		{"scheme only", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			require.Equal(t, tc.want, ExtractToken(r))
		})
	}
}

type staticVerifier struct {
	claims *SessionClaims
	err    error
}

func (v *staticVerifier) VerifySessionToken(
	_ context.Context,
	_ string,
) (*SessionClaims, error) {
	return v.claims, v.err
}

func TestAuthenticatorInjectsClaims(t *testing.T) {
	verifier := &staticVerifier{claims: &SessionClaims{
		UserID: "user-1",
		Email:  "alice@example.com",
		Role:   "admin",
	}}

	var gotID, gotEmail, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r.Context())
		gotEmail = GetUserEmail(r.Context())
		gotRole = GetUserRole(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/v1/user/profile", nil)
	r.Header.Set("Authorization", "Bearer some.jwt.token")
	w := httptest.NewRecorder()

	Authenticator(verifier)(next).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "user-1", gotID)
	require.Equal(t, "alice@example.com", gotEmail)
	require.Equal(t, "admin", gotRole)
}

func TestAuthenticatorMissingToken(t *testing.T) {
	verifier := &staticVerifier{claims: &SessionClaims{}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	r := httptest.NewRequest(http.MethodGet, "/v1/user/profile", nil)
	w := httptest.NewRecorder()

	Authenticator(verifier)(next).ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatorExpiredToken(t *testing.T) {
	verifier := &staticVerifier{err: core.ErrTokenExpired}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	})

	r := httptest.NewRequest(http.MethodGet, "/v1/user/profile", nil)
	r.Header.Set("Authorization", "Bearer expired.jwt.token")
	w := httptest.NewRecorder()

	Authenticator(verifier)(next).ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		ctx := context.WithValue(r.Context(), UserRoleKey, "admin")
		w := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(w, r.WithContext(ctx))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("user forbidden", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		ctx := context.WithValue(r.Context(), UserRoleKey, "user")
		w := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(w, r.WithContext(ctx))
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing role unauthorized", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		w := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(w, r)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
