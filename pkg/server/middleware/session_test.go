package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userd/pkg/identity"
	"userd/pkg/token"
)

func testIssuer(t *testing.T) *token.Issuer {
	t.Helper()

	key := make([]byte, token.KeySize)
	for i := range key {
		key[i] = byte(i)
	}

	issuer, err := token.NewIssuer(key, "userd", time.Hour)
	require.NoError(t, err)
	return issuer
}

func TestSessionMiddleware(t *testing.T) {
	issuer := testIssuer(t)
	authn := NewSessionAuthenticator(issuer)

	var gotIdentity *identity.Identity
	handler := authn.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity, _ = identity.Get(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token passes through with identity", func(t *testing.T) {
		gotIdentity = nil

		tokenStr, err := issuer.Issue(42)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotIdentity)
		assert.Equal(t, int64(42), gotIdentity.UserID)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer header is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
