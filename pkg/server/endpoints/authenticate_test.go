package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userd/pkg/model"
	"userd/pkg/server/store"
)

func TestLoginEndpoint(t *testing.T) {
	t.Run("returns a bearer token on valid credentials", func(t *testing.T) {
		mockStore := NewMockUsersStore()
		srv := newTestServer(t, mockStore)
		RegisterAuthenticateEndpoint(srv)

		mockStore.On("FindByEmail", "alice@example.com").Return(&model.User{
			ID:           1,
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: hashedPassword(t, "secret123"),
		}, nil)

		req := httptest.NewRequest("POST", "/auth/login",
			strings.NewReader(`{"email":"alice@example.com","password":"secret123"}`))
		rec := httptest.NewRecorder()

		srv.Router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.AccessToken)
		assert.Equal(t, "Bearer", body.TokenType)
		assert.Equal(t, int64(3600), body.ExpiresIn)

		// The token names the right subject
		userID, err := srv.Tokens.Verify(body.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(1), userID)
	})

	t.Run("wrong password and unknown email produce identical responses", func(t *testing.T) {
		mockStore := NewMockUsersStore()
		srv := newTestServer(t, mockStore)
		RegisterAuthenticateEndpoint(srv)

		mockStore.On("FindByEmail", "alice@example.com").Return(&model.User{
			ID:           1,
			Email:        "alice@example.com",
			PasswordHash: hashedPassword(t, "secret123"),
		}, nil)
		mockStore.On("FindByEmail", "nobody@example.com").Return(nil, store.ErrUserNotFound)

		wrongPassword := httptest.NewRecorder()
		srv.Router.ServeHTTP(wrongPassword, httptest.NewRequest("POST", "/auth/login",
			strings.NewReader(`{"email":"alice@example.com","password":"wrong"}`)))

		unknownEmail := httptest.NewRecorder()
		srv.Router.ServeHTTP(unknownEmail, httptest.NewRequest("POST", "/auth/login",
			strings.NewReader(`{"email":"nobody@example.com","password":"secret123"}`)))

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
		assert.Contains(t, wrongPassword.Body.String(), "Invalid credentials")
	})

	t.Run("malformed body is unauthorized", func(t *testing.T) {
		mockStore := NewMockUsersStore()
		srv := newTestServer(t, mockStore)
		RegisterAuthenticateEndpoint(srv)

		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{not json`))
		rec := httptest.NewRecorder()

		srv.Router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
