package endpoints

import (
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"userd/pkg/audit"
	"userd/pkg/config"
	"userd/pkg/server"
	"userd/pkg/server/store"
	"userd/pkg/token"
	"userd/pkg/users"
)

func init() {
	// Keep audit noise out of test output
	audit.SetEnabled(false)
}

// newTestServer builds a Server around mock stores, without a listener
func newTestServer(t *testing.T, usersStore store.UsersStore) *server.Server {
	t.Helper()

	t.Setenv("USERD_CONFIG_PATH", t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.BcryptCost = bcrypt.MinCost

	key := make([]byte, token.KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	tokens, err := token.NewIssuer(key, cfg.TokenIssuer, time.Hour)
	require.NoError(t, err)

	return &server.Server{
		UsersStore:  usersStore,
		HealthStore: NewMockHealthStore(),
		Users:       users.NewService(usersStore, cfg.BcryptCost),
		Tokens:      tokens,
		Config:      cfg,
		Router:      mux.NewRouter().UseEncodedPath(),
	}
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}
