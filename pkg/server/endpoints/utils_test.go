package endpoints

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userd/pkg/config"
)

func TestClientIP(t *testing.T) {
	cfg := &config.Config{TrustedProxies: []string{"10.0.0.0/8"}}

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{
			name:       "direct peer",
			remoteAddr: "203.0.113.9:4567",
			want:       "203.0.113.9",
		},
		{
			name:       "forwarded header from untrusted peer is ignored",
			remoteAddr: "203.0.113.9:4567",
			forwarded:  "198.51.100.7",
			want:       "203.0.113.9",
		},
		{
			name:       "forwarded header from trusted proxy is honored",
			remoteAddr: "10.1.2.3:4567",
			forwarded:  "198.51.100.7, 10.1.2.3",
			want:       "198.51.100.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			assert.Equal(t, tt.want, clientIP(req, cfg))
		})
	}
}

func TestClientIPObservesConfigReload(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("USERD_CONFIG_PATH", dir)
	require.NoError(t, config.Reload())
	t.Cleanup(func() {
		_ = os.Remove(filepath.Join(dir, config.ConfigFileName))
		_ = config.Reload()
	})

	cfg := config.Get()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.RemoteAddr = "10.1.2.3:4567"
	req.Header.Set("X-Forwarded-For", "198.51.100.7")

	// The peer is not a trusted proxy yet.
	assert.Equal(t, "10.1.2.3", clientIP(req, cfg))

	content := []byte("trusted_proxies:\n  - 10.0.0.0/8\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), content, 0o644))
	require.NoError(t, config.Reload())

	// The handler holds the same *Config and sees the reloaded value.
	assert.Equal(t, "198.51.100.7", clientIP(req, cfg))
}
