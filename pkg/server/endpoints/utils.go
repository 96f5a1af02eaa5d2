package endpoints

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"userd/pkg/config"
	"userd/pkg/users"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithServiceError maps a service error onto an HTTP status
func respondWithServiceError(w http.ResponseWriter, err error) {
	kind, ok := users.KindOf(err)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch kind {
	case users.KindInvalidInput, users.KindConflict:
		respondWithError(w, http.StatusBadRequest, err.Error())
	case users.KindNotFound:
		respondWithError(w, http.StatusNotFound, err.Error())
	case users.KindUnauthorized:
		respondWithError(w, http.StatusUnauthorized, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// clientIP resolves the client address of a request. X-Forwarded-For is
// honored only when the direct peer is a trusted proxy.
func clientIP(r *http.Request, cfg *config.Config) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" && cfg.IsTrustedProxy(host) {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	return host
}
