package endpoints

import (
	"encoding/json"
	"net/http"

	"userd/pkg/audit"
	"userd/pkg/server"
)

// LoginRequest represents the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// RegisterAuthenticateEndpoint registers the login endpoint
func RegisterAuthenticateEndpoint(s *server.Server) {
	service := s.Users
	tokens := s.Tokens
	cfg := s.Config

	s.Router.HandleFunc(
		"/auth/login",
		func(w http.ResponseWriter, r *http.Request) {
			var req LoginRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}

			account, err := service.Authenticate(req.Email, req.Password)
			if err != nil {
				audit.Log(audit.AuthenticateEvent{
					Email:        req.Email,
					ClientIP:     clientIP(r, cfg),
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithServiceError(w, err)
				return
			}

			accessToken, err := tokens.Issue(account.ID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to issue token")
				return
			}

			audit.Log(audit.AuthenticateEvent{
				Email:    account.Email,
				UserID:   account.ID,
				ClientIP: clientIP(r, cfg),
				Success:  true,
			})

			respondWithJSON(w, http.StatusOK, LoginResponse{
				AccessToken: accessToken,
				TokenType:   "Bearer",
				ExpiresIn:   int64(tokens.TTL().Seconds()),
			})
		},
	).Methods("POST")
}
