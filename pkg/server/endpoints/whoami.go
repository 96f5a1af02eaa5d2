package endpoints

import (
	"net/http"

	"userd/pkg/identity"
	"userd/pkg/server"
	"userd/pkg/server/middleware"
	"userd/pkg/users"
)

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	sessionMiddleware := middleware.NewSessionAuthenticator(s.Tokens)

	// Subrouter for /whoami so only it is gated by session auth
	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(sessionMiddleware.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami(s.Users)).Methods("GET")
}

func handleWhoami(service *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		// The token can outlive the account it was issued for
		account, err := service.Get(id.UserID)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		respondWithJSON(w, http.StatusOK, account)
	}
}
