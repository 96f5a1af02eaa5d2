package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"userd/pkg/audit"
	"userd/pkg/config"
	"userd/pkg/server"
	"userd/pkg/users"
)

// CreateUserRequest represents the body of POST /users
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest represents the body of PUT /users/{id}. Absent fields
// are left unchanged; unknown fields are rejected.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// DeleteUserResponse represents the body of a successful DELETE /users/{id}
type DeleteUserResponse struct {
	Message string `json:"message"`
}

// RegisterUsersEndpoints registers the user CRUD endpoints
func RegisterUsersEndpoints(s *server.Server) {
	service := s.Users
	cfg := s.Config
	router := s.Router

	router.HandleFunc("/users", handleCreateUser(service, cfg)).Methods("POST")
	router.HandleFunc("/users", handleListUsers(service)).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}", handleGetUser(service)).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}", handleUpdateUser(service, cfg)).Methods("PUT")
	router.HandleFunc("/users/{id:[0-9]+}", handleDeleteUser(service, cfg)).Methods("DELETE")
}

func handleCreateUser(service *users.Service, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		account, err := service.Register(req.Username, req.Email, req.Password)
		if err != nil {
			audit.Log(audit.UserEvent{
				Username:     req.Username,
				ClientIP:     clientIP(r, cfg),
				Operation:    "create",
				Success:      false,
				ErrorMessage: err.Error(),
			})
			respondWithServiceError(w, err)
			return
		}

		audit.Log(audit.UserEvent{
			UserID:    account.ID,
			Username:  account.Username,
			ClientIP:  clientIP(r, cfg),
			Operation: "create",
			Success:   true,
		})

		respondWithJSON(w, http.StatusCreated, account)
	}
}

func handleListUsers(service *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.List()
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, accounts)
	}
}

func handleGetUser(service *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, err := service.Get(userID(r))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, account)
	}
}

func handleUpdateUser(service *users.Service, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := userID(r)

		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()

		var req UpdateUserRequest
		if err := decoder.Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}

		account, err := service.Update(id, users.UpdateParams{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			audit.Log(audit.UserEvent{
				UserID:       id,
				ClientIP:     clientIP(r, cfg),
				Operation:    "update",
				Success:      false,
				ErrorMessage: err.Error(),
			})
			respondWithServiceError(w, err)
			return
		}

		audit.Log(audit.UserEvent{
			UserID:    account.ID,
			Username:  account.Username,
			ClientIP:  clientIP(r, cfg),
			Operation: "update",
			Success:   true,
		})
		if req.Password != nil {
			audit.Log(audit.PasswordEvent{
				UserID:   account.ID,
				Username: account.Username,
				ClientIP: clientIP(r, cfg),
				Success:  true,
			})
		}

		respondWithJSON(w, http.StatusOK, account)
	}
}

func handleDeleteUser(service *users.Service, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := userID(r)

		if err := service.Delete(id); err != nil {
			audit.Log(audit.UserEvent{
				UserID:       id,
				ClientIP:     clientIP(r, cfg),
				Operation:    "delete",
				Success:      false,
				ErrorMessage: err.Error(),
			})
			respondWithServiceError(w, err)
			return
		}

		audit.Log(audit.UserEvent{
			UserID:    id,
			ClientIP:  clientIP(r, cfg),
			Operation: "delete",
			Success:   true,
		})

		respondWithJSON(w, http.StatusOK, DeleteUserResponse{Message: "User deleted successfully"})
	}
}

// userID extracts the {id} path variable. The route pattern restricts it
// to digits, so parse failures cannot happen on registered routes.
func userID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}
