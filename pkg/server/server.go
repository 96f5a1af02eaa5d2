package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"userd/pkg/config"
	"userd/pkg/server/store"
	gormstore "userd/pkg/server/store/gorm"
	"userd/pkg/token"
	"userd/pkg/users"
)

type Server struct {
	UsersStore  store.UsersStore
	HealthStore store.HealthStore
	Users       *users.Service
	Tokens      *token.Issuer
	Config      *config.Config
	Router      *mux.Router
	DB          *gorm.DB
	srv         *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.Config,
	tokens *token.Issuer,
	addr string,
) *Server {

	usersStore := gormstore.NewUsersStore(db)

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    addr,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		UsersStore:  usersStore,
		HealthStore: gormstore.NewHealthStore(db),
		Users:       users.NewServiceWithCost(usersStore, cfg.HashCost),
		Tokens:      tokens,
		Config:      cfg,
		Router:      router,
		DB:          db,
		srv:         srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown stops the server, waiting for in-flight requests to finish
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
