// Package server provides the HTTP server for the userd API.
//
// It uses gorilla/mux for routing and gorilla/handlers for request
// logging. The Server struct wires the stores, the account service and
// the token issuer together; API endpoints are registered via the
// endpoints subpackage:
//
//	srv := server.NewServer(db, cfg, tokens, addr)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
//   - POST /users - register an account
//   - GET /users - list accounts
//   - GET /users/{id} - fetch an account
//   - PUT /users/{id} - update an account
//   - DELETE /users/{id} - delete an account
//   - POST /auth/login - exchange credentials for a session token
//   - GET /whoami - token introspection
//   - GET / and GET /health - status and health checks
package server
