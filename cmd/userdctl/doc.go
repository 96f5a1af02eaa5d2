// Package main provides userd, a small user management service with a REST
// API for registration, authentication and account administration.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/users: account business logic (registration, authentication)
//   - pkg/token: session token issuance and verification
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
// The server is run via the userdctl CLI:
//
//	# Generate a token signing key
//	export USERD_TOKEN_KEY="$(userdctl token-key generate)"
//
//	# Run database migrations
//	userdctl db migrate
//
//	# Create a first user
//	userdctl user create alice alice@example.com
//
//	# Start the server
//	userdctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - USERD_TOKEN_KEY: Base64-encoded 256-bit key for signing session tokens
//   - AUDIT_DATABASE_URL: optional PostgreSQL connection string for audit records
//   - USERD_LOG_LEVEL: Log level (debug, info, warn, error)
//   - PORT: Server port (default: 8080)
package main
