// Package config provides configuration management for userd.
//
// Settings are loaded from an optional YAML file and overridden by
// environment variables, with the source of each value tracked for
// "userdctl configuration show".
//
// # Configuration Sources
//
//   - /etc/userd/config/userd.yml (or USERD_CONFIG_PATH)
//   - USERD_* environment variables
//
// # Key Environment Variables
//
//   - DATABASE_URL: Database connection
//   - USERD_TOKEN_KEY: Session token signing key
//   - USERD_LOG_LEVEL: Logging verbosity
//   - USERD_LISTEN_ADDRESS / PORT: Server listen address
package config
