// Package model defines the database models for userd.
//
// This package contains GORM models that map to the userd PostgreSQL schema.
//
// # Core Models
//
//   - User: a registered account with a bcrypt password hash
//
// # Database Schema
//
// The database uses PostgreSQL with the following tables:
//
//   - users: registered accounts, with unique indexes on username and email
//   - messages: audit records, written when AUDIT_DATABASE_URL is set
package model
