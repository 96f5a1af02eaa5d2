// Package store provides storage abstractions for the userd server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - UsersStore: account CRUD and credential lookup
//   - HealthStore: database connectivity checks
//
// # Usage
//
//	usersStore := gorm.NewUsersStore(db)
//	user, err := usersStore.FindByEmail("alice@example.com")
//	if err != nil {
//	    if errors.Is(err, store.ErrUserNotFound) {
//	        // Handle not found
//	    }
//	}
package store
