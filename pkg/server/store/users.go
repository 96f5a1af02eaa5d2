package store

import (
	"errors"

	"userd/pkg/model"
)

// ErrUserNotFound is returned when no user matches the lookup
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when an insert or update collides with the
// unique indexes on username or email
var ErrDuplicateUser = errors.New("user with this email or username already exists")

// UserFields holds the columns of a partial update. Nil fields are left
// untouched.
type UserFields struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// UsersStore abstracts user storage operations
type UsersStore interface {
	// FindByID retrieves a user by primary key.
	// Returns ErrUserNotFound if the user doesn't exist.
	FindByID(id int64) (*model.User, error)

	// FindByEmail retrieves a user by email.
	// Returns ErrUserNotFound if the user doesn't exist.
	FindByEmail(email string) (*model.User, error)

	// FindByEmailOrUsername retrieves the first user matching either field.
	// Returns ErrUserNotFound if no user matches.
	FindByEmailOrUsername(email, username string) (*model.User, error)

	// Insert stores a new user. The database assigns ID and CreatedAt.
	// Returns ErrDuplicateUser on a unique-index violation.
	Insert(user *model.User) error

	// Update applies the non-nil fields to an existing user and returns
	// the updated row. Returns ErrUserNotFound if the user doesn't exist
	// and ErrDuplicateUser on a unique-index violation.
	Update(id int64, fields UserFields) (*model.User, error)

	// Delete removes a user. Returns ErrUserNotFound if the user
	// doesn't exist.
	Delete(id int64) error

	// ListAll returns all users ordered by ID.
	ListAll() ([]model.User, error)
}
