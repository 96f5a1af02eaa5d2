package users

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"userd/pkg/model"
	"userd/pkg/server/store"
)

// DefaultBcryptCost is the bcrypt work factor used when none is configured
const DefaultBcryptCost = 10

// Account is the external view of a user. It never carries the password
// hash.
type Account struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateParams holds the fields of a partial account update. Nil fields
// are left unchanged.
type UpdateParams struct {
	Username *string
	Email    *string
	Password *string
}

// Service implements account lifecycle and credential verification on top
// of a UsersStore
type Service struct {
	users store.UsersStore
	cost  func() int
}

// NewService creates a new Service. A bcryptCost of 0 selects
// DefaultBcryptCost.
func NewService(users store.UsersStore, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	return NewServiceWithCost(users, func() int { return bcryptCost })
}

// NewServiceWithCost creates a Service whose bcrypt work factor is read
// from cost on every hash, so configuration reloads take effect without
// rebuilding the service.
func NewServiceWithCost(users store.UsersStore, cost func() int) *Service {
	return &Service{users: users, cost: cost}
}

// Register creates a new account. Username and email must be unused; the
// password is stored as a bcrypt hash.
func (s *Service) Register(username, email, password string) (*Account, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || strings.TrimSpace(password) == "" {
		return nil, NewError(KindInvalidInput, "Missing required fields")
	}

	_, err := s.users.FindByEmailOrUsername(email, username)
	if err == nil {
		return nil, NewError(KindConflict, "User with this email or username already exists")
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost())
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Insert(user); err != nil {
		// A racing register can slip past the pre-check; the unique
		// indexes are the last line of defense.
		if errors.Is(err, store.ErrDuplicateUser) {
			return nil, NewError(KindConflict, "User with this email or username already exists")
		}
		return nil, err
	}

	return accountView(user), nil
}

// Authenticate verifies an email/password pair. A missing account and a
// wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(email, password string) (*Account, error) {
	if email == "" || password == "" {
		return nil, NewError(KindUnauthorized, "Invalid credentials")
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, NewError(KindUnauthorized, "Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewError(KindUnauthorized, "Invalid credentials")
	}

	return accountView(user), nil
}

// List returns all accounts ordered by ID
func (s *Service) List() ([]Account, error) {
	users, err := s.users.ListAll()
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(users))
	for i := range users {
		accounts = append(accounts, *accountView(&users[i]))
	}
	return accounts, nil
}

// Get returns a single account by ID
func (s *Service) Get(id int64) (*Account, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, NewError(KindNotFound, "User not found")
		}
		return nil, err
	}
	return accountView(user), nil
}

// Update applies a partial update to an account. A supplied password is
// re-hashed; changed usernames and emails are re-checked for uniqueness
// against other accounts.
func (s *Service) Update(id int64, params UpdateParams) (*Account, error) {
	existing, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, NewError(KindNotFound, "User not found")
		}
		return nil, err
	}

	fields := store.UserFields{}

	newUsername := existing.Username
	if params.Username != nil {
		newUsername = strings.TrimSpace(*params.Username)
		if newUsername == "" {
			return nil, NewError(KindInvalidInput, "Missing required fields")
		}
		fields.Username = &newUsername
	}

	newEmail := existing.Email
	if params.Email != nil {
		newEmail = strings.TrimSpace(*params.Email)
		if newEmail == "" {
			return nil, NewError(KindInvalidInput, "Missing required fields")
		}
		fields.Email = &newEmail
	}

	if params.Password != nil {
		if strings.TrimSpace(*params.Password) == "" {
			return nil, NewError(KindInvalidInput, "Missing required fields")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*params.Password), s.cost())
		if err != nil {
			return nil, err
		}
		hashStr := string(hash)
		fields.PasswordHash = &hashStr
	}

	if fields.Username != nil || fields.Email != nil {
		other, err := s.users.FindByEmailOrUsername(newEmail, newUsername)
		if err == nil && other.ID != id {
			return nil, NewError(KindConflict, "User with this email or username already exists")
		}
		if err != nil && !errors.Is(err, store.ErrUserNotFound) {
			return nil, err
		}
	}

	updated, err := s.users.Update(id, fields)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, NewError(KindNotFound, "User not found")
		}
		if errors.Is(err, store.ErrDuplicateUser) {
			return nil, NewError(KindConflict, "User with this email or username already exists")
		}
		return nil, err
	}

	return accountView(updated), nil
}

// Delete removes an account by ID
func (s *Service) Delete(id int64) error {
	if err := s.users.Delete(id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return NewError(KindNotFound, "User not found")
		}
		return err
	}
	return nil
}

func accountView(user *model.User) *Account {
	return &Account{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
