package gorm

import (
	"errors"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"userd/pkg/model"
	"userd/pkg/server/store"
)

// uniqueViolation is the SQLSTATE postgres reports when an insert or
// update collides with a unique index.
const uniqueViolation = "23505"

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// FindByID retrieves a user by primary key.
func (s *UsersStore) FindByID(id int64) (*model.User, error) {
	var user model.User
	tx := s.db.Where("id = ?", id).First(&user)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &user, nil
}

// FindByEmail retrieves a user by email.
func (s *UsersStore) FindByEmail(email string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("email = ?", email).First(&user)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &user, nil
}

// FindByEmailOrUsername retrieves the first user matching either field.
func (s *UsersStore) FindByEmailOrUsername(email, username string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("email = ? OR username = ?", email, username).Order("id").First(&user)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &user, nil
}

// Insert stores a new user.
func (s *UsersStore) Insert(user *model.User) error {
	if err := s.db.Create(user).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update applies the non-nil fields to an existing user and returns the
// updated row.
func (s *UsersStore) Update(id int64, fields store.UserFields) (*model.User, error) {
	columns := map[string]interface{}{}
	if fields.Username != nil {
		columns["username"] = *fields.Username
	}
	if fields.Email != nil {
		columns["email"] = *fields.Email
	}
	if fields.PasswordHash != nil {
		columns["password_hash"] = *fields.PasswordHash
	}

	if len(columns) > 0 {
		tx := s.db.Model(&model.User{}).Where("id = ?", id).Updates(columns)
		if tx.Error != nil {
			return nil, translateError(tx.Error)
		}
		if tx.RowsAffected == 0 {
			return nil, store.ErrUserNotFound
		}
	}

	return s.FindByID(id)
}

// Delete removes a user.
func (s *UsersStore) Delete(id int64) error {
	tx := s.db.Where("id = ?", id).Delete(&model.User{})
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// ListAll returns all users ordered by ID.
func (s *UsersStore) ListAll() ([]model.User, error) {
	var users []model.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrUserNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return store.ErrDuplicateUser
	}
	return err
}
