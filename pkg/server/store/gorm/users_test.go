package gorm

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"userd/pkg/model"
	"userd/pkg/server/store"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)

	return gormDB, mock
}

func userRows(users ...model.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"})
	for _, u := range users {
		rows.AddRow(u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt)
	}
	return rows
}

func TestFindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		usersStore := NewUsersStore(db)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(userRows(model.User{
				ID: 1, Username: "alice", Email: "alice@example.com",
				PasswordHash: "h1", CreatedAt: time.Now(),
			}))

		user, err := usersStore.FindByID(1)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		usersStore := NewUsersStore(db)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(userRows())

		_, err := usersStore.FindByID(42)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestFindByEmail(t *testing.T) {
	db, mock := setupTestDB(t)
	usersStore := NewUsersStore(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("alice@example.com").
		WillReturnRows(userRows(model.User{ID: 1, Email: "alice@example.com"}))

	user, err := usersStore.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestFindByEmailOrUsername(t *testing.T) {
	db, mock := setupTestDB(t)
	usersStore := NewUsersStore(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 OR username = \$2`).
		WithArgs("alice@example.com", "alice").
		WillReturnRows(userRows(model.User{ID: 1, Username: "alice"}))

	user, err := usersStore.FindByEmailOrUsername("alice@example.com", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestInsert(t *testing.T) {
	t.Run("assigns the generated id", func(t *testing.T) {
		db, mock := setupTestDB(t)
		usersStore := NewUsersStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectCommit()

		user := &model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "h1"}
		require.NoError(t, usersStore.Insert(user))
		assert.Equal(t, int64(7), user.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violations", func(t *testing.T) {
		db, mock := setupTestDB(t)
		usersStore := NewUsersStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: uniqueViolation})
		mock.ExpectRollback()

		err := usersStore.Insert(&model.User{Username: "alice", Email: "alice@example.com"})
		assert.ErrorIs(t, err, store.ErrDuplicateUser)
	})
}

func TestUpdate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("updates only the supplied columns", func(t *testing.T) {
		db, mock := setupTestDB(t)
		usersStore := NewUsersStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "users" SET "username"=\$1 WHERE id = \$2`).
			WithArgs("alice2", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(userRows(model.User{ID: 1, Username: "alice2"}))

		user, err := usersStore.Update(1, store.UserFields{Username: strPtr("alice2")})
		require.NoError(t, err)
		assert.Equal(t, "alice2", user.Username)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := setupTestDB(t)
		usersStore := NewUsersStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "users"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		_, err := usersStore.Update(42, store.UserFields{Username: strPtr("bob")})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("maps unique violations", func(t *testing.T) {
		db, mock := setupTestDB(t)
		usersStore := NewUsersStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "users"`).
			WillReturnError(&pgconn.PgError{Code: uniqueViolation})
		mock.ExpectRollback()

		_, err := usersStore.Update(1, store.UserFields{Email: strPtr("bob@example.com")})
		assert.ErrorIs(t, err, store.ErrDuplicateUser)
	})

	t.Run("no fields reads back the row", func(t *testing.T) {
		db, mock := setupTestDB(t)
		usersStore := NewUsersStore(db)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(userRows(model.User{ID: 1, Username: "alice"}))

		user, err := usersStore.Update(1, store.UserFields{})
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})
}

func TestDelete(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		db, mock := setupTestDB(t)
		usersStore := NewUsersStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, usersStore.Delete(1))
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := setupTestDB(t)
		usersStore := NewUsersStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "users"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.ErrorIs(t, usersStore.Delete(42), store.ErrUserNotFound)
	})
}

func TestListAll(t *testing.T) {
	db, mock := setupTestDB(t)
	usersStore := NewUsersStore(db)

	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY id`).
		WillReturnRows(userRows(
			model.User{ID: 1, Username: "alice"},
			model.User{ID: 2, Username: "bob"},
		))

	users, err := usersStore.ListAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
}

func TestTranslateErrorPassthrough(t *testing.T) {
	sentinel := errors.New("connection refused")
	assert.Equal(t, sentinel, translateError(sentinel))
}
