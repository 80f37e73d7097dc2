package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func userRows(id int, name, email, role string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "phone", "created_at"}).
		AddRow(id, name, email, "$2a$10$hash", role, "08123456789", time.Now())
}

func TestCreateAndGetUser(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Andi", "andi@example.com", "$2a$10$hash", "user", "08123456789").
		WillReturnRows(userRows(1, "Andi", "andi@example.com", "user"))

	u, err := repo.Create(context.Background(), "Andi", "andi@example.com", "$2a$10$hash", "user", "08123456789")
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.Equal(t, "user", u.Role)

	mock.ExpectQuery(`SELECT .+ FROM users`).
		WithArgs(1).
		WillReturnRows(userRows(1, "Andi", "andi@example.com", "user"))

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "andi@example.com", got.Email)
}

func TestEmailExists(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("taken@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "taken@example.com")
	require.NoError(t, err)
	require.True(t, exists)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("free@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = repo.EmailExists(context.Background(), "free@example.com")
	require.NoError(t, err)
	require.False(t, exists)
}
