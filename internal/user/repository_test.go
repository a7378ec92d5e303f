// MentorHive | 2026
// repository_test.go

package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhive/backend/internal/core"
)

func newMockRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(
			"user-1", "Priya", "priya@example.com",
			sqlmock.AnyArg(), RoleJunior, "", false,
		).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &User{
		ID:           "user-1",
		Name:         "Priya",
		Email:        "priya@example.com",
		PasswordHash: "$argon2id$...",
		Role:         RoleJunior,
	})

	assert.ErrorIs(t, err, core.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail(t *testing.T) {
	repo, mock := newMockRepository(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`FROM users\s+WHERE email`).
			WithArgs("priya@example.com").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "email", "password_hash", "role", "bio",
				"is_mentor_approved", "banned", "created_at", "updated_at",
			}).AddRow(
				"user-1", "Priya", "priya@example.com", "hash", RoleJunior,
				"", false, false, time.Now(), time.Now(),
			))

		u, err := repo.GetByEmail(ctx, "priya@example.com")
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
		assert.Equal(t, RoleJunior, u.Role)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM users\s+WHERE email`).
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetBannedMissingUser(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE users\s+SET banned`).
		WithArgs("ghost", true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetBanned(context.Background(), "ghost", true)

	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFiltersAndPagination(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WithArgs("%priya%", RoleMentor).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`FROM users\s+WHERE TRUE AND \(email ILIKE`).
		WithArgs("%priya%", RoleMentor, 5, 5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "password_hash", "role", "bio",
			"is_mentor_approved", "banned", "created_at", "updated_at",
		}).AddRow(
			"user-9", "Priya", "priya@example.com", "hash", RoleMentor,
			"", true, false, time.Now(), time.Now(),
		))

	users, total, err := repo.List(context.Background(), ListUsersParams{
		Page:     2,
		PageSize: 5,
		Search:   "priya",
		Role:     RoleMentor,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, users, 1)
	assert.Equal(t, "user-9", users[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
