// MentorHive | 2026
// service_test.go

package mentor

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhive/backend/internal/user"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewService(NewRepository(sqlx.NewDb(db, "sqlmock"))), mock
}

func TestCreateProfileRequiresMentorRole(t *testing.T) {
	svc, mock := newMockService(t)
	ctx := context.Background()
	req := CreateProfileRequest{ExpertiseTags: []string{"go"}}

	for _, role := range []string{user.RoleJunior, user.RoleAdmin} {
		_, err := svc.CreateProfile(ctx, "user-1", role, req)
		assert.ErrorIs(t, err, ErrNotMentor, "role %s", role)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProfileDuplicate(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`INSERT INTO mentor_profiles`).
		WithArgs(sqlmock.AnyArg(), "mentor-1", "", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := svc.CreateProfile(
		context.Background(),
		"mentor-1",
		user.RoleMentor,
		CreateProfileRequest{ExpertiseTags: []string{"go", "postgres"}},
	)

	assert.ErrorIs(t, err, ErrProfileExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProfile(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`INSERT INTO mentor_profiles`).
		WithArgs(sqlmock.AnyArg(), "mentor-1", "gold", `["go","postgres"]`).
		WillReturnRows(sqlmock.NewRows([]string{
			"created_at", "updated_at",
		}).AddRow(time.Now(), time.Now()))

	profile, err := svc.CreateProfile(
		context.Background(),
		"mentor-1",
		user.RoleMentor,
		CreateProfileRequest{
			Badge:         "gold",
			ExpertiseTags: []string{"go", "postgres"},
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "mentor-1", profile.UserID)
	assert.False(t, profile.ApprovedByAdmin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`FROM mentor_profiles\s+WHERE user_id`).
		WithArgs("mentor-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "badge", "expertise_tags",
			"approved_by_admin", "created_at", "updated_at",
		}).AddRow(
			"prof-1", "mentor-1", "silver", []byte(`["go"]`),
			true, time.Now(), time.Now(),
		))
	mock.ExpectQuery(`UPDATE mentor_profiles`).
		WithArgs("mentor-1", "gold", `["go"]`).
		WillReturnRows(sqlmock.NewRows([]string{
			"updated_at",
		}).AddRow(time.Now()))

	badge := "gold"
	profile, err := svc.UpdateProfile(
		context.Background(),
		"mentor-1",
		UpdateProfileRequest{Badge: &badge},
	)

	require.NoError(t, err)
	assert.Equal(t, "gold", profile.Badge)
	assert.Equal(t, []string{"go"}, []string(profile.ExpertiseTags))
	assert.True(t, profile.ApprovedByAdmin)
	assert.NoError(t, mock.ExpectationsWereMet())
}
