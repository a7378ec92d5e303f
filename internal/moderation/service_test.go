// MentorHive | 2026
// service_test.go

package moderation

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhive/backend/internal/audit"
	"github.com/mentorhive/backend/internal/doubt"
	"github.com/mentorhive/backend/internal/juniorspace"
	"github.com/mentorhive/backend/internal/mentor"
	"github.com/mentorhive/backend/internal/user"
)

func newMockService(t *testing.T, cfg Config) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	svc := NewService(
		sqlxDB,
		cfg,
		user.NewRepository(sqlxDB),
		mentor.NewRepository(sqlxDB),
		doubt.NewRepository(sqlxDB),
		juniorspace.NewRepository(sqlxDB),
		audit.NewRepository(sqlxDB),
	)

	return svc, mock
}

func userColumns() []string {
	return []string{
		"id", "name", "email", "password_hash", "role", "bio",
		"is_mentor_approved", "banned", "created_at", "updated_at",
	}
}

func userRow(id, role string) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns()).AddRow(
		id, "Some User", id+"@example.com", "hash", role, "",
		false, false, time.Now(), time.Now(),
	)
}

func expectAdminCheck(mock sqlmock.Sqlmock, adminID, role string) {
	mock.ExpectQuery(`FROM users\s+WHERE id`).
		WithArgs(adminID).
		WillReturnRows(userRow(adminID, role))
}

func expectAuditInsert(
	mock sqlmock.Sqlmock,
	adminID, actionType, targetID string,
) {
	mock.ExpectQuery(`INSERT INTO admin_actions`).
		WithArgs(sqlmock.AnyArg(), adminID, actionType, targetID).
		WillReturnRows(
			sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()),
		)
}

func TestNonAdminCallersAreRejected(t *testing.T) {
	ctx := context.Background()

	for _, role := range []string{"junior", "mentor"} {
		t.Run(role, func(t *testing.T) {
			svc, mock := newMockService(t, Config{})
			expectAdminCheck(mock, "caller-1", role)

			_, err := svc.DeleteDoubt(ctx, "caller-1", "doubt-1")

			assert.ErrorIs(t, err, ErrNotAdmin)
			// No mutation ran: only the admin lookup was expected.
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestApproveMentor(t *testing.T) {
	svc, mock := newMockService(t, Config{})
	ctx := context.Background()

	expectAdminCheck(mock, "admin-1", "admin")

	mock.ExpectQuery(`FROM mentor_profiles\s+WHERE user_id`).
		WithArgs("mentor-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "badge", "expertise_tags",
			"approved_by_admin", "created_at", "updated_at",
		}).AddRow(
			"p1", "mentor-1", "", []byte(`["go"]`),
			false, time.Now(), time.Now(),
		))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE mentor_profiles\s+SET approved_by_admin`).
		WithArgs("mentor-1", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users\s+SET is_mentor_approved`).
		WithArgs("mentor-1", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectAuditInsert(mock, "admin-1", audit.ActionApproveMentor, "mentor-1")
	mock.ExpectCommit()

	resp, err := svc.ApproveMentor(ctx, "admin-1", "mentor-1")
	require.NoError(t, err)

	assert.Equal(t, "mentor-1", resp.MentorID)
	assert.NotEmpty(t, resp.ActionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveMentorMissingProfile(t *testing.T) {
	svc, mock := newMockService(t, Config{})
	ctx := context.Background()

	expectAdminCheck(mock, "admin-1", "admin")

	mock.ExpectQuery(`FROM mentor_profiles\s+WHERE user_id`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.ApproveMentor(ctx, "admin-1", "ghost")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectMentorDeletesProfileOnly(t *testing.T) {
	svc, mock := newMockService(t, Config{})
	ctx := context.Background()

	expectAdminCheck(mock, "admin-1", "admin")

	mock.ExpectBegin()
	// Rejection never touches users.is_mentor_approved.
	mock.ExpectExec(`DELETE FROM mentor_profiles WHERE user_id`).
		WithArgs("mentor-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectAuditInsert(mock, "admin-1", audit.ActionRejectMentor, "mentor-1")
	mock.ExpectCommit()

	resp, err := svc.RejectMentor(ctx, "admin-1", "mentor-1")
	require.NoError(t, err)

	assert.Equal(t, "mentor-1", resp.MentorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDoubtCascades(t *testing.T) {
	svc, mock := newMockService(t, Config{})
	ctx := context.Background()

	expectAdminCheck(mock, "admin-1", "admin")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM answers WHERE doubt_id`).
		WithArgs("doubt-1").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM comments WHERE doubt_id`).
		WithArgs("doubt-1").
		WillReturnResult(sqlmock.NewResult(0, 9))
	mock.ExpectExec(`DELETE FROM doubts WHERE id`).
		WithArgs("doubt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectAuditInsert(mock, "admin-1", audit.ActionDeleteDoubt, "doubt-1")
	mock.ExpectCommit()

	resp, err := svc.DeleteDoubt(ctx, "admin-1", "doubt-1")
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.AnswersDeleted)
	assert.Equal(t, int64(9), resp.CommentsDeleted)
	assert.NotEmpty(t, resp.ActionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDoubtMissingRollsBack(t *testing.T) {
	svc, mock := newMockService(t, Config{})
	ctx := context.Background()

	expectAdminCheck(mock, "admin-1", "admin")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM answers WHERE doubt_id`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM comments WHERE doubt_id`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM doubts WHERE id`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.DeleteDoubt(ctx, "admin-1", "ghost")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCommentCascadesOneLevel(t *testing.T) {
	svc, mock := newMockService(t, Config{})
	ctx := context.Background()

	expectAdminCheck(mock, "admin-1", "admin")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM comments WHERE parent_comment_id`).
		WithArgs("comment-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM comments WHERE id`).
		WithArgs("comment-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectAuditInsert(mock, "admin-1", audit.ActionDeleteComment, "comment-1")
	mock.ExpectCommit()

	resp, err := svc.DeleteComment(ctx, "admin-1", "comment-1")
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.RepliesDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBanUserIsAuditOnlyByDefault(t *testing.T) {
	svc, mock := newMockService(t, Config{EnforceBans: false})
	ctx := context.Background()

	expectAdminCheck(mock, "admin-1", "admin")

	// Target existence check.
	mock.ExpectQuery(`FROM users\s+WHERE id`).
		WithArgs("user-7").
		WillReturnRows(userRow("user-7", "junior"))

	mock.ExpectBegin()
	// No UPDATE users SET banned: the audit entry is the only effect.
	expectAuditInsert(mock, "admin-1", audit.ActionBanUser, "user-7")
	mock.ExpectCommit()

	resp, err := svc.BanUser(ctx, "admin-1", "user-7")
	require.NoError(t, err)

	assert.Equal(t, "user-7", resp.UserID)
	assert.NotEmpty(t, resp.ActionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBanUserFlipsFlagWhenEnforced(t *testing.T) {
	svc, mock := newMockService(t, Config{EnforceBans: true})
	ctx := context.Background()

	expectAdminCheck(mock, "admin-1", "admin")

	mock.ExpectQuery(`FROM users\s+WHERE id`).
		WithArgs("user-7").
		WillReturnRows(userRow("user-7", "junior"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users\s+SET banned`).
		WithArgs("user-7", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectAuditInsert(mock, "admin-1", audit.ActionBanUser, "user-7")
	mock.ExpectCommit()

	_, err := svc.BanUser(ctx, "admin-1", "user-7")
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterAdminRejectsBadSecret(t *testing.T) {
	svc, mock := newMockService(t, Config{AdminSecretKey: "right"})
	ctx := context.Background()

	_, err := svc.RegisterAdmin(ctx, RegisterAdminRequest{
		Name:      "Admin",
		Email:     "admin@example.com",
		Password:  "password",
		SecretKey: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidSecretKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterAdmin(t *testing.T) {
	svc, mock := newMockService(t, Config{AdminSecretKey: "right"})
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(
			sqlmock.AnyArg(),
			"Admin",
			"admin@example.com",
			sqlmock.AnyArg(),
			"admin",
			"",
			true,
		).
		WillReturnRows(sqlmock.NewRows([]string{
			"created_at", "updated_at",
		}).AddRow(time.Now(), time.Now()))

	admin, err := svc.RegisterAdmin(ctx, RegisterAdminRequest{
		Name:      "Admin",
		Email:     "Admin@Example.com",
		Password:  "password",
		SecretKey: "right",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin", admin.Role)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.True(t, admin.IsMentorApproved)
	assert.NoError(t, mock.ExpectationsWereMet())
}
