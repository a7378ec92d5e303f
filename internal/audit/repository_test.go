// MentorHive | 2026
// repository_test.go

package audit

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestRecord(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO admin_actions`).
		WithArgs(
			sqlmock.AnyArg(),
			"admin-1",
			ActionBanUser,
			"user-7",
		).
		WillReturnRows(
			sqlmock.NewRows([]string{"created_at"}).AddRow(now),
		)

	action, err := repo.Record(ctx, nil, "admin-1", ActionBanUser, "user-7")
	require.NoError(t, err)

	assert.NotEmpty(t, action.ID)
	assert.Equal(t, "admin-1", action.AdminID)
	assert.Equal(t, ActionBanUser, action.ActionType)
	assert.Equal(t, "user-7", action.TargetID)
	assert.Equal(t, now, action.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSecondPage(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM admin_actions`).
		WithArgs("admin-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	rows := sqlmock.NewRows([]string{
		"id", "admin_id", "action_type", "target_id", "created_at",
	})
	for i := 0; i < 5; i++ {
		rows.AddRow("a", "admin-1", ActionDeleteDoubt, "d", time.Now())
	}

	// page=2, limit=5 must skip the first five entries.
	mock.ExpectQuery(`FROM admin_actions`).
		WithArgs("admin-1", 5, 5).
		WillReturnRows(rows)

	actions, total, err := repo.List(ctx, ListActionsParams{
		AdminID:  "admin-1",
		Page:     2,
		PageSize: 5,
	})
	require.NoError(t, err)

	assert.Len(t, actions, 5)
	assert.Equal(t, 12, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFiltersByActionType(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM admin_actions`).
		WithArgs("admin-1", ActionBanUser).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`FROM admin_actions`).
		WithArgs("admin-1", ActionBanUser, 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "admin_id", "action_type", "target_id", "created_at",
		}).AddRow("a", "admin-1", ActionBanUser, "u", time.Now()))

	actions, total, err := repo.List(ctx, ListActionsParams{
		AdminID:    "admin-1",
		ActionType: ActionBanUser,
	})
	require.NoError(t, err)

	assert.Len(t, actions, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsTotalEqualsBreakdownSum(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(`GROUP BY action_type`).
		WithArgs("admin-1").
		WillReturnRows(sqlmock.NewRows([]string{"action_type", "count"}).
			AddRow(ActionApproveMentor, 3).
			AddRow(ActionDeleteDoubt, 7).
			AddRow(ActionBanUser, 2))

	stats, err := repo.Stats(ctx, "admin-1")
	require.NoError(t, err)

	sum := 0
	for _, count := range stats.Breakdown {
		sum += count
	}
	assert.Equal(t, stats.TotalActions, sum)
	assert.Equal(t, 12, stats.TotalActions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidActionType(t *testing.T) {
	assert.True(t, ValidActionType(ActionApproveMentor))
	assert.True(t, ValidActionType(ActionUnbanUser))
	assert.False(t, ValidActionType("promote_user"))
	assert.False(t, ValidActionType(""))
}
