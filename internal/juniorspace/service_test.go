// MentorHive | 2026
// service_test.go

package juniorspace

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhive/backend/internal/core"
)

type recordingBroadcaster struct {
	rooms  []string
	events []string
}

func (b *recordingBroadcaster) Broadcast(room, event string, payload any) {
	b.rooms = append(b.rooms, room)
	b.events = append(b.events, event)
}

func newMockService(
	t *testing.T,
	broadcaster Broadcaster,
) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewService(NewRepository(sqlxDB), broadcaster), mock
}

func TestCreatePostBroadcastsToJuniorSpace(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	svc, mock := newMockService(t, broadcaster)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO junior_space_posts`).
		WithArgs(
			sqlmock.AnyArg(),
			"landed my first code review today",
			"achievement",
			"junior-1",
		).
		WillReturnRows(sqlmock.NewRows([]string{
			"created_at", "updated_at",
		}).AddRow(time.Now(), time.Now()))

	post, err := svc.CreatePost(ctx, "junior-1", CreatePostRequest{
		Content:  "landed my first code review today",
		Category: "achievement",
	})
	require.NoError(t, err)

	assert.Equal(t, "junior-1", post.AuthorID)
	require.Len(t, broadcaster.rooms, 1)
	assert.Equal(t, JuniorSpaceRoom, broadcaster.rooms[0])
	assert.Equal(t, "new-post", broadcaster.events[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePostWithoutBroadcaster(t *testing.T) {
	svc, mock := newMockService(t, nil)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO junior_space_posts`).
		WithArgs(sqlmock.AnyArg(), "hello", "general", "junior-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"created_at", "updated_at",
		}).AddRow(time.Now(), time.Now()))

	_, err := svc.CreatePost(ctx, "junior-1", CreatePostRequest{
		Content:  "hello",
		Category: "general",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePostOwnership(t *testing.T) {
	svc, mock := newMockService(t, nil)
	ctx := context.Background()

	postRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "content", "category", "author_id",
			"created_at", "updated_at",
		}).AddRow(
			"post-1", "hello", "general", "junior-1",
			time.Now(), time.Now(),
		)
	}

	t.Run("stranger is rejected", func(t *testing.T) {
		mock.ExpectQuery(`FROM junior_space_posts\s+WHERE id`).
			WithArgs("post-1").
			WillReturnRows(postRow())

		err := svc.DeletePost(ctx, "stranger", "junior", "post-1")
		assert.ErrorIs(t, err, core.ErrForbidden)
	})

	t.Run("owner may delete", func(t *testing.T) {
		mock.ExpectQuery(`FROM junior_space_posts\s+WHERE id`).
			WithArgs("post-1").
			WillReturnRows(postRow())
		mock.ExpectExec(`DELETE FROM junior_space_posts WHERE id`).
			WithArgs("post-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := svc.DeletePost(ctx, "junior-1", "junior", "post-1")
		assert.NoError(t, err)
	})

	t.Run("admin override", func(t *testing.T) {
		mock.ExpectQuery(`FROM junior_space_posts\s+WHERE id`).
			WithArgs("post-1").
			WillReturnRows(postRow())
		mock.ExpectExec(`DELETE FROM junior_space_posts WHERE id`).
			WithArgs("post-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := svc.DeletePost(ctx, "someone-else", "admin", "post-1")
		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
