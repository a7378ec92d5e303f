// MentorHive | 2026
// service_test.go

package doubt

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhive/backend/internal/core"
)

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	Room  string
	Event string
}

func (b *recordingBroadcaster) Broadcast(room, event string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, recordedEvent{Room: room, Event: event})
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
	return NewService(sqlxDB, NewRepository(sqlxDB), broadcaster), mock
}

func doubtColumns() []string {
	return []string{
		"id", "title", "description", "tags", "status", "author_id",
		"created_at", "updated_at",
	}
}

func doubtRow(id, status, authorID string) *sqlmock.Rows {
	return sqlmock.NewRows(doubtColumns()).AddRow(
		id, "How do goroutine leaks happen?",
		"I keep seeing goroutines pile up in pprof and cannot tell why.",
		[]byte(`["go"]`), status, authorID, time.Now(), time.Now(),
	)
}

func commentRow(id, doubtID, userID string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "content", "doubt_id", "user_id", "parent_comment_id",
		"created_at", "updated_at",
	}).AddRow(id, "me too", doubtID, userID, nil, time.Now(), time.Now())
}

func TestCreateAnswerFlipsOpenDoubtToAnswered(t *testing.T) {
	svc, mock := newMockService(t, nil)
	ctx := context.Background()

	mock.ExpectQuery(`FROM doubts\s+WHERE id`).
		WithArgs("doubt-1").
		WillReturnRows(doubtRow("doubt-1", StatusOpen, "author-1"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO answers`).
		WithArgs(
			sqlmock.AnyArg(),
			"Use context cancellation and always close your channels.",
			"doubt-1",
			"mentor-1",
		).
		WillReturnRows(sqlmock.NewRows([]string{
			"created_at", "updated_at",
		}).AddRow(time.Now(), time.Now()))
	mock.ExpectExec(`UPDATE doubts SET status`).
		WithArgs("doubt-1", StatusAnswered).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	answer, err := svc.CreateAnswer(ctx, "mentor-1", "doubt-1",
		CreateAnswerRequest{
			Content: "Use context cancellation and always close your channels.",
		})
	require.NoError(t, err)

	assert.Equal(t, "doubt-1", answer.DoubtID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAnswerKeepsResolvedStatus(t *testing.T) {
	svc, mock := newMockService(t, nil)
	ctx := context.Background()

	mock.ExpectQuery(`FROM doubts\s+WHERE id`).
		WithArgs("doubt-1").
		WillReturnRows(doubtRow("doubt-1", StatusResolved, "author-1"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO answers`).
		WithArgs(
			sqlmock.AnyArg(), sqlmock.AnyArg(), "doubt-1", "mentor-1",
		).
		WillReturnRows(sqlmock.NewRows([]string{
			"created_at", "updated_at",
		}).AddRow(time.Now(), time.Now()))
	mock.ExpectCommit()

	_, err := svc.CreateAnswer(ctx, "mentor-1", "doubt-1",
		CreateAnswerRequest{
			Content: "Late addition with a different approach entirely.",
		})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDoubtRequiresOwnerOrAdmin(t *testing.T) {
	svc, mock := newMockService(t, nil)
	ctx := context.Background()

	mock.ExpectQuery(`FROM doubts\s+WHERE id`).
		WithArgs("doubt-1").
		WillReturnRows(doubtRow("doubt-1", StatusOpen, "author-1"))

	err := svc.DeleteDoubt(ctx, "someone-else", "junior", "doubt-1")

	assert.ErrorIs(t, err, core.ErrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDoubtByOwnerCascades(t *testing.T) {
	svc, mock := newMockService(t, nil)
	ctx := context.Background()

	mock.ExpectQuery(`FROM doubts\s+WHERE id`).
		WithArgs("doubt-1").
		WillReturnRows(doubtRow("doubt-1", StatusOpen, "author-1"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM answers WHERE doubt_id`).
		WithArgs("doubt-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM comments WHERE doubt_id`).
		WithArgs("doubt-1").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`DELETE FROM doubts WHERE id`).
		WithArgs("doubt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.DeleteDoubt(ctx, "author-1", "junior", "doubt-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommentBroadcastsToDoubtRoom(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	svc, mock := newMockService(t, broadcaster)
	ctx := context.Background()

	mock.ExpectQuery(`FROM doubts\s+WHERE id`).
		WithArgs("doubt-1").
		WillReturnRows(doubtRow("doubt-1", StatusOpen, "author-1"))

	mock.ExpectQuery(`INSERT INTO comments`).
		WithArgs(
			sqlmock.AnyArg(), "same problem here", "doubt-1", "user-2", nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{
			"created_at", "updated_at",
		}).AddRow(time.Now(), time.Now()))

	comment, err := svc.CreateComment(ctx, "user-2", "doubt-1",
		CreateCommentRequest{Content: "same problem here"})
	require.NoError(t, err)

	assert.Equal(t, "doubt-1", comment.DoubtID)
	require.Len(t, broadcaster.events, 1)
	assert.Equal(t, "doubt-doubt-1", broadcaster.events[0].Room)
	assert.Equal(t, "new-comment", broadcaster.events[0].Event)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommentRejectsCrossDoubtParent(t *testing.T) {
	svc, mock := newMockService(t, nil)
	ctx := context.Background()

	mock.ExpectQuery(`FROM doubts\s+WHERE id`).
		WithArgs("doubt-1").
		WillReturnRows(doubtRow("doubt-1", StatusOpen, "author-1"))

	mock.ExpectQuery(`FROM comments\s+WHERE id`).
		WithArgs("parent-1").
		WillReturnRows(commentRow("parent-1", "other-doubt", "user-9"))

	parentID := "parent-1"
	_, err := svc.CreateComment(ctx, "user-2", "doubt-1",
		CreateCommentRequest{
			Content:         "reply",
			ParentCommentID: &parentID,
		})

	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCommentCascadesDirectRepliesOnly(t *testing.T) {
	svc, mock := newMockService(t, nil)
	ctx := context.Background()

	mock.ExpectQuery(`FROM comments\s+WHERE id`).
		WithArgs("comment-1").
		WillReturnRows(commentRow("comment-1", "doubt-1", "user-2"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM comments WHERE parent_comment_id`).
		WithArgs("comment-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM comments WHERE id`).
		WithArgs("comment-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.DeleteComment(ctx, "user-2", "junior", "comment-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCommentByNonAuthorNonAdmin(t *testing.T) {
	svc, mock := newMockService(t, nil)
	ctx := context.Background()

	mock.ExpectQuery(`FROM comments\s+WHERE id`).
		WithArgs("comment-1").
		WillReturnRows(commentRow("comment-1", "doubt-1", "user-2"))

	err := svc.DeleteComment(ctx, "intruder", "mentor", "comment-1")

	assert.ErrorIs(t, err, core.ErrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}
