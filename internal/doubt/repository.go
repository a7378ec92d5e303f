// MentorHive | 2026
// repository.go

package doubt

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mentorhive/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, doubt *Doubt) error
	GetByID(ctx context.Context, id string) (*Doubt, error)
	Update(ctx context.Context, doubt *Doubt) error
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, params ListDoubtsParams) ([]Doubt, int, error)

	CreateAnswer(ctx context.Context, answer *Answer) error
	GetAnswerByID(ctx context.Context, id string) (*Answer, error)
	UpdateAnswer(ctx context.Context, answer *Answer) error
	DeleteAnswer(ctx context.Context, id string) error
	ListAnswersByDoubt(ctx context.Context, doubtID string) ([]Answer, error)
	DeleteAnswersByDoubt(ctx context.Context, doubtID string) (int64, error)

	CreateComment(ctx context.Context, comment *Comment) error
	GetCommentByID(ctx context.Context, id string) (*Comment, error)
	DeleteComment(ctx context.Context, id string) error
	DeleteCommentChildren(ctx context.Context, parentID string) (int64, error)
	ListCommentsByDoubt(ctx context.Context, doubtID string) ([]Comment, error)
	DeleteCommentsByDoubt(ctx context.Context, doubtID string) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, doubt *Doubt) error {
	query := `
		INSERT INTO doubts (id, title, description, tags, status, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, doubt, query,
		doubt.ID,
		doubt.Title,
		doubt.Description,
		doubt.Tags,
		doubt.Status,
		doubt.AuthorID,
	)
	if err != nil {
		return fmt.Errorf("create doubt: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Doubt, error) {
	query := `
		SELECT id, title, description, tags, status, author_id,
		       created_at, updated_at
		FROM doubts
		WHERE id = $1`

	var doubt Doubt
	err := r.db.GetContext(ctx, &doubt, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get doubt: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get doubt: %w", err)
	}

	return &doubt, nil
}

func (r *repository) Update(ctx context.Context, doubt *Doubt) error {
	query := `
		UPDATE doubts
		SET title = $2, description = $3, tags = $4, status = $5,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &doubt.UpdatedAt, query,
		doubt.ID,
		doubt.Title,
		doubt.Description,
		doubt.Tags,
		doubt.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update doubt: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update doubt: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM doubts WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete doubt: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete doubt: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete doubt: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) SetStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE doubts SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("set doubt status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set doubt status: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("set doubt status: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListDoubtsParams,
) ([]Doubt, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, "TRUE")

	if params.Tag != "" {
		conditions = append(conditions, fmt.Sprintf(
			"tags @> to_jsonb($%d::text)", argIdx))
		args = append(args, params.Tag)
		argIdx++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, params.Status)
		argIdx++
	}

	if params.AuthorID != "" {
		conditions = append(conditions, fmt.Sprintf("author_id = $%d", argIdx))
		args = append(args, params.AuthorID)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM doubts WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count doubts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, tags, status, author_id,
		       created_at, updated_at
		FROM doubts
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var doubts []Doubt
	if err := r.db.SelectContext(ctx, &doubts, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list doubts: %w", err)
	}

	return doubts, total, nil
}

func (r *repository) CreateAnswer(ctx context.Context, answer *Answer) error {
	query := `
		INSERT INTO answers (id, content, doubt_id, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, answer, query,
		answer.ID,
		answer.Content,
		answer.DoubtID,
		answer.AuthorID,
	)
	if err != nil {
		return fmt.Errorf("create answer: %w", err)
	}

	return nil
}

func (r *repository) GetAnswerByID(
	ctx context.Context,
	id string,
) (*Answer, error) {
	query := `
		SELECT id, content, doubt_id, author_id, created_at, updated_at
		FROM answers
		WHERE id = $1`

	var answer Answer
	err := r.db.GetContext(ctx, &answer, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get answer: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get answer: %w", err)
	}

	return &answer, nil
}

func (r *repository) UpdateAnswer(ctx context.Context, answer *Answer) error {
	query := `
		UPDATE answers
		SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &answer.UpdatedAt, query,
		answer.ID,
		answer.Content,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update answer: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update answer: %w", err)
	}

	return nil
}

func (r *repository) DeleteAnswer(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM answers WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete answer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete answer: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete answer: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ListAnswersByDoubt(
	ctx context.Context,
	doubtID string,
) ([]Answer, error) {
	query := `
		SELECT id, content, doubt_id, author_id, created_at, updated_at
		FROM answers
		WHERE doubt_id = $1
		ORDER BY created_at ASC`

	var answers []Answer
	if err := r.db.SelectContext(ctx, &answers, query, doubtID); err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	return answers, nil
}

func (r *repository) DeleteAnswersByDoubt(
	ctx context.Context,
	doubtID string,
) (int64, error) {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM answers WHERE doubt_id = $1`,
		doubtID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete answers by doubt: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete answers by doubt: %w", err)
	}

	return rows, nil
}

func (r *repository) CreateComment(
	ctx context.Context,
	comment *Comment,
) error {
	query := `
		INSERT INTO comments (id, content, doubt_id, user_id, parent_comment_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, comment, query,
		comment.ID,
		comment.Content,
		comment.DoubtID,
		comment.UserID,
		comment.ParentCommentID,
	)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

func (r *repository) GetCommentByID(
	ctx context.Context,
	id string,
) (*Comment, error) {
	query := `
		SELECT id, content, doubt_id, user_id, parent_comment_id,
		       created_at, updated_at
		FROM comments
		WHERE id = $1`

	var comment Comment
	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get comment: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &comment, nil
}

func (r *repository) DeleteComment(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM comments WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete comment: %w", core.ErrNotFound)
	}

	return nil
}

// DeleteCommentChildren removes direct replies only. Grandchildren keep
// their dangling parent_comment_id on purpose.
func (r *repository) DeleteCommentChildren(
	ctx context.Context,
	parentID string,
) (int64, error) {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM comments WHERE parent_comment_id = $1`,
		parentID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete comment children: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete comment children: %w", err)
	}

	return rows, nil
}

func (r *repository) ListCommentsByDoubt(
	ctx context.Context,
	doubtID string,
) ([]Comment, error) {
	query := `
		SELECT id, content, doubt_id, user_id, parent_comment_id,
		       created_at, updated_at
		FROM comments
		WHERE doubt_id = $1
		ORDER BY created_at ASC`

	var comments []Comment
	if err := r.db.SelectContext(ctx, &comments, query, doubtID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return comments, nil
}

func (r *repository) DeleteCommentsByDoubt(
	ctx context.Context,
	doubtID string,
) (int64, error) {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM comments WHERE doubt_id = $1`,
		doubtID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete comments by doubt: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete comments by doubt: %w", err)
	}

	return rows, nil
}
