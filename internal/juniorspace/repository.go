// MentorHive | 2026
// repository.go

package juniorspace

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mentorhive/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListPostsParams) ([]Post, int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, post *Post) error {
	query := `
		INSERT INTO junior_space_posts (id, content, category, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, post, query,
		post.ID,
		post.Content,
		post.Category,
		post.AuthorID,
	)
	if err != nil {
		return fmt.Errorf("create junior post: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Post, error) {
	query := `
		SELECT id, content, category, author_id, created_at, updated_at
		FROM junior_space_posts
		WHERE id = $1`

	var post Post
	err := r.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get junior post: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get junior post: %w", err)
	}

	return &post, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM junior_space_posts WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete junior post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete junior post: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete junior post: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListPostsParams,
) ([]Post, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, "TRUE")

	if params.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, params.Category)
		argIdx++
	}

	if params.AuthorID != "" {
		conditions = append(conditions, fmt.Sprintf("author_id = $%d", argIdx))
		args = append(args, params.AuthorID)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM junior_space_posts WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count junior posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, content, category, author_id, created_at, updated_at
		FROM junior_space_posts
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var posts []Post
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list junior posts: %w", err)
	}

	return posts, total, nil
}
