// MentorHive | 2026
// repository.go

package blog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mentorhive/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, blog *Blog) error
	GetByID(ctx context.Context, id string) (*Blog, error)
	Update(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) (int, error)
	IncrementLikes(ctx context.Context, id string) (int, error)
	List(ctx context.Context, params ListBlogsParams) ([]Blog, int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, blog *Blog) error {
	query := `
		INSERT INTO blogs
			(id, title, content, author_id, tags, cover_image, read_time,
			 is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING views, likes, created_at, updated_at`

	err := r.db.GetContext(ctx, blog, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.AuthorID,
		blog.Tags,
		blog.CoverImage,
		blog.ReadTime,
		blog.IsPublished,
	)
	if err != nil {
		return fmt.Errorf("create blog: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Blog, error) {
	query := `
		SELECT id, title, content, author_id, tags, cover_image, read_time,
		       views, likes, is_published, created_at, updated_at
		FROM blogs
		WHERE id = $1`

	var blog Blog
	err := r.db.GetContext(ctx, &blog, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get blog: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}

	return &blog, nil
}

func (r *repository) Update(ctx context.Context, blog *Blog) error {
	query := `
		UPDATE blogs
		SET title = $2, content = $3, tags = $4, cover_image = $5,
		    read_time = $6, is_published = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &blog.UpdatedAt, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.Tags,
		blog.CoverImage,
		blog.ReadTime,
		blog.IsPublished,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update blog: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update blog: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM blogs WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete blog: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) IncrementViews(
	ctx context.Context,
	id string,
) (int, error) {
	var views int
	err := r.db.GetContext(ctx, &views,
		`UPDATE blogs SET views = views + 1 WHERE id = $1 RETURNING views`,
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("increment views: %w", core.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("increment views: %w", err)
	}

	return views, nil
}

func (r *repository) IncrementLikes(
	ctx context.Context,
	id string,
) (int, error) {
	var likes int
	err := r.db.GetContext(ctx, &likes,
		`UPDATE blogs SET likes = likes + 1 WHERE id = $1 RETURNING likes`,
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("increment likes: %w", core.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("increment likes: %w", err)
	}

	return likes, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListBlogsParams,
) ([]Blog, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, "TRUE")

	if !params.IncludeUnpublished {
		conditions = append(conditions, "is_published = TRUE")
	}

	if params.Tag != "" {
		conditions = append(conditions, fmt.Sprintf(
			"tags @> to_jsonb($%d::text)", argIdx))
		args = append(args, params.Tag)
		argIdx++
	}

	if params.AuthorID != "" {
		conditions = append(conditions, fmt.Sprintf("author_id = $%d", argIdx))
		args = append(args, params.AuthorID)
		argIdx++
	}

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR content ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM blogs WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count blogs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, title, content, author_id, tags, cover_image, read_time,
		       views, likes, is_published, created_at, updated_at
		FROM blogs
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var blogs []Blog
	if err := r.db.SelectContext(ctx, &blogs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list blogs: %w", err)
	}

	return blogs, total, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
