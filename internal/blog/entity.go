// MentorHive | 2026
// entity.go

package blog

import (
	"time"

	"github.com/mentorhive/backend/internal/core"
)

type Blog struct {
	ID          string           `db:"id"`
	Title       string           `db:"title"`
	Content     string           `db:"content"`
	AuthorID    string           `db:"author_id"`
	Tags        core.StringSlice `db:"tags"`
	CoverImage  string           `db:"cover_image"`
	ReadTime    int              `db:"read_time"`
	Views       int              `db:"views"`
	Likes       int              `db:"likes"`
	IsPublished bool             `db:"is_published"`
	CreatedAt   time.Time        `db:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
}
