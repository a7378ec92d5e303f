// MentorHive | 2026
// entity.go

package doubt

import (
	"time"

	"github.com/mentorhive/backend/internal/core"
)

const (
	StatusOpen     = "open"
	StatusAnswered = "answered"
	StatusResolved = "resolved"
	StatusClosed   = "closed"
)

type Doubt struct {
	ID          string           `db:"id"`
	Title       string           `db:"title"`
	Description string           `db:"description"`
	Tags        core.StringSlice `db:"tags"`
	Status      string           `db:"status"`
	AuthorID    string           `db:"author_id"`
	CreatedAt   time.Time        `db:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
}

type Answer struct {
	ID        string    `db:"id"`
	Content   string    `db:"content"`
	DoubtID   string    `db:"doubt_id"`
	AuthorID  string    `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Comment rows form a reply tree rooted at a doubt. ParentCommentID is
// nil for top-level comments; deleting a comment removes its direct
// children only, grandchildren are orphaned rather than cascaded.
type Comment struct {
	ID              string    `db:"id"`
	Content         string    `db:"content"`
	DoubtID         string    `db:"doubt_id"`
	UserID          string    `db:"user_id"`
	ParentCommentID *string   `db:"parent_comment_id"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusAnswered, StatusResolved, StatusClosed:
		return true
	}
	return false
}
