// MentorHive | 2026
// entity.go

package juniorspace

import (
	"time"
)

// JuniorSpaceRoom is the single global broadcast room for the feed.
const JuniorSpaceRoom = "junior-space"

type Post struct {
	ID        string    `db:"id"`
	Content   string    `db:"content"`
	Category  string    `db:"category"`
	AuthorID  string    `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
