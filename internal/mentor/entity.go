// MentorHive | 2026
// entity.go

package mentor

import (
	"time"

	"github.com/mentorhive/backend/internal/core"
)

// Profile exists only for users with role=mentor. Rejection deletes the
// row outright; approval flips ApprovedByAdmin here and is_mentor_approved
// on the user row in the same transaction.
type Profile struct {
	ID              string           `db:"id"`
	UserID          string           `db:"user_id"`
	Badge           string           `db:"badge"`
	ExpertiseTags   core.StringSlice `db:"expertise_tags"`
	ApprovedByAdmin bool             `db:"approved_by_admin"`
	CreatedAt       time.Time        `db:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at"`
}
