// MentorHive | 2026
// entity.go

package audit

import (
	"time"
)

// Moderation verbs recorded in the audit trail.
const (
	ActionApproveMentor    = "approve_mentor"
	ActionRejectMentor     = "reject_mentor"
	ActionDeleteDoubt      = "delete_doubt"
	ActionDeleteAnswer     = "delete_answer"
	ActionDeleteComment    = "delete_comment"
	ActionDeleteJuniorPost = "delete_junior_post"
	ActionBanUser          = "ban_user"
	ActionUnbanUser        = "unban_user"
)

// AdminAction rows are append-only. Nothing in the API updates or
// deletes them.
type AdminAction struct {
	ID         string    `db:"id"`
	AdminID    string    `db:"admin_id"`
	ActionType string    `db:"action_type"`
	TargetID   string    `db:"target_id"`
	CreatedAt  time.Time `db:"created_at"`
}

func ValidActionType(t string) bool {
	switch t {
	case ActionApproveMentor, ActionRejectMentor,
		ActionDeleteDoubt, ActionDeleteAnswer, ActionDeleteComment,
		ActionDeleteJuniorPost,
		ActionBanUser, ActionUnbanUser:
		return true
	}
	return false
}
