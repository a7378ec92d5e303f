// MentorHive | 2026
// dto.go

package audit

import (
	"time"
)

type ActionResponse struct {
	ID         string    `json:"id"`
	AdminID    string    `json:"admin_id"`
	ActionType string    `json:"action_type"`
	TargetID   string    `json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type StatsResponse struct {
	TotalActions int            `json:"total_actions"`
	Breakdown    map[string]int `json:"breakdown"`
}

type ListActionsParams struct {
	AdminID    string
	ActionType string
	Page       int
	PageSize   int
}

func (p *ListActionsParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	if p.ActionType != "" && !ValidActionType(p.ActionType) {
		p.ActionType = ""
	}
}

func (p *ListActionsParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToActionResponse(a *AdminAction) ActionResponse {
	return ActionResponse{
		ID:         a.ID,
		AdminID:    a.AdminID,
		ActionType: a.ActionType,
		TargetID:   a.TargetID,
		CreatedAt:  a.CreatedAt,
	}
}

func ToActionResponseList(actions []AdminAction) []ActionResponse {
	responses := make([]ActionResponse, 0, len(actions))
	for i := range actions {
		responses = append(responses, ToActionResponse(&actions[i]))
	}
	return responses
}
