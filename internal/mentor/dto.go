// MentorHive | 2026
// dto.go

package mentor

import (
	"time"
)

type CreateProfileRequest struct {
	Badge         string   `json:"badge"          validate:"omitempty,max=50"`
	ExpertiseTags []string `json:"expertise_tags" validate:"required,min=1,max=10,dive,min=1,max=50"`
}

type UpdateProfileRequest struct {
	Badge         *string  `json:"badge,omitempty"          validate:"omitempty,max=50"`
	ExpertiseTags []string `json:"expertise_tags,omitempty" validate:"omitempty,min=1,max=10,dive,min=1,max=50"`
}

type ProfileResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Badge           string    `json:"badge,omitempty"`
	ExpertiseTags   []string  `json:"expertise_tags"`
	ApprovedByAdmin bool      `json:"approved_by_admin"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ListProfilesParams struct {
	Page     int
	PageSize int
}

func (p *ListProfilesParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListProfilesParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToProfileResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Badge:           p.Badge,
		ExpertiseTags:   p.ExpertiseTags,
		ApprovedByAdmin: p.ApprovedByAdmin,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func ToProfileResponseList(profiles []Profile) []ProfileResponse {
	responses := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, ToProfileResponse(&profiles[i]))
	}
	return responses
}
