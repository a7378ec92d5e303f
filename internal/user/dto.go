// MentorHive | 2026
// dto.go

package user

import (
	"time"
)

type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Bio  *string `json:"bio,omitempty"  validate:"omitempty,max=500"`
}

type UserResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Bio              string    `json:"bio,omitempty"`
	IsMentorApproved bool      `json:"is_mentor_approved"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PublicUserResponse omits the email for non-owner lookups.
type PublicUserResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	Bio              string    `json:"bio,omitempty"`
	IsMentorApproved bool      `json:"is_mentor_approved"`
	CreatedAt        time.Time `json:"created_at"`
}

type ListUsersParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search"`
	Role     string `json:"role"`
}

func (p *ListUsersParams) Normalize() {
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

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		Bio:              u.Bio,
		IsMentorApproved: u.IsMentorApproved,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func ToPublicUserResponse(u *User) PublicUserResponse {
	return PublicUserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Role:             u.Role,
		Bio:              u.Bio,
		IsMentorApproved: u.IsMentorApproved,
		CreatedAt:        u.CreatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
