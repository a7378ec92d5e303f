// MentorHive | 2026
// dto.go

package juniorspace

import (
	"time"
)

type CreatePostRequest struct {
	Content  string `json:"content"  validate:"required,min=1,max=3000"`
	Category string `json:"category" validate:"required,min=1,max=50"`
}

type PostResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListPostsParams struct {
	Page     int
	PageSize int
	Category string
	AuthorID string
}

func (p *ListPostsParams) Normalize() {
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

func (p *ListPostsParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToPostResponse(p *Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Content:   p.Content,
		Category:  p.Category,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToPostResponseList(posts []Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, ToPostResponse(&posts[i]))
	}
	return responses
}
