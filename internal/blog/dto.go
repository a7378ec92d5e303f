// MentorHive | 2026
// dto.go

package blog

import (
	"time"
)

type CreateBlogRequest struct {
	Title       string   `json:"title"                 validate:"required,min=5,max=200"`
	Content     string   `json:"content"               validate:"required,min=50"`
	Tags        []string `json:"tags,omitempty"        validate:"omitempty,max=10,dive,min=1,max=50"`
	CoverImage  string   `json:"cover_image,omitempty" validate:"omitempty,url,max=500"`
	ReadTime    *int     `json:"read_time,omitempty"   validate:"omitempty,min=1"`
	IsPublished *bool    `json:"is_published,omitempty"`
}

type UpdateBlogRequest struct {
	Title       *string  `json:"title,omitempty"       validate:"omitempty,min=5,max=200"`
	Content     *string  `json:"content,omitempty"     validate:"omitempty,min=50"`
	Tags        []string `json:"tags,omitempty"        validate:"omitempty,max=10,dive,min=1,max=50"`
	CoverImage  *string  `json:"cover_image,omitempty" validate:"omitempty,url,max=500"`
	ReadTime    *int     `json:"read_time,omitempty"   validate:"omitempty,min=1"`
	IsPublished *bool    `json:"is_published,omitempty"`
}

type BlogResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    string    `json:"author_id"`
	Tags        []string  `json:"tags"`
	CoverImage  string    `json:"cover_image,omitempty"`
	ReadTime    int       `json:"read_time"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListBlogsParams struct {
	Page     int
	PageSize int
	Tag      string
	AuthorID string
	Search   string

	// IncludeUnpublished is only honored for the author's own listing
	// or an admin caller.
	IncludeUnpublished bool
}

func (p *ListBlogsParams) Normalize() {
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

func (p *ListBlogsParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToBlogResponse(b *Blog) BlogResponse {
	return BlogResponse{
		ID:          b.ID,
		Title:       b.Title,
		Content:     b.Content,
		AuthorID:    b.AuthorID,
		Tags:        b.Tags,
		CoverImage:  b.CoverImage,
		ReadTime:    b.ReadTime,
		Views:       b.Views,
		Likes:       b.Likes,
		IsPublished: b.IsPublished,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func ToBlogResponseList(blogs []Blog) []BlogResponse {
	responses := make([]BlogResponse, 0, len(blogs))
	for i := range blogs {
		responses = append(responses, ToBlogResponse(&blogs[i]))
	}
	return responses
}
