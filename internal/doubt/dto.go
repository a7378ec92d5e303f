// MentorHive | 2026
// dto.go

package doubt

import (
	"time"
)

type CreateDoubtRequest struct {
	Title       string   `json:"title"       validate:"required,min=10,max=200"`
	Description string   `json:"description" validate:"required,min=20,max=5000"`
	Tags        []string `json:"tags"        validate:"required,min=1,max=5,dive,min=1,max=50"`
}

type UpdateDoubtRequest struct {
	Title       *string  `json:"title,omitempty"       validate:"omitempty,min=10,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=20,max=5000"`
	Tags        []string `json:"tags,omitempty"        validate:"omitempty,min=1,max=5,dive,min=1,max=50"`
	Status      *string  `json:"status,omitempty"      validate:"omitempty,oneof=open answered resolved closed"`
}

type CreateAnswerRequest struct {
	Content string `json:"content" validate:"required,min=20,max=10000"`
}

type UpdateAnswerRequest struct {
	Content string `json:"content" validate:"required,min=20,max=10000"`
}

type CreateCommentRequest struct {
	Content         string  `json:"content"                     validate:"required,min=1,max=2000"`
	ParentCommentID *string `json:"parent_comment_id,omitempty" validate:"omitempty,uuid4"`
}

type DoubtResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Status      string    `json:"status"`
	AuthorID    string    `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AnswerResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	DoubtID   string    `json:"doubt_id"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommentResponse struct {
	ID              string    `json:"id"`
	Content         string    `json:"content"`
	DoubtID         string    `json:"doubt_id"`
	UserID          string    `json:"user_id"`
	ParentCommentID *string   `json:"parent_comment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ListDoubtsParams struct {
	Page     int
	PageSize int
	Tag      string
	Status   string
	AuthorID string
}

func (p *ListDoubtsParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	if p.Status != "" && !ValidStatus(p.Status) {
		p.Status = ""
	}
}

func (p *ListDoubtsParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToDoubtResponse(d *Doubt) DoubtResponse {
	return DoubtResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Tags:        d.Tags,
		Status:      d.Status,
		AuthorID:    d.AuthorID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func ToDoubtResponseList(doubts []Doubt) []DoubtResponse {
	responses := make([]DoubtResponse, 0, len(doubts))
	for i := range doubts {
		responses = append(responses, ToDoubtResponse(&doubts[i]))
	}
	return responses
}

func ToAnswerResponse(a *Answer) AnswerResponse {
	return AnswerResponse{
		ID:        a.ID,
		Content:   a.Content,
		DoubtID:   a.DoubtID,
		AuthorID:  a.AuthorID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func ToAnswerResponseList(answers []Answer) []AnswerResponse {
	responses := make([]AnswerResponse, 0, len(answers))
	for i := range answers {
		responses = append(responses, ToAnswerResponse(&answers[i]))
	}
	return responses
}

func ToCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:              c.ID,
		Content:         c.Content,
		DoubtID:         c.DoubtID,
		UserID:          c.UserID,
		ParentCommentID: c.ParentCommentID,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func ToCommentResponseList(comments []Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, ToCommentResponse(&comments[i]))
	}
	return responses
}
