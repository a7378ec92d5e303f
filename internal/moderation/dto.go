// MentorHive | 2026
// dto.go

package moderation

type RegisterAdminRequest struct {
	Name      string `json:"name"          validate:"required,min=2,max=100"`
	Email     string `json:"email"         validate:"required,email"`
	Password  string `json:"password"      validate:"required,min=6,max=128"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=500"`
	SecretKey string `json:"secretKey"     validate:"required"`
}

type MentorActionRequest struct {
	MentorUserID string `json:"mentorUserId" validate:"required,uuid4"`
}

type DeleteDoubtRequest struct {
	DoubtID string `json:"doubtId" validate:"required,uuid4"`
}

type DeleteAnswerRequest struct {
	AnswerID string `json:"answerId" validate:"required,uuid4"`
}

type DeleteCommentRequest struct {
	CommentID string `json:"commentId" validate:"required,uuid4"`
}

type DeleteJuniorPostRequest struct {
	PostID string `json:"postId" validate:"required,uuid4"`
}

type UserActionRequest struct {
	UserID string `json:"userId" validate:"required,uuid4"`
}

type AdminResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type MentorActionResponse struct {
	MentorID string `json:"mentorId"`
	ActionID string `json:"actionId"`
}

type DeleteDoubtResponse struct {
	DoubtID         string `json:"doubtId"`
	AnswersDeleted  int64  `json:"answersDeleted"`
	CommentsDeleted int64  `json:"commentsDeleted"`
	ActionID        string `json:"actionId"`
}

type DeleteAnswerResponse struct {
	AnswerID string `json:"answerId"`
	ActionID string `json:"actionId"`
}

type DeleteCommentResponse struct {
	CommentID      string `json:"commentId"`
	RepliesDeleted int64  `json:"repliesDeleted"`
	ActionID       string `json:"actionId"`
}

type DeleteJuniorPostResponse struct {
	PostID   string `json:"postId"`
	ActionID string `json:"actionId"`
}

type UserActionResponse struct {
	UserID   string `json:"userId"`
	ActionID string `json:"actionId"`
}
