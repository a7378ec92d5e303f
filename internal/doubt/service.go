// MentorHive | 2026
// service.go

package doubt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mentorhive/backend/internal/core"
	"github.com/mentorhive/backend/internal/user"
)

// Broadcaster fans an event out to a named room. Implementations are
// best-effort; callers never treat a failed push as a request failure.
type Broadcaster interface {
	Broadcast(room, event string, payload any)
}

func DoubtRoom(doubtID string) string {
	return "doubt-" + doubtID
}

type Service struct {
	db          *sqlx.DB
	repo        Repository
	broadcaster Broadcaster
}

func NewService(db *sqlx.DB, repo Repository, broadcaster Broadcaster) *Service {
	return &Service{db: db, repo: repo, broadcaster: broadcaster}
}

func (s *Service) CreateDoubt(
	ctx context.Context,
	authorID string,
	req CreateDoubtRequest,
) (*Doubt, error) {
	doubt := &Doubt{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Tags:        core.StringSlice(req.Tags),
		Status:      StatusOpen,
		AuthorID:    authorID,
	}

	if err := s.repo.Create(ctx, doubt); err != nil {
		return nil, err
	}

	return doubt, nil
}

func (s *Service) GetDoubt(ctx context.Context, id string) (*Doubt, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateDoubt(
	ctx context.Context,
	userID, role, doubtID string,
	req UpdateDoubtRequest,
) (*Doubt, error) {
	doubt, err := s.repo.GetByID(ctx, doubtID)
	if err != nil {
		return nil, err
	}

	if doubt.AuthorID != userID && role != user.RoleAdmin {
		return nil, fmt.Errorf("update doubt: %w", core.ErrForbidden)
	}

	if req.Title != nil {
		doubt.Title = *req.Title
	}
	if req.Description != nil {
		doubt.Description = *req.Description
	}
	if req.Tags != nil {
		doubt.Tags = core.StringSlice(req.Tags)
	}
	if req.Status != nil {
		doubt.Status = *req.Status
	}

	if err := s.repo.Update(ctx, doubt); err != nil {
		return nil, err
	}

	return doubt, nil
}

// DeleteDoubt removes the doubt together with every answer and comment
// attached to it, all inside one transaction.
func (s *Service) DeleteDoubt(
	ctx context.Context,
	userID, role, doubtID string,
) error {
	doubt, err := s.repo.GetByID(ctx, doubtID)
	if err != nil {
		return err
	}

	if doubt.AuthorID != userID && role != user.RoleAdmin {
		return fmt.Errorf("delete doubt: %w", core.ErrForbidden)
	}

	return core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		txRepo := NewRepository(tx)

		if _, err := txRepo.DeleteAnswersByDoubt(ctx, doubtID); err != nil {
			return err
		}
		if _, err := txRepo.DeleteCommentsByDoubt(ctx, doubtID); err != nil {
			return err
		}

		return txRepo.Delete(ctx, doubtID)
	})
}

func (s *Service) ListDoubts(
	ctx context.Context,
	params ListDoubtsParams,
) ([]Doubt, int, error) {
	return s.repo.List(ctx, params)
}

// CreateAnswer writes the answer and flips an open doubt to answered in
// the same transaction.
func (s *Service) CreateAnswer(
	ctx context.Context,
	authorID, doubtID string,
	req CreateAnswerRequest,
) (*Answer, error) {
	doubt, err := s.repo.GetByID(ctx, doubtID)
	if err != nil {
		return nil, err
	}

	answer := &Answer{
		ID:       uuid.New().String(),
		Content:  req.Content,
		DoubtID:  doubtID,
		AuthorID: authorID,
	}

	err = core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		txRepo := NewRepository(tx)

		if err := txRepo.CreateAnswer(ctx, answer); err != nil {
			return err
		}

		if doubt.Status == StatusOpen {
			return txRepo.SetStatus(ctx, doubtID, StatusAnswered)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return answer, nil
}

func (s *Service) UpdateAnswer(
	ctx context.Context,
	userID, role, answerID string,
	req UpdateAnswerRequest,
) (*Answer, error) {
	answer, err := s.repo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return nil, err
	}

	if answer.AuthorID != userID && role != user.RoleAdmin {
		return nil, fmt.Errorf("update answer: %w", core.ErrForbidden)
	}

	answer.Content = req.Content
	if err := s.repo.UpdateAnswer(ctx, answer); err != nil {
		return nil, err
	}

	return answer, nil
}

func (s *Service) DeleteAnswer(
	ctx context.Context,
	userID, role, answerID string,
) error {
	answer, err := s.repo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return err
	}

	if answer.AuthorID != userID && role != user.RoleAdmin {
		return fmt.Errorf("delete answer: %w", core.ErrForbidden)
	}

	return s.repo.DeleteAnswer(ctx, answerID)
}

func (s *Service) ListAnswers(
	ctx context.Context,
	doubtID string,
) ([]Answer, error) {
	if _, err := s.repo.GetByID(ctx, doubtID); err != nil {
		return nil, err
	}
	return s.repo.ListAnswersByDoubt(ctx, doubtID)
}

func (s *Service) CreateComment(
	ctx context.Context,
	userID, doubtID string,
	req CreateCommentRequest,
) (*Comment, error) {
	if _, err := s.repo.GetByID(ctx, doubtID); err != nil {
		return nil, err
	}

	if req.ParentCommentID != nil {
		parent, err := s.repo.GetCommentByID(ctx, *req.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parent.DoubtID != doubtID {
			return nil, fmt.Errorf(
				"create comment: parent belongs to another doubt: %w",
				core.ErrInvalidInput,
			)
		}
	}

	comment := &Comment{
		ID:              uuid.New().String(),
		Content:         req.Content,
		DoubtID:         doubtID,
		UserID:          userID,
		ParentCommentID: req.ParentCommentID,
	}

	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(
			DoubtRoom(doubtID),
			"new-comment",
			ToCommentResponse(comment),
		)
	}

	return comment, nil
}

// DeleteComment removes the comment and its direct replies in one
// transaction. Deeper descendants are left in place.
func (s *Service) DeleteComment(
	ctx context.Context,
	userID, role, commentID string,
) error {
	comment, err := s.repo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != userID && role != user.RoleAdmin {
		return fmt.Errorf("delete comment: %w", core.ErrForbidden)
	}

	return core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		txRepo := NewRepository(tx)

		if _, err := txRepo.DeleteCommentChildren(ctx, commentID); err != nil {
			return err
		}

		return txRepo.DeleteComment(ctx, commentID)
	})
}

func (s *Service) ListComments(
	ctx context.Context,
	doubtID string,
) ([]Comment, error) {
	if _, err := s.repo.GetByID(ctx, doubtID); err != nil {
		return nil, err
	}
	return s.repo.ListCommentsByDoubt(ctx, doubtID)
}
