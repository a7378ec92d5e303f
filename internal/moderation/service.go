// MentorHive | 2026
// service.go

package moderation

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mentorhive/backend/internal/audit"
	"github.com/mentorhive/backend/internal/core"
	"github.com/mentorhive/backend/internal/doubt"
	"github.com/mentorhive/backend/internal/juniorspace"
	"github.com/mentorhive/backend/internal/mentor"
	"github.com/mentorhive/backend/internal/user"
)

var (
	ErrNotAdmin         = errors.New("caller is not an admin")
	ErrInvalidSecretKey = errors.New("invalid admin secret key")
)

type Config struct {
	AdminSecretKey string

	// EnforceBans flips the banned column on ban/unban. When off the
	// audit entry is the only durable effect, matching the historical
	// behavior of the platform.
	EnforceBans bool
}

type Service struct {
	db          *sqlx.DB
	cfg         Config
	users       user.Repository
	mentors     mentor.Repository
	doubts      doubt.Repository
	juniorPosts juniorspace.Repository
	audits      audit.Repository
}

func NewService(
	db *sqlx.DB,
	cfg Config,
	users user.Repository,
	mentors mentor.Repository,
	doubts doubt.Repository,
	juniorPosts juniorspace.Repository,
	audits audit.Repository,
) *Service {
	return &Service{
		db:          db,
		cfg:         cfg,
		users:       users,
		mentors:     mentors,
		doubts:      doubts,
		juniorPosts: juniorPosts,
		audits:      audits,
	}
}

// RegisterAdmin creates an admin account gated by the shared secret.
func (s *Service) RegisterAdmin(
	ctx context.Context,
	req RegisterAdminRequest,
) (*user.User, error) {
	if subtle.ConstantTimeCompare(
		[]byte(req.SecretKey),
		[]byte(s.cfg.AdminSecretKey),
	) != 1 {
		return nil, fmt.Errorf("register admin: %w", ErrInvalidSecretKey)
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register admin: %w", err)
	}

	admin := &user.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: passwordHash,
		Role:         user.RoleAdmin,
		Bio:          req.Bio,
		// Admins bypass the mentor approval workflow entirely.
		IsMentorApproved: true,
	}

	if err := s.users.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// requireAdmin re-reads the caller row on every privileged call instead
// of trusting the token's role claim.
func (s *Service) requireAdmin(ctx context.Context, adminID string) error {
	caller, err := s.users.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("require admin: %w", ErrNotAdmin)
		}
		return err
	}

	if !caller.IsAdmin() {
		return fmt.Errorf("require admin: %w", ErrNotAdmin)
	}

	return nil
}

// ApproveMentor flips both the profile and user approval flags together
// with the audit entry in one transaction. Re-approval is allowed and
// produces another audit entry.
func (s *Service) ApproveMentor(
	ctx context.Context,
	adminID, mentorUserID string,
) (*MentorActionResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	if _, err := s.mentors.GetByUserID(ctx, mentorUserID); err != nil {
		return nil, err
	}

	var action *audit.AdminAction
	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := mentor.NewRepository(tx).SetApproved(
			ctx, mentorUserID, true,
		); err != nil {
			return err
		}

		if err := user.NewRepository(tx).SetMentorApproved(
			ctx, mentorUserID, true,
		); err != nil {
			return err
		}

		var err error
		action, err = s.audits.Record(
			ctx, tx, adminID, audit.ActionApproveMentor, mentorUserID,
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &MentorActionResponse{
		MentorID: mentorUserID,
		ActionID: action.ID,
	}, nil
}

// RejectMentor deletes the profile outright. The user's approval flag
// is left untouched, matching the platform's historical asymmetry with
// approval.
func (s *Service) RejectMentor(
	ctx context.Context,
	adminID, mentorUserID string,
) (*MentorActionResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	var action *audit.AdminAction
	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := mentor.NewRepository(tx).DeleteByUserID(
			ctx, mentorUserID,
		); err != nil {
			return err
		}

		var err error
		action, err = s.audits.Record(
			ctx, tx, adminID, audit.ActionRejectMentor, mentorUserID,
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &MentorActionResponse{
		MentorID: mentorUserID,
		ActionID: action.ID,
	}, nil
}

// DeleteDoubt removes the doubt and cascades its answers and comments
// inside one transaction.
func (s *Service) DeleteDoubt(
	ctx context.Context,
	adminID, doubtID string,
) (*DeleteDoubtResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	resp := &DeleteDoubtResponse{DoubtID: doubtID}
	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		txDoubts := doubt.NewRepository(tx)

		answers, err := txDoubts.DeleteAnswersByDoubt(ctx, doubtID)
		if err != nil {
			return err
		}
		comments, err := txDoubts.DeleteCommentsByDoubt(ctx, doubtID)
		if err != nil {
			return err
		}

		if err := txDoubts.Delete(ctx, doubtID); err != nil {
			return err
		}

		action, err := s.audits.Record(
			ctx, tx, adminID, audit.ActionDeleteDoubt, doubtID,
		)
		if err != nil {
			return err
		}

		resp.AnswersDeleted = answers
		resp.CommentsDeleted = comments
		resp.ActionID = action.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *Service) DeleteAnswer(
	ctx context.Context,
	adminID, answerID string,
) (*DeleteAnswerResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	resp := &DeleteAnswerResponse{AnswerID: answerID}
	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := doubt.NewRepository(tx).DeleteAnswer(
			ctx, answerID,
		); err != nil {
			return err
		}

		action, err := s.audits.Record(
			ctx, tx, adminID, audit.ActionDeleteAnswer, answerID,
		)
		if err != nil {
			return err
		}

		resp.ActionID = action.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// DeleteComment cascades to direct replies only.
func (s *Service) DeleteComment(
	ctx context.Context,
	adminID, commentID string,
) (*DeleteCommentResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	resp := &DeleteCommentResponse{CommentID: commentID}
	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		txDoubts := doubt.NewRepository(tx)

		replies, err := txDoubts.DeleteCommentChildren(ctx, commentID)
		if err != nil {
			return err
		}

		if err := txDoubts.DeleteComment(ctx, commentID); err != nil {
			return err
		}

		action, err := s.audits.Record(
			ctx, tx, adminID, audit.ActionDeleteComment, commentID,
		)
		if err != nil {
			return err
		}

		resp.RepliesDeleted = replies
		resp.ActionID = action.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *Service) DeleteJuniorPost(
	ctx context.Context,
	adminID, postID string,
) (*DeleteJuniorPostResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	resp := &DeleteJuniorPostResponse{PostID: postID}
	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := juniorspace.NewRepository(tx).Delete(
			ctx, postID,
		); err != nil {
			return err
		}

		action, err := s.audits.Record(
			ctx, tx, adminID, audit.ActionDeleteJuniorPost, postID,
		)
		if err != nil {
			return err
		}

		resp.ActionID = action.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// BanUser always appends the audit entry; the banned column is flipped
// only when enforcement is switched on.
func (s *Service) BanUser(
	ctx context.Context,
	adminID, userID string,
) (*UserActionResponse, error) {
	return s.setBanState(ctx, adminID, userID, audit.ActionBanUser, true)
}

func (s *Service) UnbanUser(
	ctx context.Context,
	adminID, userID string,
) (*UserActionResponse, error) {
	return s.setBanState(ctx, adminID, userID, audit.ActionUnbanUser, false)
}

func (s *Service) setBanState(
	ctx context.Context,
	adminID, userID, actionType string,
	banned bool,
) (*UserActionResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	resp := &UserActionResponse{UserID: userID}
	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if s.cfg.EnforceBans {
			if err := user.NewRepository(tx).SetBanned(
				ctx, userID, banned,
			); err != nil {
				return err
			}
		}

		action, err := s.audits.Record(ctx, tx, adminID, actionType, userID)
		if err != nil {
			return err
		}

		resp.ActionID = action.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *Service) ListActions(
	ctx context.Context,
	adminID string,
	params audit.ListActionsParams,
) ([]audit.AdminAction, int, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, 0, err
	}

	params.AdminID = adminID
	return s.audits.List(ctx, params)
}

func (s *Service) Stats(
	ctx context.Context,
	adminID string,
) (*audit.StatsResponse, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	return s.audits.Stats(ctx, adminID)
}
