// MentorHive | 2026
// service.go

package juniorspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mentorhive/backend/internal/core"
	"github.com/mentorhive/backend/internal/user"
)

// Broadcaster mirrors the realtime hub's fan-out contract. Pushes are
// best-effort and never fail the originating request.
type Broadcaster interface {
	Broadcast(room, event string, payload any)
}

type Service struct {
	repo        Repository
	broadcaster Broadcaster
}

func NewService(repo Repository, broadcaster Broadcaster) *Service {
	return &Service{repo: repo, broadcaster: broadcaster}
}

func (s *Service) CreatePost(
	ctx context.Context,
	authorID string,
	req CreatePostRequest,
) (*Post, error) {
	post := &Post{
		ID:       uuid.New().String(),
		Content:  req.Content,
		Category: req.Category,
		AuthorID: authorID,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(
			JuniorSpaceRoom,
			"new-post",
			ToPostResponse(post),
		)
	}

	return post, nil
}

func (s *Service) GetPost(ctx context.Context, id string) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeletePost(
	ctx context.Context,
	userID, role, postID string,
) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != userID && role != user.RoleAdmin {
		return fmt.Errorf("delete junior post: %w", core.ErrForbidden)
	}

	return s.repo.Delete(ctx, postID)
}

func (s *Service) ListPosts(
	ctx context.Context,
	params ListPostsParams,
) ([]Post, int, error) {
	return s.repo.List(ctx, params)
}
