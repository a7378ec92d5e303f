// MentorHive | 2026
// service.go

package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mentorhive/backend/internal/core"
	"github.com/mentorhive/backend/internal/user"
)

var ErrMentorNotApproved = errors.New("mentor is not approved")

// UserGetter resolves authors so publishing rights can be checked
// against the stored row rather than token claims.
type UserGetter interface {
	GetUser(ctx context.Context, id string) (*user.User, error)
}

type Service struct {
	repo  Repository
	users UserGetter
}

func NewService(repo Repository, users UserGetter) *Service {
	return &Service{repo: repo, users: users}
}

// CreateBlog is restricted to approved mentors; admins may also post.
func (s *Service) CreateBlog(
	ctx context.Context,
	authorID string,
	req CreateBlogRequest,
) (*Blog, error) {
	author, err := s.users.GetUser(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if !author.IsAdmin() {
		if !author.IsMentor() || !author.IsMentorApproved {
			return nil, fmt.Errorf("create blog: %w", ErrMentorNotApproved)
		}
	}

	readTime := estimateReadTime(req.Content)
	if req.ReadTime != nil {
		readTime = *req.ReadTime
	}

	published := false
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	blog := &Blog{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    authorID,
		Tags:        core.StringSlice(req.Tags),
		CoverImage:  req.CoverImage,
		ReadTime:    readTime,
		IsPublished: published,
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// GetBlog bumps the view counter on every fetch.
func (s *Service) GetBlog(ctx context.Context, id string) (*Blog, error) {
	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return nil, err
	}
	blog.Views = views

	return blog, nil
}

func (s *Service) UpdateBlog(
	ctx context.Context,
	userID, role, blogID string,
	req UpdateBlogRequest,
) (*Blog, error) {
	blog, err := s.repo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if blog.AuthorID != userID && role != user.RoleAdmin {
		return nil, fmt.Errorf("update blog: %w", core.ErrForbidden)
	}

	contentChanged := false

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
		contentChanged = true
	}
	if req.Tags != nil {
		blog.Tags = core.StringSlice(req.Tags)
	}
	if req.CoverImage != nil {
		blog.CoverImage = *req.CoverImage
	}
	if req.IsPublished != nil {
		blog.IsPublished = *req.IsPublished
	}

	switch {
	case req.ReadTime != nil:
		blog.ReadTime = *req.ReadTime
	case contentChanged:
		blog.ReadTime = estimateReadTime(blog.Content)
	}

	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *Service) DeleteBlog(
	ctx context.Context,
	userID, role, blogID string,
) error {
	blog, err := s.repo.GetByID(ctx, blogID)
	if err != nil {
		return err
	}

	if blog.AuthorID != userID && role != user.RoleAdmin {
		return fmt.Errorf("delete blog: %w", core.ErrForbidden)
	}

	return s.repo.Delete(ctx, blogID)
}

func (s *Service) LikeBlog(ctx context.Context, id string) (int, error) {
	return s.repo.IncrementLikes(ctx, id)
}

func (s *Service) ListBlogs(
	ctx context.Context,
	callerID, callerRole string,
	params ListBlogsParams,
) ([]Blog, int, error) {
	// Unpublished drafts are visible only to their author or an admin.
	if params.IncludeUnpublished {
		isOwnListing := params.AuthorID != "" && params.AuthorID == callerID
		if !isOwnListing && callerRole != user.RoleAdmin {
			params.IncludeUnpublished = false
		}
	}

	return s.repo.List(ctx, params)
}

// estimateReadTime assumes a 200 words-per-minute reading pace and
// never reports less than one minute.
func estimateReadTime(content string) int {
	words := len(strings.Fields(content))
	readTime := (words + 199) / 200
	if readTime < 1 {
		readTime = 1
	}
	return readTime
}
