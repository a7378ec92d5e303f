// MentorHive | 2026
// service.go

package mentor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mentorhive/backend/internal/core"
	"github.com/mentorhive/backend/internal/user"
)

var (
	ErrNotMentor     = errors.New("user is not a mentor")
	ErrProfileExists = errors.New("mentor profile already exists")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateProfile creates the single profile a mentor may own. Profiles
// start unapproved and only become visible in listings after an admin
// approves them.
func (s *Service) CreateProfile(
	ctx context.Context,
	userID, role string,
	req CreateProfileRequest,
) (*Profile, error) {
	if role != user.RoleMentor {
		return nil, fmt.Errorf("create profile: %w", ErrNotMentor)
	}

	profile := &Profile{
		ID:            uuid.New().String(),
		UserID:        userID,
		Badge:         req.Badge,
		ExpertiseTags: core.StringSlice(req.ExpertiseTags),
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, fmt.Errorf("create profile: %w", ErrProfileExists)
		}
		return nil, err
	}

	return profile, nil
}

func (s *Service) GetProfile(
	ctx context.Context,
	userID string,
) (*Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	userID string,
	req UpdateProfileRequest,
) (*Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Badge != nil {
		profile.Badge = *req.Badge
	}
	if req.ExpertiseTags != nil {
		profile.ExpertiseTags = core.StringSlice(req.ExpertiseTags)
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *Service) ListApproved(
	ctx context.Context,
	params ListProfilesParams,
) ([]Profile, int, error) {
	return s.repo.ListApproved(ctx, params)
}
