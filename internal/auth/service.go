// MentorHive | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mentorhive/backend/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserBanned         = errors.New("user is banned")
)

type UserInfo struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	Role             string
	Bio              string
	IsMentorApproved bool
	Banned           bool
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	Create(
		ctx context.Context,
		name, email, passwordHash, role, bio string,
	) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type Service struct {
	jwt          *JWTManager
	userProvider UserProvider
	enforceBans  bool
}

func NewService(
	jwt *JWTManager,
	userProvider UserProvider,
	enforceBans bool,
) *Service {
	return &Service{
		jwt:          jwt,
		userProvider: userProvider,
		enforceBans:  enforceBans,
	}
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	user, err := s.userProvider.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	// Ban enforcement is opt-in; without it the audit trail is the only
	// record of a ban and a banned user logs in normally.
	if s.enforceBans && user.Banned {
		return nil, ErrUserBanned
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.userProvider.UpdatePassword(ctx, user.ID, newHash)
	}

	return s.createAuthResponse(user)
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = "junior"
	}

	user, err := s.userProvider.Create(
		ctx,
		req.Name,
		req.Email,
		passwordHash,
		role,
		req.Bio,
	)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.createAuthResponse(user)
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	userID string,
) (*UserResponse, error) {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Role:             user.Role,
		Bio:              user.Bio,
		IsMentorApproved: user.IsMentorApproved,
	}, nil
}

func (s *Service) createAuthResponse(user *UserInfo) (*AuthResponse, error) {
	accessToken, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return &AuthResponse{
		User: UserResponse{
			ID:               user.ID,
			Name:             user.Name,
			Email:            user.Email,
			Role:             user.Role,
			Bio:              user.Bio,
			IsMentorApproved: user.IsMentorApproved,
		},
		Token: accessToken,
	}, nil
}
