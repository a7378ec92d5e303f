// MentorHive | 2026
// repository.go

package mentor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mentorhive/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	SetApproved(ctx context.Context, userID string, approved bool) error
	DeleteByUserID(ctx context.Context, userID string) error
	ListApproved(
		ctx context.Context,
		params ListProfilesParams,
	) ([]Profile, int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, profile *Profile) error {
	query := `
		INSERT INTO mentor_profiles (id, user_id, badge, expertise_tags)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, profile, query,
		profile.ID,
		profile.UserID,
		profile.Badge,
		profile.ExpertiseTags,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("create mentor profile: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create mentor profile: %w", err)
	}

	return nil
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID string,
) (*Profile, error) {
	query := `
		SELECT id, user_id, badge, expertise_tags, approved_by_admin,
		       created_at, updated_at
		FROM mentor_profiles
		WHERE user_id = $1`

	var profile Profile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get mentor profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get mentor profile: %w", err)
	}

	return &profile, nil
}

func (r *repository) Update(ctx context.Context, profile *Profile) error {
	query := `
		UPDATE mentor_profiles
		SET badge = $2, expertise_tags = $3, updated_at = NOW()
		WHERE user_id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &profile.UpdatedAt, query,
		profile.UserID,
		profile.Badge,
		profile.ExpertiseTags,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update mentor profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update mentor profile: %w", err)
	}

	return nil
}

func (r *repository) SetApproved(
	ctx context.Context,
	userID string,
	approved bool,
) error {
	query := `
		UPDATE mentor_profiles
		SET approved_by_admin = $2, updated_at = NOW()
		WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID, approved)
	if err != nil {
		return fmt.Errorf("approve mentor profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("approve mentor profile: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("approve mentor profile: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) DeleteByUserID(
	ctx context.Context,
	userID string,
) error {
	query := `DELETE FROM mentor_profiles WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("delete mentor profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete mentor profile: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete mentor profile: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ListApproved(
	ctx context.Context,
	params ListProfilesParams,
) ([]Profile, int, error) {
	params.Normalize()

	var total int
	countQuery := `SELECT COUNT(*) FROM mentor_profiles WHERE approved_by_admin = TRUE`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, fmt.Errorf("count mentor profiles: %w", err)
	}

	query := `
		SELECT id, user_id, badge, expertise_tags, approved_by_admin,
		       created_at, updated_at
		FROM mentor_profiles
		WHERE approved_by_admin = TRUE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var profiles []Profile
	err := r.db.SelectContext(
		ctx,
		&profiles,
		query,
		params.PageSize,
		params.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list mentor profiles: %w", err)
	}

	return profiles, total, nil
}
