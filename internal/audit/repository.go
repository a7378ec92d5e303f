// MentorHive | 2026
// repository.go

package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mentorhive/backend/internal/core"
)

type Repository interface {
	// Record takes an explicit executor so moderation can append the
	// audit entry inside the same transaction as its mutation.
	Record(
		ctx context.Context,
		db core.DBTX,
		adminID, actionType, targetID string,
	) (*AdminAction, error)
	List(
		ctx context.Context,
		params ListActionsParams,
	) ([]AdminAction, int, error)
	Stats(ctx context.Context, adminID string) (*StatsResponse, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Record(
	ctx context.Context,
	db core.DBTX,
	adminID, actionType, targetID string,
) (*AdminAction, error) {
	if db == nil {
		db = r.db
	}

	action := &AdminAction{
		ID:         uuid.New().String(),
		AdminID:    adminID,
		ActionType: actionType,
		TargetID:   targetID,
	}

	query := `
		INSERT INTO admin_actions (id, admin_id, action_type, target_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := db.GetContext(ctx, &action.CreatedAt, query,
		action.ID,
		action.AdminID,
		action.ActionType,
		action.TargetID,
	)
	if err != nil {
		return nil, fmt.Errorf("record admin action: %w", err)
	}

	return action, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListActionsParams,
) ([]AdminAction, int, error) {
	params.Normalize()

	conditions := []string{"admin_id = $1"}
	args := []any{params.AdminID}
	argIdx := 2

	if params.ActionType != "" {
		conditions = append(conditions, fmt.Sprintf(
			"action_type = $%d", argIdx))
		args = append(args, params.ActionType)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM admin_actions WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count admin actions: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, admin_id, action_type, target_id, created_at
		FROM admin_actions
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var actions []AdminAction
	if err := r.db.SelectContext(ctx, &actions, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list admin actions: %w", err)
	}

	return actions, total, nil
}

func (r *repository) Stats(
	ctx context.Context,
	adminID string,
) (*StatsResponse, error) {
	query := `
		SELECT action_type, COUNT(*) AS count
		FROM admin_actions
		WHERE admin_id = $1
		GROUP BY action_type`

	var rows []struct {
		ActionType string `db:"action_type"`
		Count      int    `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, adminID); err != nil {
		return nil, fmt.Errorf("admin action stats: %w", err)
	}

	stats := &StatsResponse{Breakdown: make(map[string]int, len(rows))}
	for _, row := range rows {
		stats.Breakdown[row.ActionType] = row.Count
		stats.TotalActions += row.Count
	}

	return stats, nil
}
