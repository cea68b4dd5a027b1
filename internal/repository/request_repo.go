package repository

import (
	"context"

	"github.com/MGaul6/SkillExchange/internal/models"
)

const requestColumns = `id, from_user_id, to_user_id, teach_skill_id, learn_skill_id, status,
	proposed_schedule, message, created_at, updated_at`

type SkillRequestRepository struct {
	db DBTX
}

func NewSkillRequestRepository(db DBTX) *SkillRequestRepository {
	return &SkillRequestRepository{db: db}
}

func (r *SkillRequestRepository) Create(ctx context.Context, request *models.SkillRequest) error {
	query := `
		INSERT INTO skill_requests (from_user_id, to_user_id, teach_skill_id, learn_skill_id,
			status, proposed_schedule, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + requestColumns
	saved, err := r.scanOne(ctx, query,
		request.FromUserID,
		request.ToUserID,
		request.TeachSkillID,
		request.LearnSkillID,
		request.Status,
		request.ProposedSchedule,
		request.Message,
	)
	if err != nil {
		return err
	}
	*request = *saved
	return nil
}

func (r *SkillRequestRepository) GetByID(ctx context.Context, id int64) (*models.SkillRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM skill_requests WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *SkillRequestRepository) ListForUser(ctx context.Context, userID int64) ([]models.SkillRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM skill_requests
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]models.SkillRequest, 0)
	for rows.Next() {
		var request models.SkillRequest
		if err := rows.Scan(requestFields(&request)...); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatusIfCurrent returns ErrNotFound when the row is missing or its
// status no longer equals currentStatus.
func (r *SkillRequestRepository) UpdateStatusIfCurrent(
	ctx context.Context,
	requestID int64,
	currentStatus string,
	nextStatus string,
) (*models.SkillRequest, error) {
	query := `
		UPDATE skill_requests
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + requestColumns
	return r.scanOne(ctx, query, requestID, currentStatus, nextStatus)
}

func (r *SkillRequestRepository) scanOne(ctx context.Context, query string, args ...any) (*models.SkillRequest, error) {
	var request models.SkillRequest
	if err := r.db.QueryRow(ctx, query, args...).Scan(requestFields(&request)...); err != nil {
		return nil, translateError(err)
	}
	return &request, nil
}

func requestFields(request *models.SkillRequest) []any {
	return []any{
		&request.ID,
		&request.FromUserID,
		&request.ToUserID,
		&request.TeachSkillID,
		&request.LearnSkillID,
		&request.Status,
		&request.ProposedSchedule,
		&request.Message,
		&request.CreatedAt,
		&request.UpdatedAt,
	}
}
