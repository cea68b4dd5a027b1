package repository

import (
	"context"

	"github.com/MGaul6/SkillExchange/internal/models"
)

type FeedbackRepository struct {
	db DBTX
}

func NewFeedbackRepository(db DBTX) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create returns ErrDuplicate when the rater already left feedback for the session.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.SessionFeedback) error {
	query := `
		INSERT INTO session_feedback (session_id, from_user_id, to_user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		feedback.SessionID,
		feedback.FromUserID,
		feedback.ToUserID,
		feedback.Rating,
		feedback.Comment,
	).Scan(&feedback.ID, &feedback.CreatedAt)
	return translateError(err)
}

func (r *FeedbackRepository) ListByRecipient(ctx context.Context, userID int64) ([]models.SessionFeedback, error) {
	query := `
		SELECT id, session_id, from_user_id, to_user_id, rating, comment, created_at
		FROM session_feedback
		WHERE to_user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := make([]models.SessionFeedback, 0)
	for rows.Next() {
		var item models.SessionFeedback
		if err := rows.Scan(
			&item.ID,
			&item.SessionID,
			&item.FromUserID,
			&item.ToUserID,
			&item.Rating,
			&item.Comment,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		feedback = append(feedback, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return feedback, nil
}
