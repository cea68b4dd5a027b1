package repository

import (
	"context"

	"github.com/MGaul6/SkillExchange/internal/models"
)

const sessionColumns = `id, request_id, teacher_id, learner_id, scheduled_start, scheduled_end,
	status, meeting_link, notes, created_at, updated_at`

type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.LearningSession) error {
	query := `
		INSERT INTO learning_sessions (request_id, teacher_id, learner_id, scheduled_start,
			scheduled_end, status, meeting_link, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + sessionColumns
	saved, err := r.scanOne(ctx, query,
		session.RequestID,
		session.TeacherID,
		session.LearnerID,
		session.ScheduledStart,
		session.ScheduledEnd,
		session.Status,
		session.MeetingLink,
		session.Notes,
	)
	if err != nil {
		return err
	}
	*session = *saved
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID int64) (*models.LearningSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM learning_sessions WHERE id = $1`
	return r.scanOne(ctx, query, sessionID)
}

func (r *SessionRepository) ListForUser(ctx context.Context, userID int64) ([]models.LearningSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM learning_sessions
		WHERE teacher_id = $1 OR learner_id = $1
		ORDER BY scheduled_start ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.LearningSession, 0)
	for rows.Next() {
		var session models.LearningSession
		if err := rows.Scan(sessionFields(&session)...); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) UpdateStatusIfCurrent(
	ctx context.Context,
	sessionID int64,
	currentStatus string,
	nextStatus string,
) (*models.LearningSession, error) {
	query := `
		UPDATE learning_sessions
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + sessionColumns
	return r.scanOne(ctx, query, sessionID, currentStatus, nextStatus)
}

func (r *SessionRepository) scanOne(ctx context.Context, query string, args ...any) (*models.LearningSession, error) {
	var session models.LearningSession
	if err := r.db.QueryRow(ctx, query, args...).Scan(sessionFields(&session)...); err != nil {
		return nil, translateError(err)
	}
	return &session, nil
}

func sessionFields(session *models.LearningSession) []any {
	return []any{
		&session.ID,
		&session.RequestID,
		&session.TeacherID,
		&session.LearnerID,
		&session.ScheduledStart,
		&session.ScheduledEnd,
		&session.Status,
		&session.MeetingLink,
		&session.Notes,
		&session.CreatedAt,
		&session.UpdatedAt,
	}
}
