package repository

import (
	"context"

	"github.com/MGaul6/SkillExchange/internal/models"
)

type SkillRepository struct {
	db DBTX
}

func NewSkillRepository(db DBTX) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	query := `
		INSERT INTO user_skills (user_id, name, level)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, skill.UserID, skill.Name, skill.Level).
		Scan(&skill.ID, &skill.CreatedAt)
	return translateError(err)
}

func (r *SkillRepository) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	query := `
		SELECT id, user_id, name, level, created_at
		FROM user_skills
		WHERE id = $1
	`
	var skill models.Skill
	err := r.db.QueryRow(ctx, query, id).
		Scan(&skill.ID, &skill.UserID, &skill.Name, &skill.Level, &skill.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &skill, nil
}

func (r *SkillRepository) ListByUser(ctx context.Context, userID int64) ([]models.Skill, error) {
	return r.list(ctx, `
		SELECT id, user_id, name, level, created_at
		FROM user_skills
		WHERE user_id = $1
		ORDER BY id ASC
	`, userID)
}

func (r *SkillRepository) ListAll(ctx context.Context) ([]models.Skill, error) {
	return r.list(ctx, `
		SELECT id, user_id, name, level, created_at
		FROM user_skills
		ORDER BY id ASC
	`)
}

func (r *SkillRepository) list(ctx context.Context, query string, args ...any) ([]models.Skill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := make([]models.Skill, 0)
	for rows.Next() {
		var skill models.Skill
		if err := rows.Scan(&skill.ID, &skill.UserID, &skill.Name, &skill.Level, &skill.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return skills, nil
}

type InterestRepository struct {
	db DBTX
}

func NewInterestRepository(db DBTX) *InterestRepository {
	return &InterestRepository{db: db}
}

func (r *InterestRepository) Create(ctx context.Context, interest *models.Interest) error {
	query := `
		INSERT INTO learning_interests (user_id, name, level)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, interest.UserID, interest.Name, interest.Level).
		Scan(&interest.ID, &interest.CreatedAt)
	return translateError(err)
}

func (r *InterestRepository) GetByID(ctx context.Context, id int64) (*models.Interest, error) {
	query := `
		SELECT id, user_id, name, level, created_at
		FROM learning_interests
		WHERE id = $1
	`
	var interest models.Interest
	err := r.db.QueryRow(ctx, query, id).
		Scan(&interest.ID, &interest.UserID, &interest.Name, &interest.Level, &interest.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &interest, nil
}

func (r *InterestRepository) ListByUser(ctx context.Context, userID int64) ([]models.Interest, error) {
	return r.list(ctx, `
		SELECT id, user_id, name, level, created_at
		FROM learning_interests
		WHERE user_id = $1
		ORDER BY id ASC
	`, userID)
}

func (r *InterestRepository) ListAll(ctx context.Context) ([]models.Interest, error) {
	return r.list(ctx, `
		SELECT id, user_id, name, level, created_at
		FROM learning_interests
		ORDER BY id ASC
	`)
}

func (r *InterestRepository) list(ctx context.Context, query string, args ...any) ([]models.Interest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interests := make([]models.Interest, 0)
	for rows.Next() {
		var interest models.Interest
		if err := rows.Scan(&interest.ID, &interest.UserID, &interest.Name, &interest.Level, &interest.CreatedAt); err != nil {
			return nil, err
		}
		interests = append(interests, interest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return interests, nil
}
