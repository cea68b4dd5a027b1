package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MGaul6/SkillExchange/internal/models"
)

type UserProfileRepository struct {
	db DBTX
}

func NewUserProfileRepository(db DBTX) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

func (r *UserProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	query := `
		SELECT id, user_id, learning_modes, availability, learning_goals, learning_intensity,
			   teaching_styles, motivation, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`
	return r.scanOne(ctx, query, userID)
}

// Upsert creates the profile on first write and replaces every field afterwards.
func (r *UserProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	availability, err := json.Marshal(profile.Availability)
	if err != nil {
		return fmt.Errorf("encode availability: %w", err)
	}

	query := `
		INSERT INTO user_profiles (user_id, learning_modes, availability, learning_goals,
			learning_intensity, teaching_styles, motivation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET learning_modes = EXCLUDED.learning_modes,
			availability = EXCLUDED.availability,
			learning_goals = EXCLUDED.learning_goals,
			learning_intensity = EXCLUDED.learning_intensity,
			teaching_styles = EXCLUDED.teaching_styles,
			motivation = EXCLUDED.motivation,
			updated_at = NOW()
		RETURNING id, user_id, learning_modes, availability, learning_goals, learning_intensity,
				  teaching_styles, motivation, created_at, updated_at
	`
	saved, err := r.scanOne(ctx, query,
		profile.UserID,
		textArray(profile.LearningModes),
		availability,
		profile.LearningGoals,
		profile.LearningIntensity,
		textArray(profile.TeachingStyles),
		profile.Motivation,
	)
	if err != nil {
		return err
	}
	*profile = *saved
	return nil
}

func (r *UserProfileRepository) scanOne(ctx context.Context, query string, args ...any) (*models.UserProfile, error) {
	var (
		profile      models.UserProfile
		availability []byte
	)
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.LearningModes,
		&availability,
		&profile.LearningGoals,
		&profile.LearningIntensity,
		&profile.TeachingStyles,
		&profile.Motivation,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	if len(availability) > 0 {
		if err := json.Unmarshal(availability, &profile.Availability); err != nil {
			return nil, fmt.Errorf("decode availability: %w", err)
		}
	}
	return &profile, nil
}

// textArray keeps pgx from sending a nil slice as NULL into a NOT NULL TEXT[] column.
func textArray(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
