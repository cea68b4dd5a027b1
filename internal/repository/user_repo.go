package repository

import (
	"context"

	"github.com/MGaul6/SkillExchange/internal/models"
)

const userColumns = `id, username, email, password_hash, first_name, last_name,
	profile_picture, location, timezone, bio, created_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name,
			profile_picture, location, timezone, bio)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.ProfilePicture,
		user.Location,
		user.Timezone,
		user.Bio,
	).Scan(&user.ID, &user.CreatedAt)
	return translateError(err)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanOne(ctx, query, username)
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(userFields(&user)...); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) scanOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	if err := r.db.QueryRow(ctx, query, arg).Scan(userFields(&user)...); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func userFields(user *models.User) []any {
	return []any{
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.ProfilePicture,
		&user.Location,
		&user.Timezone,
		&user.Bio,
		&user.CreatedAt,
	}
}
