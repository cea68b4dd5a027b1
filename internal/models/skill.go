package models

import "time"

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// Skill is something a user can teach.
type Skill struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// Interest is something a user wants to learn.
type Interest struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}
