package models

import "time"

const (
	AvailabilityTimeslots = 3
	AvailabilityWeekdays  = 7
)

// Availability rows are Morning, Afternoon, Evening; columns run Monday to Sunday.
type Availability [AvailabilityTimeslots][AvailabilityWeekdays]bool

type UserProfile struct {
	ID                int64        `json:"id"`
	UserID            int64        `json:"user_id"`
	LearningModes     []string     `json:"learning_modes"`
	Availability      Availability `json:"availability"`
	LearningGoals     *string      `json:"learning_goals"`
	LearningIntensity *string      `json:"learning_intensity"`
	TeachingStyles    []string     `json:"teaching_styles"`
	Motivation        *string      `json:"motivation"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}
