package models

import "time"

const (
	SessionStatusScheduled = "scheduled"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

type LearningSession struct {
	ID             int64     `json:"id"`
	RequestID      *int64    `json:"request_id"`
	TeacherID      int64     `json:"teacher_id"`
	LearnerID      int64     `json:"learner_id"`
	ScheduledStart time.Time `json:"scheduled_start"`
	ScheduledEnd   time.Time `json:"scheduled_end"`
	Status         string    `json:"status"`
	MeetingLink    *string   `json:"meeting_link"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (s *LearningSession) IsParticipant(userID int64) bool {
	return s.TeacherID == userID || s.LearnerID == userID
}

type SessionFeedback struct {
	ID         int64     `json:"id"`
	SessionID  int64     `json:"session_id"`
	FromUserID int64     `json:"from_user_id"`
	ToUserID   int64     `json:"to_user_id"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
