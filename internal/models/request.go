package models

import "time"

const (
	RequestStatusPending   = "pending"
	RequestStatusAccepted  = "accepted"
	RequestStatusRejected  = "rejected"
	RequestStatusCancelled = "cancelled"
)

// SkillRequest is a proposal from one user to another to exchange instruction.
type SkillRequest struct {
	ID               int64      `json:"id"`
	FromUserID       int64      `json:"from_user_id"`
	ToUserID         int64      `json:"to_user_id"`
	TeachSkillID     *int64     `json:"teach_skill_id"`
	LearnSkillID     *int64     `json:"learn_skill_id"`
	Status           string     `json:"status"`
	ProposedSchedule *time.Time `json:"proposed_schedule"`
	Message          *string    `json:"message"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (r *SkillRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

func (r *SkillRequest) IsAccepted() bool {
	return r.Status == RequestStatusAccepted
}

// Involves reports whether userID is the sender or the recipient.
func (r *SkillRequest) Involves(userID int64) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}
