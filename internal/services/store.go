package services

import (
	"context"

	"github.com/MGaul6/SkillExchange/internal/models"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type CatalogStore interface {
	CreateSkill(ctx context.Context, skill *models.Skill) error
	GetSkill(ctx context.Context, id int64) (*models.Skill, error)
	ListSkills(ctx context.Context, userID int64) ([]models.Skill, error)
	ListAllSkills(ctx context.Context) ([]models.Skill, error)
	CreateInterest(ctx context.Context, interest *models.Interest) error
	GetInterest(ctx context.Context, id int64) (*models.Interest, error)
	ListInterests(ctx context.Context, userID int64) ([]models.Interest, error)
	ListAllInterests(ctx context.Context) ([]models.Interest, error)
}

type ProfileStore interface {
	UpsertProfile(ctx context.Context, profile *models.UserProfile) error
	GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error)
}

type RequestStore interface {
	CreateRequest(ctx context.Context, request *models.SkillRequest) error
	GetRequest(ctx context.Context, id int64) (*models.SkillRequest, error)
	ListRequestsForUser(ctx context.Context, userID int64) ([]models.SkillRequest, error)
	UpdateRequestStatusIfCurrent(ctx context.Context, id int64, currentStatus, nextStatus string) (*models.SkillRequest, error)
}

type SessionStore interface {
	CreateSession(ctx context.Context, session *models.LearningSession) error
	GetSession(ctx context.Context, id int64) (*models.LearningSession, error)
	ListSessionsForUser(ctx context.Context, userID int64) ([]models.LearningSession, error)
	UpdateSessionStatusIfCurrent(ctx context.Context, id int64, currentStatus, nextStatus string) (*models.LearningSession, error)
}

type FeedbackStore interface {
	CreateFeedback(ctx context.Context, feedback *models.SessionFeedback) error
	ListFeedbackReceivedBy(ctx context.Context, userID int64) ([]models.SessionFeedback, error)
}

// Store is the full capability set implemented by repository.PostgresStore
// and repository.MemoryStore.
type Store interface {
	UserStore
	CatalogStore
	ProfileStore
	RequestStore
	SessionStore
	FeedbackStore
}
