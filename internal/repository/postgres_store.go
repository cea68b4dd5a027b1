package repository

import (
	"context"

	"github.com/MGaul6/SkillExchange/internal/models"
)

// PostgresStore exposes the per-table repositories behind one capability set.
type PostgresStore struct {
	users     *UserRepository
	skills    *SkillRepository
	interests *InterestRepository
	profiles  *UserProfileRepository
	requests  *SkillRequestRepository
	sessions  *SessionRepository
	feedback  *FeedbackRepository
}

func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{
		users:     NewUserRepository(db),
		skills:    NewSkillRepository(db),
		interests: NewInterestRepository(db),
		profiles:  NewUserProfileRepository(db),
		requests:  NewSkillRequestRepository(db),
		sessions:  NewSessionRepository(db),
		feedback:  NewFeedbackRepository(db),
	}
}

func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.users.CreateUser(ctx, user)
}

func (s *PostgresStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetByUsername(ctx, username)
}

func (s *PostgresStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *PostgresStore) CreateSkill(ctx context.Context, skill *models.Skill) error {
	return s.skills.Create(ctx, skill)
}

func (s *PostgresStore) GetSkill(ctx context.Context, id int64) (*models.Skill, error) {
	return s.skills.GetByID(ctx, id)
}

func (s *PostgresStore) ListSkills(ctx context.Context, userID int64) ([]models.Skill, error) {
	return s.skills.ListByUser(ctx, userID)
}

func (s *PostgresStore) ListAllSkills(ctx context.Context) ([]models.Skill, error) {
	return s.skills.ListAll(ctx)
}

func (s *PostgresStore) CreateInterest(ctx context.Context, interest *models.Interest) error {
	return s.interests.Create(ctx, interest)
}

func (s *PostgresStore) GetInterest(ctx context.Context, id int64) (*models.Interest, error) {
	return s.interests.GetByID(ctx, id)
}

func (s *PostgresStore) ListInterests(ctx context.Context, userID int64) ([]models.Interest, error) {
	return s.interests.ListByUser(ctx, userID)
}

func (s *PostgresStore) ListAllInterests(ctx context.Context) ([]models.Interest, error) {
	return s.interests.ListAll(ctx)
}

func (s *PostgresStore) UpsertProfile(ctx context.Context, profile *models.UserProfile) error {
	return s.profiles.Upsert(ctx, profile)
}

func (s *PostgresStore) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

func (s *PostgresStore) CreateRequest(ctx context.Context, request *models.SkillRequest) error {
	return s.requests.Create(ctx, request)
}

func (s *PostgresStore) GetRequest(ctx context.Context, id int64) (*models.SkillRequest, error) {
	return s.requests.GetByID(ctx, id)
}

func (s *PostgresStore) ListRequestsForUser(ctx context.Context, userID int64) ([]models.SkillRequest, error) {
	return s.requests.ListForUser(ctx, userID)
}

func (s *PostgresStore) UpdateRequestStatusIfCurrent(
	ctx context.Context,
	id int64,
	currentStatus string,
	nextStatus string,
) (*models.SkillRequest, error) {
	return s.requests.UpdateStatusIfCurrent(ctx, id, currentStatus, nextStatus)
}

func (s *PostgresStore) CreateSession(ctx context.Context, session *models.LearningSession) error {
	return s.sessions.Create(ctx, session)
}

func (s *PostgresStore) GetSession(ctx context.Context, id int64) (*models.LearningSession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *PostgresStore) ListSessionsForUser(ctx context.Context, userID int64) ([]models.LearningSession, error) {
	return s.sessions.ListForUser(ctx, userID)
}

func (s *PostgresStore) UpdateSessionStatusIfCurrent(
	ctx context.Context,
	id int64,
	currentStatus string,
	nextStatus string,
) (*models.LearningSession, error) {
	return s.sessions.UpdateStatusIfCurrent(ctx, id, currentStatus, nextStatus)
}

func (s *PostgresStore) CreateFeedback(ctx context.Context, feedback *models.SessionFeedback) error {
	return s.feedback.Create(ctx, feedback)
}

func (s *PostgresStore) ListFeedbackReceivedBy(ctx context.Context, userID int64) ([]models.SessionFeedback, error) {
	return s.feedback.ListByRecipient(ctx, userID)
}
