package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MGaul6/SkillExchange/internal/models"
)

type feedbackKey struct {
	sessionID  int64
	fromUserID int64
}

// MemoryStore is a map-backed store with the same behaviour as PostgresStore.
// It is safe for concurrent use.
type MemoryStore struct {
	mu sync.RWMutex

	now    func() time.Time
	nextID map[string]int64

	users     map[int64]models.User
	skills    map[int64]models.Skill
	interests map[int64]models.Interest
	profiles  map[int64]models.UserProfile // keyed by user id
	requests  map[int64]models.SkillRequest
	sessions  map[int64]models.LearningSession
	feedback  map[int64]models.SessionFeedback
	raters    map[feedbackKey]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:       time.Now,
		nextID:    make(map[string]int64),
		users:     make(map[int64]models.User),
		skills:    make(map[int64]models.Skill),
		interests: make(map[int64]models.Interest),
		profiles:  make(map[int64]models.UserProfile),
		requests:  make(map[int64]models.SkillRequest),
		sessions:  make(map[int64]models.LearningSession),
		feedback:  make(map[int64]models.SessionFeedback),
		raters:    make(map[feedbackKey]struct{}),
	}
}

// SetClock replaces the time source used for created/updated timestamps.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *MemoryStore) allocID(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || strings.EqualFold(existing.Email, user.Email) {
			return ErrDuplicate
		}
	}
	user.ID = s.allocID("users")
	user.CreatedAt = s.now().UTC()
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *MemoryStore) CreateSkill(_ context.Context, skill *models.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[skill.UserID]; !ok {
		return ErrNotFound
	}
	skill.ID = s.allocID("user_skills")
	skill.CreatedAt = s.now().UTC()
	s.skills[skill.ID] = *skill
	return nil
}

func (s *MemoryStore) GetSkill(_ context.Context, id int64) (*models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	skill, ok := s.skills[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &skill, nil
}

func (s *MemoryStore) ListSkills(_ context.Context, userID int64) ([]models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterSkills(func(skill models.Skill) bool { return skill.UserID == userID }), nil
}

func (s *MemoryStore) ListAllSkills(_ context.Context) ([]models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterSkills(func(models.Skill) bool { return true }), nil
}

func (s *MemoryStore) filterSkills(keep func(models.Skill) bool) []models.Skill {
	skills := make([]models.Skill, 0)
	for _, skill := range s.skills {
		if keep(skill) {
			skills = append(skills, skill)
		}
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].ID < skills[j].ID })
	return skills
}

func (s *MemoryStore) CreateInterest(_ context.Context, interest *models.Interest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[interest.UserID]; !ok {
		return ErrNotFound
	}
	interest.ID = s.allocID("learning_interests")
	interest.CreatedAt = s.now().UTC()
	s.interests[interest.ID] = *interest
	return nil
}

func (s *MemoryStore) GetInterest(_ context.Context, id int64) (*models.Interest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	interest, ok := s.interests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &interest, nil
}

func (s *MemoryStore) ListInterests(_ context.Context, userID int64) ([]models.Interest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterInterests(func(interest models.Interest) bool { return interest.UserID == userID }), nil
}

func (s *MemoryStore) ListAllInterests(_ context.Context) ([]models.Interest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterInterests(func(models.Interest) bool { return true }), nil
}

func (s *MemoryStore) filterInterests(keep func(models.Interest) bool) []models.Interest {
	interests := make([]models.Interest, 0)
	for _, interest := range s.interests {
		if keep(interest) {
			interests = append(interests, interest)
		}
	}
	sort.Slice(interests, func(i, j int) bool { return interests[i].ID < interests[j].ID })
	return interests
}

func (s *MemoryStore) UpsertProfile(_ context.Context, profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[profile.UserID]; !ok {
		return ErrNotFound
	}
	now := s.now().UTC()
	if existing, ok := s.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.ID = s.allocID("user_profiles")
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	profile.LearningModes = cloneStrings(profile.LearningModes)
	profile.TeachingStyles = cloneStrings(profile.TeachingStyles)
	s.profiles[profile.UserID] = *profile
	return nil
}

func (s *MemoryStore) GetProfile(_ context.Context, userID int64) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	profile.LearningModes = cloneStrings(profile.LearningModes)
	profile.TeachingStyles = cloneStrings(profile.TeachingStyles)
	return &profile, nil
}

func (s *MemoryStore) CreateRequest(_ context.Context, request *models.SkillRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	request.ID = s.allocID("skill_requests")
	request.CreatedAt = now
	request.UpdatedAt = now
	s.requests[request.ID] = *request
	return nil
}

func (s *MemoryStore) GetRequest(_ context.Context, id int64) (*models.SkillRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &request, nil
}

func (s *MemoryStore) ListRequestsForUser(_ context.Context, userID int64) ([]models.SkillRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]models.SkillRequest, 0)
	for _, request := range s.requests {
		if request.Involves(userID) {
			requests = append(requests, request)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		if requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].ID > requests[j].ID
		}
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func (s *MemoryStore) UpdateRequestStatusIfCurrent(
	_ context.Context,
	id int64,
	currentStatus string,
	nextStatus string,
) (*models.SkillRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[id]
	if !ok || request.Status != currentStatus {
		return nil, ErrNotFound
	}
	request.Status = nextStatus
	request.UpdatedAt = s.now().UTC()
	s.requests[id] = request
	return &request, nil
}

func (s *MemoryStore) CreateSession(_ context.Context, session *models.LearningSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	session.ID = s.allocID("learning_sessions")
	session.CreatedAt = now
	session.UpdatedAt = now
	s.sessions[session.ID] = *session
	return nil
}

func (s *MemoryStore) GetSession(_ context.Context, id int64) (*models.LearningSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (s *MemoryStore) ListSessionsForUser(_ context.Context, userID int64) ([]models.LearningSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]models.LearningSession, 0)
	for _, session := range s.sessions {
		if session.IsParticipant(userID) {
			sessions = append(sessions, session)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].ScheduledStart.Equal(sessions[j].ScheduledStart) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].ScheduledStart.Before(sessions[j].ScheduledStart)
	})
	return sessions, nil
}

func (s *MemoryStore) UpdateSessionStatusIfCurrent(
	_ context.Context,
	id int64,
	currentStatus string,
	nextStatus string,
) (*models.LearningSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || session.Status != currentStatus {
		return nil, ErrNotFound
	}
	session.Status = nextStatus
	session.UpdatedAt = s.now().UTC()
	s.sessions[id] = session
	return &session, nil
}

func (s *MemoryStore) CreateFeedback(_ context.Context, feedback *models.SessionFeedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := feedbackKey{sessionID: feedback.SessionID, fromUserID: feedback.FromUserID}
	if _, exists := s.raters[key]; exists {
		return ErrDuplicate
	}
	feedback.ID = s.allocID("session_feedback")
	feedback.CreatedAt = s.now().UTC()
	s.feedback[feedback.ID] = *feedback
	s.raters[key] = struct{}{}
	return nil
}

func (s *MemoryStore) ListFeedbackReceivedBy(_ context.Context, userID int64) ([]models.SessionFeedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	feedback := make([]models.SessionFeedback, 0)
	for _, item := range s.feedback {
		if item.ToUserID == userID {
			feedback = append(feedback, item)
		}
	}
	sort.Slice(feedback, func(i, j int) bool {
		if feedback[i].CreatedAt.Equal(feedback[j].CreatedAt) {
			return feedback[i].ID > feedback[j].ID
		}
		return feedback[i].CreatedAt.After(feedback[j].CreatedAt)
	})
	return feedback, nil
}

// cloneStrings never returns nil; an empty TEXT[] column reads back as an empty slice.
func cloneStrings(values []string) []string {
	return append([]string{}, values...)
}
