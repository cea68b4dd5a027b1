package services

import (
	"context"
	"math/rand"
	"sort"
	"strings"

	"github.com/MGaul6/SkillExchange/internal/metrics"
	"github.com/MGaul6/SkillExchange/internal/models"
)

const (
	matchWeight   = 25
	maxJitter     = 50
	maxMatchScore = 100
)

// Jitter adds a non-negative term below max to a candidate's score.
type Jitter interface {
	Jitter(max int) int
}

// RandomJitter spreads equal scores so demo listings vary between calls.
type RandomJitter struct{}

func (RandomJitter) Jitter(max int) int {
	if max <= 0 {
		return 0
	}
	return rand.Intn(max)
}

type NoJitter struct{}

func (NoJitter) Jitter(int) int { return 0 }

type MatchCandidateReader interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListAllSkills(ctx context.Context) ([]models.Skill, error)
	ListAllInterests(ctx context.Context) ([]models.Interest, error)
}

type MatchmakingService struct {
	store  MatchCandidateReader
	jitter Jitter
}

func NewMatchmakingService(store MatchCandidateReader, jitter Jitter) *MatchmakingService {
	if jitter == nil {
		jitter = NoJitter{}
	}
	return &MatchmakingService{store: store, jitter: jitter}
}

// SuggestMatches ranks every other user by complementary skills and interests.
// A limit of zero returns all candidates.
func (s *MatchmakingService) SuggestMatches(
	ctx context.Context,
	userID int64,
	limit int,
) ([]models.Match, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, storeError(err, "user", userID)
	}

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := s.store.ListAllSkills(ctx)
	if err != nil {
		return nil, err
	}
	interests, err := s.store.ListAllInterests(ctx)
	if err != nil {
		return nil, err
	}

	skillsByUser := make(map[int64][]models.Skill)
	for _, skill := range skills {
		skillsByUser[skill.UserID] = append(skillsByUser[skill.UserID], skill)
	}
	interestsByUser := make(map[int64][]models.Interest)
	for _, interest := range interests {
		interestsByUser[interest.UserID] = append(interestsByUser[interest.UserID], interest)
	}

	requesterSkills := skillsByUser[userID]
	requesterInterests := interestsByUser[userID]

	matched := make([]models.Match, 0, len(users))
	for _, candidate := range users {
		if candidate.ID == userID {
			continue
		}
		theirSkills := nonNilSkills(skillsByUser[candidate.ID])
		theirInterests := nonNilInterests(interestsByUser[candidate.ID])

		deterministic := calculateMatchScore(requesterSkills, requesterInterests, theirSkills, theirInterests)
		score := deterministic + s.boundedJitter()
		if score > maxMatchScore {
			score = maxMatchScore
		}

		matched = append(matched, models.Match{
			User:              candidate,
			Name:              candidate.DisplayName(),
			MatchScore:        score,
			Deterministic:     deterministic,
			TeachingSkills:    theirSkills,
			LearningInterests: theirInterests,
		})
		metrics.MatchScores.Observe(float64(score))
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if a.Deterministic != b.Deterministic {
			return a.Deterministic > b.Deterministic
		}
		if !a.User.CreatedAt.Equal(b.User.CreatedAt) {
			return a.User.CreatedAt.After(b.User.CreatedAt)
		}
		return a.User.ID < b.User.ID
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	metrics.MatchSuggestions.Inc()
	return matched, nil
}

func (s *MatchmakingService) boundedJitter() int {
	value := s.jitter.Jitter(maxJitter)
	if value < 0 {
		return 0
	}
	if value >= maxJitter {
		return maxJitter - 1
	}
	return value
}

// calculateMatchScore awards matchWeight for every requester interest the
// candidate teaches and for every requester skill the candidate wants to learn.
func calculateMatchScore(
	requesterSkills []models.Skill,
	requesterInterests []models.Interest,
	candidateSkills []models.Skill,
	candidateInterests []models.Interest,
) int {
	taught := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		if key := normalize(skill.Name); key != "" {
			taught[key] = struct{}{}
		}
	}
	wanted := make(map[string]struct{}, len(candidateInterests))
	for _, interest := range candidateInterests {
		if key := normalize(interest.Name); key != "" {
			wanted[key] = struct{}{}
		}
	}

	score := 0
	for _, interest := range requesterInterests {
		if _, ok := taught[normalize(interest.Name)]; ok {
			score += matchWeight
		}
	}
	for _, skill := range requesterSkills {
		if _, ok := wanted[normalize(skill.Name)]; ok {
			score += matchWeight
		}
	}
	return score
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func nonNilSkills(skills []models.Skill) []models.Skill {
	if skills == nil {
		return []models.Skill{}
	}
	return skills
}

func nonNilInterests(interests []models.Interest) []models.Interest {
	if interests == nil {
		return []models.Interest{}
	}
	return interests
}
