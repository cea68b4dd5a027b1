package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MGaul6/SkillExchange/internal/models"
	"github.com/MGaul6/SkillExchange/internal/repository"
	"github.com/MGaul6/SkillExchange/pkg/utils"
)

var (
	skillLevels    = []string{models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced, models.LevelExpert}
	interestLevels = []string{models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced}
)

type userStore interface {
	UserStore
	CatalogStore
	ProfileStore
}

type UserService struct {
	store userStore
}

func NewUserService(store userStore) *UserService {
	return &UserService{store: store}
}

type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	FirstName      *string
	LastName       *string
	ProfilePicture *string
	Location       *string
	Timezone       *string
	Bio            *string
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if username == "" || email == "" || input.Password == "" {
		return nil, invalidArgument("username, email and password are required")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		PasswordHash:   hashed,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		ProfilePicture: input.ProfilePicture,
		Location:       input.Location,
		Timezone:       input.Timezone,
		Bio:            input.Bio,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username or email already registered", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, storeError(err, "user", userID)
	}
	return user, nil
}

type ProfileInput struct {
	LearningModes     []string
	Availability      models.Availability
	LearningGoals     *string
	LearningIntensity *string
	TeachingStyles    []string
	Motivation        *string
}

func (s *UserService) UpdateUserProfile(
	ctx context.Context,
	userID int64,
	input ProfileInput,
) (*models.UserProfile, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		UserID:            userID,
		LearningModes:     nonNilStrings(input.LearningModes),
		Availability:      input.Availability,
		LearningGoals:     input.LearningGoals,
		LearningIntensity: input.LearningIntensity,
		TeachingStyles:    nonNilStrings(input.TeachingStyles),
		Motivation:        input.Motivation,
	}
	if err := s.store.UpsertProfile(ctx, profile); err != nil {
		return nil, storeError(err, "user", userID)
	}
	return profile, nil
}

func (s *UserService) GetUserProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, storeError(err, "profile for user", userID)
	}
	return profile, nil
}

func (s *UserService) AddSkill(ctx context.Context, userID int64, name, level string) (*models.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidArgument("skill name is required")
	}
	canonical, ok := canonicalLevel(level, skillLevels)
	if !ok {
		return nil, invalidArgument("skill level must be one of %s", strings.Join(skillLevels, ", "))
	}
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	skill := &models.Skill{UserID: userID, Name: name, Level: canonical}
	if err := s.store.CreateSkill(ctx, skill); err != nil {
		return nil, storeError(err, "user", userID)
	}
	return skill, nil
}

func (s *UserService) ListSkills(ctx context.Context, userID int64) ([]models.Skill, error) {
	return s.store.ListSkills(ctx, userID)
}

func (s *UserService) AddInterest(ctx context.Context, userID int64, name, level string) (*models.Interest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidArgument("interest name is required")
	}
	canonical, ok := canonicalLevel(level, interestLevels)
	if !ok {
		return nil, invalidArgument("interest level must be one of %s", strings.Join(interestLevels, ", "))
	}
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	interest := &models.Interest{UserID: userID, Name: name, Level: canonical}
	if err := s.store.CreateInterest(ctx, interest); err != nil {
		return nil, storeError(err, "user", userID)
	}
	return interest, nil
}

func (s *UserService) ListInterests(ctx context.Context, userID int64) ([]models.Interest, error) {
	return s.store.ListInterests(ctx, userID)
}

func canonicalLevel(level string, allowed []string) (string, bool) {
	for _, candidate := range allowed {
		if strings.EqualFold(strings.TrimSpace(level), candidate) {
			return candidate, true
		}
	}
	return "", false
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
