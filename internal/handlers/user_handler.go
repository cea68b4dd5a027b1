package handlers

import (
	"context"
	"errors"

	"github.com/MGaul6/SkillExchange/internal/models"
	"github.com/MGaul6/SkillExchange/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users   userDirectory
	ratings ratingSummarizer
}

type userDirectory interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	GetUserProfile(ctx context.Context, userID int64) (*models.UserProfile, error)
	UpdateUserProfile(ctx context.Context, userID int64, input services.ProfileInput) (*models.UserProfile, error)
	AddSkill(ctx context.Context, userID int64, name, level string) (*models.Skill, error)
	ListSkills(ctx context.Context, userID int64) ([]models.Skill, error)
	AddInterest(ctx context.Context, userID int64, name, level string) (*models.Interest, error)
	ListInterests(ctx context.Context, userID int64) ([]models.Interest, error)
}

type ratingSummarizer interface {
	RatingSummary(ctx context.Context, userID int64) (models.RatingSummary, error)
}

func NewUserHandler(users *services.UserService, ratings *services.FeedbackService) *UserHandler {
	return &UserHandler{users: users, ratings: ratings}
}

type updateProfileRequest struct {
	LearningModes     []string `json:"learning_modes" validate:"omitempty,dive,oneof=video-calls chat-based pre-recorded"`
	Availability      [][]bool `json:"availability"`
	LearningGoals     *string  `json:"learning_goals" validate:"omitempty,max=2000"`
	LearningIntensity *string  `json:"learning_intensity" validate:"omitempty,oneof=casual regular intensive"`
	TeachingStyles    []string `json:"teaching_styles" validate:"omitempty,dive,oneof=structured project-based mentorship"`
	Motivation        *string  `json:"motivation" validate:"omitempty,max=2000"`
}

type skillRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Level string `json:"level" validate:"required"`
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	user, err := h.users.GetUser(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Failed to fetch user")
	}
	summary, err := h.ratings.RatingSummary(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Failed to fetch ratings")
	}
	return c.JSON(fiber.Map{
		"user":    user,
		"ratings": summary,
	})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	profile, err := h.users.GetUserProfile(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Failed to fetch profile")
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg := validateRequest(req); msg != "" {
		return badRequest(c, msg)
	}
	availability, msg := parseAvailability(req.Availability)
	if msg != "" {
		return badRequest(c, msg)
	}

	profile, err := h.users.UpdateUserProfile(c.Context(), userID, services.ProfileInput{
		LearningModes:     req.LearningModes,
		Availability:      availability,
		LearningGoals:     req.LearningGoals,
		LearningIntensity: req.LearningIntensity,
		TeachingStyles:    req.TeachingStyles,
		Motivation:        req.Motivation,
	})
	if err != nil {
		return mapServiceError(c, err, "Failed to update profile")
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (h *UserHandler) AddSkill(c *fiber.Ctx) error {
	userID, req, err := parseSkillRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	skill, err := h.users.AddSkill(c.Context(), userID, req.Name, req.Level)
	if err != nil {
		return mapServiceError(c, err, "Failed to add skill")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"skill": skill})
}

func (h *UserHandler) ListSkills(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	skills, err := h.users.ListSkills(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Failed to fetch skills")
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	return c.JSON(fiber.Map{"skills": skills})
}

func (h *UserHandler) AddInterest(c *fiber.Ctx) error {
	userID, req, err := parseSkillRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	interest, err := h.users.AddInterest(c.Context(), userID, req.Name, req.Level)
	if err != nil {
		return mapServiceError(c, err, "Failed to add learning interest")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"interest": interest})
}

func (h *UserHandler) ListInterests(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	interests, err := h.users.ListInterests(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Failed to fetch learning interests")
	}
	if interests == nil {
		interests = []models.Interest{}
	}
	return c.JSON(fiber.Map{"interests": interests})
}

// parseSkillRequest returns the user id and a validated body, or the message to reply with.
func parseSkillRequest(c *fiber.Ctx) (int64, skillRequest, error) {
	var req skillRequest
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return 0, req, errors.New("Invalid user id")
	}
	if err := c.BodyParser(&req); err != nil {
		return 0, req, errors.New("Invalid request body")
	}
	if msg := validateRequest(req); msg != "" {
		return 0, req, errors.New(msg)
	}
	return userID, req, nil
}
