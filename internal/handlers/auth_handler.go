package handlers

import (
	"context"
	"strconv"

	"github.com/MGaul6/SkillExchange/internal/models"
	"github.com/MGaul6/SkillExchange/internal/services"
	"github.com/MGaul6/SkillExchange/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	users     accountService
	jwtSecret string
}

type accountService interface {
	Register(ctx context.Context, input services.RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

func NewAuthHandler(users *services.UserService, jwtSecret string) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret}
}

type registerRequest struct {
	Username       string  `json:"username" validate:"required,max=64"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=8"`
	FirstName      *string `json:"first_name" validate:"omitempty,max=100"`
	LastName       *string `json:"last_name" validate:"omitempty,max=100"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,url"`
	Location       *string `json:"location" validate:"omitempty,max=200"`
	Timezone       *string `json:"timezone" validate:"omitempty,max=64"`
	Bio            *string `json:"bio" validate:"omitempty,max=2000"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg := validateRequest(req); msg != "" {
		return badRequest(c, msg)
	}

	user, err := h.users.Register(c.Context(), services.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicture: req.ProfilePicture,
		Location:       req.Location,
		Timezone:       req.Timezone,
		Bio:            req.Bio,
	})
	if err != nil {
		return mapServiceError(c, err, "Failed to create user")
	}
	return h.respondWithToken(c, fiber.StatusCreated, user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg := validateRequest(req); msg != "" {
		return badRequest(c, msg)
	}

	user, err := h.users.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return mapServiceError(c, err, "Failed to lookup user")
	}
	return h.respondWithToken(c, fiber.StatusOK, user)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := parseTokenUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, err := h.users.GetUser(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Failed to fetch user")
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *AuthHandler) respondWithToken(c *fiber.Ctx, status int, user *models.User) error {
	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}
	return c.Status(status).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
