package handlers

import (
	"context"

	"github.com/MGaul6/SkillExchange/internal/models"
	"github.com/MGaul6/SkillExchange/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RequestHandler struct {
	service requestApplicationService
}

type requestApplicationService interface {
	CreateRequest(ctx context.Context, input services.CreateRequestInput) (*models.SkillRequest, error)
	UpdateRequestStatus(ctx context.Context, requestID int64, requestedStatus string) (*models.SkillRequest, error)
	ListRequestsForUser(ctx context.Context, userID int64) ([]models.SkillRequest, error)
}

func NewRequestHandler(service *services.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

type createSkillRequestRequest struct {
	FromUserID       int64   `json:"from_user_id" validate:"required,gt=0"`
	ToUserID         int64   `json:"to_user_id" validate:"required,gt=0"`
	TeachSkillID     *int64  `json:"teach_skill_id" validate:"omitempty,gt=0"`
	LearnSkillID     *int64  `json:"learn_skill_id" validate:"omitempty,gt=0"`
	ProposedSchedule *string `json:"proposed_schedule"`
	Message          *string `json:"message" validate:"omitempty,max=2000"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	var req createSkillRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg := validateRequest(req); msg != "" {
		return badRequest(c, msg)
	}
	proposed, msg := parseOptionalTimestamp("proposed_schedule", req.ProposedSchedule)
	if msg != "" {
		return badRequest(c, msg)
	}

	request, err := h.service.CreateRequest(c.Context(), services.CreateRequestInput{
		FromUserID:       req.FromUserID,
		ToUserID:         req.ToUserID,
		TeachSkillID:     req.TeachSkillID,
		LearnSkillID:     req.LearnSkillID,
		ProposedSchedule: proposed,
		Message:          req.Message,
	})
	if err != nil {
		return mapServiceError(c, err, "Failed to create skill request")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"request": request})
}

func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid skill request id")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg := validateRequest(req); msg != "" {
		return badRequest(c, msg)
	}

	request, err := h.service.UpdateRequestStatus(c.Context(), requestID, req.Status)
	if err != nil {
		return mapServiceError(c, err, "Failed to update skill request")
	}
	return c.JSON(fiber.Map{"request": request})
}

func (h *RequestHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	requests, err := h.service.ListRequestsForUser(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Failed to fetch skill requests")
	}
	if requests == nil {
		requests = []models.SkillRequest{}
	}
	return c.JSON(fiber.Map{"requests": requests})
}
