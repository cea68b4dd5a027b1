package handlers

import (
	"context"

	"github.com/MGaul6/SkillExchange/internal/models"
	"github.com/MGaul6/SkillExchange/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FeedbackHandler struct {
	service feedbackApplicationService
}

type feedbackApplicationService interface {
	RecordFeedback(ctx context.Context, input services.RecordFeedbackInput) (*models.SessionFeedback, error)
	ListFeedbackReceivedBy(ctx context.Context, userID int64) ([]models.SessionFeedback, error)
	RatingSummary(ctx context.Context, userID int64) (models.RatingSummary, error)
}

func NewFeedbackHandler(service *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Rating is range-checked by the service so out-of-range values share one message.
type recordFeedbackRequest struct {
	SessionID  int64   `json:"session_id" validate:"required,gt=0"`
	FromUserID int64   `json:"from_user_id" validate:"required,gt=0"`
	ToUserID   int64   `json:"to_user_id" validate:"required,gt=0"`
	Rating     int     `json:"rating"`
	Comment    *string `json:"comment" validate:"omitempty,max=2000"`
}

func (h *FeedbackHandler) RecordFeedback(c *fiber.Ctx) error {
	var req recordFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg := validateRequest(req); msg != "" {
		return badRequest(c, msg)
	}

	feedback, err := h.service.RecordFeedback(c.Context(), services.RecordFeedbackInput{
		SessionID:  req.SessionID,
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return mapServiceError(c, err, "Failed to record feedback")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"feedback": feedback})
}

func (h *FeedbackHandler) ListReceived(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	feedback, err := h.service.ListFeedbackReceivedBy(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Failed to fetch feedback")
	}
	summary, err := h.service.RatingSummary(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Failed to fetch feedback")
	}
	if feedback == nil {
		feedback = []models.SessionFeedback{}
	}
	return c.JSON(fiber.Map{
		"feedback": feedback,
		"ratings":  summary,
	})
}
