package handlers

import (
	"context"

	"github.com/MGaul6/SkillExchange/internal/models"
	"github.com/MGaul6/SkillExchange/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	service sessionApplicationService
}

type sessionApplicationService interface {
	ScheduleSession(ctx context.Context, input services.ScheduleSessionInput) (*models.LearningSession, error)
	UpdateSessionStatus(ctx context.Context, sessionID int64, requestedStatus string) (*models.LearningSession, error)
	GetSession(ctx context.Context, sessionID int64) (*models.LearningSession, error)
	ListSessionsForUser(ctx context.Context, userID int64) ([]models.LearningSession, error)
}

func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

type scheduleSessionRequest struct {
	RequestID      *int64  `json:"request_id" validate:"omitempty,gt=0"`
	TeacherID      int64   `json:"teacher_id" validate:"required,gt=0"`
	LearnerID      int64   `json:"learner_id" validate:"required,gt=0"`
	ScheduledStart string  `json:"scheduled_start" validate:"required"`
	ScheduledEnd   string  `json:"scheduled_end" validate:"required"`
	MeetingLink    *string `json:"meeting_link" validate:"omitempty,url"`
	Notes          *string `json:"notes" validate:"omitempty,max=2000"`
}

func (h *SessionHandler) ScheduleSession(c *fiber.Ctx) error {
	var req scheduleSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg := validateRequest(req); msg != "" {
		return badRequest(c, msg)
	}
	start, msg := parseTimestamp("scheduled_start", req.ScheduledStart)
	if msg != "" {
		return badRequest(c, msg)
	}
	end, msg := parseTimestamp("scheduled_end", req.ScheduledEnd)
	if msg != "" {
		return badRequest(c, msg)
	}

	session, err := h.service.ScheduleSession(c.Context(), services.ScheduleSessionInput{
		RequestID:   req.RequestID,
		TeacherID:   req.TeacherID,
		LearnerID:   req.LearnerID,
		Start:       start,
		End:         end,
		MeetingLink: req.MeetingLink,
		Notes:       req.Notes,
	})
	if err != nil {
		return mapServiceError(c, err, "Failed to schedule session")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session": session})
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid session id")
	}

	session, err := h.service.GetSession(c.Context(), sessionID)
	if err != nil {
		return mapServiceError(c, err, "Failed to fetch session")
	}
	return c.JSON(fiber.Map{"session": session})
}

func (h *SessionHandler) UpdateStatus(c *fiber.Ctx) error {
	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid session id")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if msg := validateRequest(req); msg != "" {
		return badRequest(c, msg)
	}

	session, err := h.service.UpdateSessionStatus(c.Context(), sessionID, req.Status)
	if err != nil {
		return mapServiceError(c, err, "Failed to update session status")
	}
	return c.JSON(fiber.Map{"session": session})
}

func (h *SessionHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	sessions, err := h.service.ListSessionsForUser(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "Failed to fetch sessions")
	}
	if sessions == nil {
		sessions = []models.LearningSession{}
	}
	return c.JSON(fiber.Map{"sessions": sessions})
}
