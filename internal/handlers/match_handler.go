package handlers

import (
	"context"

	"github.com/MGaul6/SkillExchange/internal/models"
	"github.com/MGaul6/SkillExchange/internal/services"
	"github.com/gofiber/fiber/v2"
)

type matchSuggester interface {
	SuggestMatches(ctx context.Context, userID int64, limit int) ([]models.Match, error)
}

type MatchHandler struct {
	matchmaker matchSuggester
}

func NewMatchHandler(matchmaker *services.MatchmakingService) *MatchHandler {
	return &MatchHandler{matchmaker: matchmaker}
}

func (h *MatchHandler) SuggestMatches(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}
	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	matches, err := h.matchmaker.SuggestMatches(c.Context(), userID, limit)
	if err != nil {
		return mapServiceError(c, err, "Failed to fetch matches")
	}
	return c.JSON(fiber.Map{"matches": matches})
}
