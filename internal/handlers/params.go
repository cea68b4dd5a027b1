package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const maxMatchLimit = 50

var errInvalidID = errors.New("invalid id")

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// parseTokenUserID reads the user id stored by middleware.AuthRequired.
func parseTokenUserID(c *fiber.Ctx) (int64, error) {
	userIDValue := c.Locals("user_id")
	userIDStr, ok := userIDValue.(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(userIDStr, 10, 64)
}

// parseLimit returns 0 (no limit) when raw is empty.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, errors.New("limit must be a positive integer")
	}
	if value > maxMatchLimit {
		value = maxMatchLimit
	}
	return value, nil
}
