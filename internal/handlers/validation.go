package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/MGaul6/SkillExchange/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest returns the first violation as a client-facing message, or "".
func validateRequest(req any) string {
	err := validate.Struct(req)
	if err == nil {
		return ""
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "Invalid request body"
	}
	return describeFieldError(fieldErrors[0])
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "url":
		return fe.Field() + " must be a valid URL"
	default:
		return fe.Field() + " is invalid"
	}
}

// parseAvailability enforces the 3x7 timeslot-by-weekday shape.
func parseAvailability(grid [][]bool) (models.Availability, string) {
	var availability models.Availability
	if grid == nil {
		return availability, ""
	}
	if len(grid) != models.AvailabilityTimeslots {
		return availability, "availability must have 3 timeslot rows"
	}
	for i, row := range grid {
		if len(row) != models.AvailabilityWeekdays {
			return availability, "availability rows must have 7 weekday entries"
		}
		copy(availability[i][:], row)
	}
	return availability, ""
}

func parseTimestamp(field, raw string) (time.Time, string) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, field + " must be a valid RFC3339 timestamp"
	}
	return parsed, ""
}

func parseOptionalTimestamp(field string, raw *string) (*time.Time, string) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, ""
	}
	parsed, msg := parseTimestamp(field, *raw)
	if msg != "" {
		return nil, msg
	}
	return &parsed, ""
}
