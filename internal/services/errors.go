package services

import (
	"errors"
	"fmt"

	"github.com/MGaul6/SkillExchange/internal/repository"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrConflict               = errors.New("conflict")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// storeError maps store sentinels onto service errors, keeping what was missing.
func storeError(err error, what string, id int64) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %s %d", ErrNotFound, what, id)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: %s already exists", ErrConflict, what)
	default:
		return err
	}
}
