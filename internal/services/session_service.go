package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MGaul6/SkillExchange/internal/metrics"
	"github.com/MGaul6/SkillExchange/internal/models"
	"github.com/MGaul6/SkillExchange/internal/repository"
	"github.com/google/uuid"
)

const defaultMeetingHost = "https://meet.skillexchange.local"

type sessionStore interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetRequest(ctx context.Context, id int64) (*models.SkillRequest, error)
	SessionStore
}

type SessionService struct {
	store       sessionStore
	policy      TransitionPolicy
	meetingHost string
}

func NewSessionService(store sessionStore, policy TransitionPolicy) *SessionService {
	return &SessionService{
		store:       store,
		policy:      policy,
		meetingHost: defaultMeetingHost,
	}
}

type ScheduleSessionInput struct {
	RequestID   *int64
	TeacherID   int64
	LearnerID   int64
	Start       time.Time
	End         time.Time
	MeetingLink *string
	Notes       *string
}

func (s *SessionService) ScheduleSession(
	ctx context.Context,
	input ScheduleSessionInput,
) (*models.LearningSession, error) {
	if input.TeacherID == input.LearnerID {
		return nil, invalidArgument("teacher and learner must be different users")
	}
	if !input.End.After(input.Start) {
		return nil, invalidArgument("session must end after it starts")
	}

	for _, userID := range []int64{input.TeacherID, input.LearnerID} {
		if _, err := s.store.GetUser(ctx, userID); err != nil {
			return nil, storeError(err, "user", userID)
		}
	}

	if input.RequestID != nil {
		request, err := s.store.GetRequest(ctx, *input.RequestID)
		if err != nil {
			return nil, storeError(err, "skill request", *input.RequestID)
		}
		if !request.IsAccepted() {
			return nil, invalidArgument("request %d is %s, not accepted", request.ID, request.Status)
		}
		if !request.Involves(input.TeacherID) || !request.Involves(input.LearnerID) {
			return nil, invalidArgument("teacher and learner must be the parties of request %d", request.ID)
		}
	}

	meetingLink := input.MeetingLink
	if meetingLink == nil || strings.TrimSpace(*meetingLink) == "" {
		generated := s.meetingHost + "/" + uuid.NewString()
		meetingLink = &generated
	}

	session := &models.LearningSession{
		RequestID:      input.RequestID,
		TeacherID:      input.TeacherID,
		LearnerID:      input.LearnerID,
		ScheduledStart: input.Start.UTC(),
		ScheduledEnd:   input.End.UTC(),
		Status:         models.SessionStatusScheduled,
		MeetingLink:    meetingLink,
		Notes:          input.Notes,
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) UpdateSessionStatus(
	ctx context.Context,
	sessionID int64,
	requestedStatus string,
) (*models.LearningSession, error) {
	nextStatus, err := normalizeSessionStatus(requestedStatus)
	if err != nil {
		return nil, err
	}

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, storeError(err, "session", sessionID)
	}
	if s.policy.Strict && session.Status != models.SessionStatusScheduled {
		metrics.RejectedTransitions.WithLabelValues("learning_session").Inc()
		return nil, fmt.Errorf("%w: session is already %s", ErrInvalidStateTransition, session.Status)
	}

	updated, err := s.store.UpdateSessionStatusIfCurrent(ctx, sessionID, session.Status, nextStatus)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: session changed concurrently", ErrInvalidStateTransition)
		}
		return nil, err
	}
	metrics.StatusTransitions.WithLabelValues("learning_session", nextStatus).Inc()
	return updated, nil
}

func (s *SessionService) GetSession(ctx context.Context, sessionID int64) (*models.LearningSession, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, storeError(err, "session", sessionID)
	}
	return session, nil
}

func (s *SessionService) ListSessionsForUser(ctx context.Context, userID int64) ([]models.LearningSession, error) {
	return s.store.ListSessionsForUser(ctx, userID)
}

func normalizeSessionStatus(status string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "complete", "completed":
		return models.SessionStatusCompleted, nil
	case "cancel", "cancelled", "canceled":
		return models.SessionStatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
}
