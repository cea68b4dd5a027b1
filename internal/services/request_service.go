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
)

type requestStore interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetSkill(ctx context.Context, id int64) (*models.Skill, error)
	GetInterest(ctx context.Context, id int64) (*models.Interest, error)
	RequestStore
}

// TransitionPolicy decides whether a terminal status may be overwritten.
type TransitionPolicy struct {
	// Strict refuses any transition out of a terminal status. When false an
	// already-decided request or session can be moved to another allowed status.
	Strict bool
}

type RequestService struct {
	store  requestStore
	policy TransitionPolicy
}

func NewRequestService(store requestStore, policy TransitionPolicy) *RequestService {
	return &RequestService{store: store, policy: policy}
}

type CreateRequestInput struct {
	FromUserID       int64
	ToUserID         int64
	TeachSkillID     *int64
	LearnSkillID     *int64
	ProposedSchedule *time.Time
	Message          *string
}

func (s *RequestService) CreateRequest(ctx context.Context, input CreateRequestInput) (*models.SkillRequest, error) {
	if input.FromUserID == input.ToUserID {
		return nil, invalidArgument("cannot send a request to yourself")
	}

	for _, userID := range []int64{input.FromUserID, input.ToUserID} {
		if _, err := s.store.GetUser(ctx, userID); err != nil {
			return nil, storeError(err, "user", userID)
		}
	}
	if input.TeachSkillID != nil {
		if _, err := s.store.GetSkill(ctx, *input.TeachSkillID); err != nil {
			return nil, storeError(err, "skill", *input.TeachSkillID)
		}
	}
	if input.LearnSkillID != nil {
		if _, err := s.store.GetInterest(ctx, *input.LearnSkillID); err != nil {
			return nil, storeError(err, "learning interest", *input.LearnSkillID)
		}
	}

	request := &models.SkillRequest{
		FromUserID:       input.FromUserID,
		ToUserID:         input.ToUserID,
		TeachSkillID:     input.TeachSkillID,
		LearnSkillID:     input.LearnSkillID,
		Status:           models.RequestStatusPending,
		ProposedSchedule: input.ProposedSchedule,
		Message:          input.Message,
	}
	if err := s.store.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *RequestService) UpdateRequestStatus(
	ctx context.Context,
	requestID int64,
	requestedStatus string,
) (*models.SkillRequest, error) {
	nextStatus, err := normalizeRequestStatus(requestedStatus)
	if err != nil {
		return nil, err
	}

	request, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, storeError(err, "skill request", requestID)
	}
	if s.policy.Strict && !request.IsPending() {
		metrics.RejectedTransitions.WithLabelValues("skill_request").Inc()
		return nil, fmt.Errorf("%w: request is already %s", ErrInvalidStateTransition, request.Status)
	}

	updated, err := s.store.UpdateRequestStatusIfCurrent(ctx, requestID, request.Status, nextStatus)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Someone else moved the request between the read and the write.
			return nil, fmt.Errorf("%w: request changed concurrently", ErrInvalidStateTransition)
		}
		return nil, err
	}
	metrics.StatusTransitions.WithLabelValues("skill_request", nextStatus).Inc()
	return updated, nil
}

func (s *RequestService) ListRequestsForUser(ctx context.Context, userID int64) ([]models.SkillRequest, error) {
	return s.store.ListRequestsForUser(ctx, userID)
}

func normalizeRequestStatus(status string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "accept", "accepted":
		return models.RequestStatusAccepted, nil
	case "reject", "rejected":
		return models.RequestStatusRejected, nil
	case "cancel", "cancelled", "canceled":
		return models.RequestStatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
}
