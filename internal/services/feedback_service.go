package services

import (
	"context"
	"math"

	"github.com/MGaul6/SkillExchange/internal/metrics"
	"github.com/MGaul6/SkillExchange/internal/models"
)

const (
	minRating = 1
	maxRating = 5
)

type feedbackStore interface {
	GetSession(ctx context.Context, id int64) (*models.LearningSession, error)
	FeedbackStore
}

type FeedbackService struct {
	store feedbackStore
}

func NewFeedbackService(store feedbackStore) *FeedbackService {
	return &FeedbackService{store: store}
}

type RecordFeedbackInput struct {
	SessionID  int64
	FromUserID int64
	ToUserID   int64
	Rating     int
	Comment    *string
}

// RecordFeedback stores one rating per rater per completed session.
func (s *FeedbackService) RecordFeedback(
	ctx context.Context,
	input RecordFeedbackInput,
) (*models.SessionFeedback, error) {
	if input.Rating < minRating || input.Rating > maxRating {
		return nil, invalidArgument("rating must be between %d and %d", minRating, maxRating)
	}
	if input.FromUserID == input.ToUserID {
		return nil, invalidArgument("cannot rate yourself")
	}

	session, err := s.store.GetSession(ctx, input.SessionID)
	if err != nil {
		return nil, storeError(err, "session", input.SessionID)
	}
	if !session.IsParticipant(input.FromUserID) || !session.IsParticipant(input.ToUserID) {
		return nil, invalidArgument("feedback must be exchanged between the session's teacher and learner")
	}
	if session.Status != models.SessionStatusCompleted {
		return nil, invalidArgument("session %d is %s, not completed", session.ID, session.Status)
	}

	feedback := &models.SessionFeedback{
		SessionID:  input.SessionID,
		FromUserID: input.FromUserID,
		ToUserID:   input.ToUserID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := s.store.CreateFeedback(ctx, feedback); err != nil {
		return nil, storeError(err, "feedback", input.SessionID)
	}
	metrics.FeedbackRecorded.Inc()
	return feedback, nil
}

func (s *FeedbackService) ListFeedbackReceivedBy(ctx context.Context, userID int64) ([]models.SessionFeedback, error) {
	return s.store.ListFeedbackReceivedBy(ctx, userID)
}

// RatingSummary averages every rating the user received, rounded to two decimals.
func (s *FeedbackService) RatingSummary(ctx context.Context, userID int64) (models.RatingSummary, error) {
	feedback, err := s.store.ListFeedbackReceivedBy(ctx, userID)
	if err != nil {
		return models.RatingSummary{}, err
	}
	if len(feedback) == 0 {
		return models.RatingSummary{}, nil
	}

	total := 0
	for _, item := range feedback {
		total += item.Rating
	}
	average := float64(total) / float64(len(feedback))
	return models.RatingSummary{
		Count:   len(feedback),
		Average: math.Round(average*100) / 100,
	}, nil
}
