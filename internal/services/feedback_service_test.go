package services

import (
	"context"
	"errors"
	"testing"
)

type feedbackFixture struct {
	sessions *SessionService
	feedback *FeedbackService
	teacher  int64
	learner  int64
	outsider int64
	session  int64
}

func newFeedbackFixture(t *testing.T, complete bool) feedbackFixture {
	t.Helper()
	store := newTestStore()
	alice := mustCreateUser(t, store, "alice")
	bob := mustCreateUser(t, store, "bob")
	carol := mustCreateUser(t, store, "carol")

	sessions := NewSessionService(store, strictPolicy())
	session := scheduledSession(t, sessions, alice.ID, bob.ID)
	if complete {
		if _, err := sessions.UpdateSessionStatus(context.Background(), session.ID, "completed"); err != nil {
			t.Fatalf("complete session: %v", err)
		}
	}
	return feedbackFixture{
		sessions: sessions,
		feedback: NewFeedbackService(store),
		teacher:  alice.ID,
		learner:  bob.ID,
		outsider: carol.ID,
		session:  session.ID,
	}
}

func TestRecordFeedbackForCompletedSession(t *testing.T) {
	ctx := context.Background()
	f := newFeedbackFixture(t, true)

	comment := "Clear explanations"
	saved, err := f.feedback.RecordFeedback(ctx, RecordFeedbackInput{
		SessionID:  f.session,
		FromUserID: f.learner,
		ToUserID:   f.teacher,
		Rating:     5,
		Comment:    &comment,
	})
	if err != nil {
		t.Fatalf("RecordFeedback: %v", err)
	}
	if saved.ID == 0 || saved.Rating != 5 {
		t.Fatalf("unexpected feedback %+v", saved)
	}

	if _, err := f.feedback.RecordFeedback(ctx, RecordFeedbackInput{
		SessionID: f.session, FromUserID: f.teacher, ToUserID: f.learner, Rating: 3,
	}); err != nil {
		t.Fatalf("teacher feedback: %v", err)
	}

	received, err := f.feedback.ListFeedbackReceivedBy(ctx, f.teacher)
	if err != nil {
		t.Fatalf("ListFeedbackReceivedBy: %v", err)
	}
	if len(received) != 1 || received[0].FromUserID != f.learner {
		t.Fatalf("expected one entry from the learner, got %+v", received)
	}
}

func TestRecordFeedbackRejectsDuplicateRater(t *testing.T) {
	ctx := context.Background()
	f := newFeedbackFixture(t, true)
	input := RecordFeedbackInput{SessionID: f.session, FromUserID: f.learner, ToUserID: f.teacher, Rating: 4}

	if _, err := f.feedback.RecordFeedback(ctx, input); err != nil {
		t.Fatalf("first RecordFeedback: %v", err)
	}
	input.Rating = 1
	if _, err := f.feedback.RecordFeedback(ctx, input); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	summary, err := f.feedback.RatingSummary(ctx, f.teacher)
	if err != nil {
		t.Fatalf("RatingSummary: %v", err)
	}
	if summary.Count != 1 || summary.Average != 4 {
		t.Fatalf("expected the first rating to stand, got %+v", summary)
	}
}

func TestRecordFeedbackValidation(t *testing.T) {
	completed := newFeedbackFixture(t, true)
	scheduled := newFeedbackFixture(t, false)

	cases := []struct {
		name    string
		service *FeedbackService
		input   RecordFeedbackInput
		want    error
	}{
		{"rating too high", completed.feedback, RecordFeedbackInput{SessionID: completed.session, FromUserID: completed.learner, ToUserID: completed.teacher, Rating: 6}, ErrInvalidArgument},
		{"rating zero", completed.feedback, RecordFeedbackInput{SessionID: completed.session, FromUserID: completed.learner, ToUserID: completed.teacher, Rating: 0}, ErrInvalidArgument},
		{"self rating", completed.feedback, RecordFeedbackInput{SessionID: completed.session, FromUserID: completed.learner, ToUserID: completed.learner, Rating: 5}, ErrInvalidArgument},
		{"outsider", completed.feedback, RecordFeedbackInput{SessionID: completed.session, FromUserID: completed.outsider, ToUserID: completed.teacher, Rating: 5}, ErrInvalidArgument},
		{"unknown session", completed.feedback, RecordFeedbackInput{SessionID: 999, FromUserID: completed.learner, ToUserID: completed.teacher, Rating: 5}, ErrNotFound},
		{"session not completed", scheduled.feedback, RecordFeedbackInput{SessionID: scheduled.session, FromUserID: scheduled.learner, ToUserID: scheduled.teacher, Rating: 5}, ErrInvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.service.RecordFeedback(context.Background(), tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRatingSummaryRoundsAverage(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	teacher := mustCreateUser(t, store, "teacher")
	sessions := NewSessionService(store, strictPolicy())
	feedback := NewFeedbackService(store)

	for i, rating := range []int{5, 4, 4} {
		learner := mustCreateUser(t, store, "learner"+string(rune('a'+i)))
		session := scheduledSession(t, sessions, teacher.ID, learner.ID)
		if _, err := sessions.UpdateSessionStatus(ctx, session.ID, "completed"); err != nil {
			t.Fatalf("complete session: %v", err)
		}
		if _, err := feedback.RecordFeedback(ctx, RecordFeedbackInput{
			SessionID: session.ID, FromUserID: learner.ID, ToUserID: teacher.ID, Rating: rating,
		}); err != nil {
			t.Fatalf("RecordFeedback: %v", err)
		}
	}

	summary, err := feedback.RatingSummary(ctx, teacher.ID)
	if err != nil {
		t.Fatalf("RatingSummary: %v", err)
	}
	if summary.Count != 3 || summary.Average != 4.33 {
		t.Fatalf("expected 3 ratings averaging 4.33, got %+v", summary)
	}

	empty, err := feedback.RatingSummary(ctx, 999)
	if err != nil {
		t.Fatalf("RatingSummary: %v", err)
	}
	if empty.Count != 0 || empty.Average != 0 {
		t.Fatalf("expected an empty summary, got %+v", empty)
	}
}
