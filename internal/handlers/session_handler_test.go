package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MGaul6/SkillExchange/internal/models"
	"github.com/MGaul6/SkillExchange/internal/services"
	"github.com/gofiber/fiber/v2"
)

type stubSessionService struct {
	scheduleResult     *models.LearningSession
	scheduleErr        error
	updateStatusResult *models.LearningSession
	updateStatusErr    error
	getResult          *models.LearningSession
	getErr             error
	listResult         []models.LearningSession
	listErr            error
	lastScheduleInput  services.ScheduleSessionInput
	lastSessionID      int64
	lastUserID         int64
	lastStatus         string
}

func (s *stubSessionService) ScheduleSession(_ context.Context, input services.ScheduleSessionInput) (*models.LearningSession, error) {
	s.lastScheduleInput = input
	return s.scheduleResult, s.scheduleErr
}

func (s *stubSessionService) UpdateSessionStatus(_ context.Context, sessionID int64, requestedStatus string) (*models.LearningSession, error) {
	s.lastSessionID = sessionID
	s.lastStatus = requestedStatus
	return s.updateStatusResult, s.updateStatusErr
}

func (s *stubSessionService) GetSession(_ context.Context, sessionID int64) (*models.LearningSession, error) {
	s.lastSessionID = sessionID
	return s.getResult, s.getErr
}

func (s *stubSessionService) ListSessionsForUser(_ context.Context, userID int64) ([]models.LearningSession, error) {
	s.lastUserID = userID
	return s.listResult, s.listErr
}

func newSessionTestApp(service *stubSessionService) *fiber.App {
	handler := &SessionHandler{service: service}
	app := fiber.New()
	app.Post("/api/learning-sessions", handler.ScheduleSession)
	app.Get("/api/learning-sessions/:id", handler.GetSession)
	app.Put("/api/learning-sessions/:id/status", handler.UpdateStatus)
	app.Get("/api/users/:id/learning-sessions", handler.ListForUser)
	return app
}

func TestScheduleSessionReturnsCreatedSession(t *testing.T) {
	service := &stubSessionService{
		scheduleResult: &models.LearningSession{ID: 91, TeacherID: 1, LearnerID: 2, Status: models.SessionStatusScheduled},
	}
	app := newSessionTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/learning-sessions", strings.NewReader(`{
		"request_id": 5,
		"teacher_id": 1,
		"learner_id": 2,
		"scheduled_start": "2026-03-15T09:00:00Z",
		"scheduled_end": "2026-03-15T10:00:00Z",
		"notes": "bring questions"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	input := service.lastScheduleInput
	if input.RequestID == nil || *input.RequestID != 5 {
		t.Fatalf("expected request id 5, got %v", input.RequestID)
	}
	if input.TeacherID != 1 || input.LearnerID != 2 {
		t.Fatalf("unexpected participants: %+v", input)
	}
	if input.End.Sub(input.Start) != time.Hour {
		t.Fatalf("expected a one hour session, got %s", input.End.Sub(input.Start))
	}

	var body struct {
		Session models.LearningSession `json:"session"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Session.ID != 91 {
		t.Fatalf("expected session 91, got %d", body.Session.ID)
	}
}

func TestScheduleSessionRejectsBadTimestamp(t *testing.T) {
	service := &stubSessionService{}
	app := newSessionTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/learning-sessions", strings.NewReader(`{
		"teacher_id": 1,
		"learner_id": 2,
		"scheduled_start": "tomorrow",
		"scheduled_end": "2026-03-15T10:00:00Z"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if service.lastScheduleInput.TeacherID != 0 {
		t.Fatal("service should not be called for an invalid timestamp")
	}
}

func TestScheduleSessionRequiresParticipants(t *testing.T) {
	app := newSessionTestApp(&stubSessionService{})

	req := httptest.NewRequest(http.MethodPost, "/api/learning-sessions", strings.NewReader(`{
		"learner_id": 2,
		"scheduled_start": "2026-03-15T09:00:00Z",
		"scheduled_end": "2026-03-15T10:00:00Z"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] != "teacher_id is required" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestScheduleSessionMapsServiceErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid argument", fmt.Errorf("%w: session must end after it starts", services.ErrInvalidArgument), http.StatusBadRequest},
		{"missing user", fmt.Errorf("%w: user 9", services.ErrNotFound), http.StatusNotFound},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newSessionTestApp(&stubSessionService{scheduleErr: tc.err})

			req := httptest.NewRequest(http.MethodPost, "/api/learning-sessions", strings.NewReader(`{
				"teacher_id": 1,
				"learner_id": 2,
				"scheduled_start": "2026-03-15T09:00:00Z",
				"scheduled_end": "2026-03-15T10:00:00Z"
			}`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
		})
	}
}

func TestUpdateSessionStatusReturnsUnprocessableForTerminalSession(t *testing.T) {
	service := &stubSessionService{
		updateStatusErr: fmt.Errorf("%w: session is already completed", services.ErrInvalidStateTransition),
	}
	app := newSessionTestApp(service)

	req := httptest.NewRequest(http.MethodPut, "/api/learning-sessions/12/status", strings.NewReader(`{"status":"cancelled"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	if service.lastSessionID != 12 || service.lastStatus != "cancelled" {
		t.Fatalf("unexpected call: id=%d status=%q", service.lastSessionID, service.lastStatus)
	}
}

func TestGetSessionReturnsNotFound(t *testing.T) {
	service := &stubSessionService{getErr: fmt.Errorf("%w: session 999", services.ErrNotFound)}
	app := newSessionTestApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/learning-sessions/999", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestListSessionsForUserReturnsEmptyArray(t *testing.T) {
	service := &stubSessionService{}
	app := newSessionTestApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/4/learning-sessions", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastUserID != 4 {
		t.Fatalf("expected user 4, got %d", service.lastUserID)
	}
	var body map[string][]models.LearningSession
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if sessions, ok := body["sessions"]; !ok || sessions == nil || len(sessions) != 0 {
		t.Fatalf("expected an empty sessions array, got %#v", body)
	}
}

func TestListSessionsRejectsNonNumericUserID(t *testing.T) {
	app := newSessionTestApp(&stubSessionService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/abc/learning-sessions", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
