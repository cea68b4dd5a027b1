package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MGaul6/SkillExchange/internal/models"
	"github.com/MGaul6/SkillExchange/internal/services"
	"github.com/gofiber/fiber/v2"
)

type stubRequestService struct {
	createResult    *models.SkillRequest
	createErr       error
	updateResult    *models.SkillRequest
	updateErr       error
	listResult      []models.SkillRequest
	lastCreateInput services.CreateRequestInput
	lastRequestID   int64
	lastStatus      string
	lastUserID      int64
	createCalled    bool
}

func (s *stubRequestService) CreateRequest(_ context.Context, input services.CreateRequestInput) (*models.SkillRequest, error) {
	s.createCalled = true
	s.lastCreateInput = input
	return s.createResult, s.createErr
}

func (s *stubRequestService) UpdateRequestStatus(_ context.Context, requestID int64, requestedStatus string) (*models.SkillRequest, error) {
	s.lastRequestID = requestID
	s.lastStatus = requestedStatus
	return s.updateResult, s.updateErr
}

func (s *stubRequestService) ListRequestsForUser(_ context.Context, userID int64) ([]models.SkillRequest, error) {
	s.lastUserID = userID
	return s.listResult, nil
}

func newRequestTestApp(service *stubRequestService) *fiber.App {
	handler := &RequestHandler{service: service}
	app := fiber.New()
	app.Post("/api/skill-requests", handler.CreateRequest)
	app.Put("/api/skill-requests/:id/status", handler.UpdateStatus)
	app.Get("/api/users/:id/skill-requests", handler.ListForUser)
	return app
}

func TestCreateSkillRequestParsesProposedSchedule(t *testing.T) {
	service := &stubRequestService{createResult: &models.SkillRequest{ID: 4, Status: models.RequestStatusPending}}
	app := newRequestTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/skill-requests", strings.NewReader(`{
		"from_user_id": 1,
		"to_user_id": 2,
		"teach_skill_id": 10,
		"learn_skill_id": 20,
		"proposed_schedule": "2026-04-01T18:00:00Z",
		"message": "Trade Go for guitar?"
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
	input := service.lastCreateInput
	if input.ProposedSchedule == nil || input.ProposedSchedule.Hour() != 18 {
		t.Fatalf("expected proposed schedule at 18:00, got %v", input.ProposedSchedule)
	}
	if input.TeachSkillID == nil || *input.TeachSkillID != 10 {
		t.Fatalf("expected teach skill 10, got %v", input.TeachSkillID)
	}
}

func TestCreateSkillRequestRejectsBadSchedule(t *testing.T) {
	service := &stubRequestService{}
	app := newRequestTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/skill-requests", strings.NewReader(`{
		"from_user_id": 1,
		"to_user_id": 2,
		"proposed_schedule": "next tuesday"
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
	if service.createCalled {
		t.Fatal("service should not be called")
	}
}

func TestCreateSkillRequestMapsSelfRequest(t *testing.T) {
	service := &stubRequestService{createErr: fmt.Errorf("%w: cannot send a request to yourself", services.ErrInvalidArgument)}
	app := newRequestTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/skill-requests", strings.NewReader(`{"from_user_id": 1, "to_user_id": 1}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateSkillRequestStatusMapsErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown status", fmt.Errorf("%w: \"maybe\"", services.ErrInvalidStatus), http.StatusBadRequest},
		{"already decided", fmt.Errorf("%w: request is already accepted", services.ErrInvalidStateTransition), http.StatusUnprocessableEntity},
		{"missing request", fmt.Errorf("%w: skill request 8", services.ErrNotFound), http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := &stubRequestService{updateErr: tc.err}
			app := newRequestTestApp(service)

			req := httptest.NewRequest(http.MethodPut, "/api/skill-requests/8/status", strings.NewReader(`{"status":"maybe"}`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
			if service.lastRequestID != 8 {
				t.Fatalf("expected request 8, got %d", service.lastRequestID)
			}
		})
	}
}

func TestUpdateSkillRequestStatusRequiresStatus(t *testing.T) {
	service := &stubRequestService{}
	app := newRequestTestApp(service)

	req := httptest.NewRequest(http.MethodPut, "/api/skill-requests/8/status", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if service.lastRequestID != 0 {
		t.Fatal("service should not be called without a status")
	}
}

func TestListSkillRequestsForUser(t *testing.T) {
	service := &stubRequestService{listResult: []models.SkillRequest{{ID: 1}, {ID: 2}}}
	app := newRequestTestApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/5/skill-requests", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastUserID != 5 {
		t.Fatalf("expected user 5, got %d", service.lastUserID)
	}

	var body struct {
		Requests []models.SkillRequest `json:"requests"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Requests) != 2 {
		t.Fatalf("expected 2 requests under \"requests\", got %+v", body)
	}
}
