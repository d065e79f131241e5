package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nikitalobanov12/dayflow-sub002/internal/middleware"
	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/schedule"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

type mockUseCase struct {
	planInput     schedule.PlanInput
	planScope     model.Scope
	planErr       error
	validateInput schedule.ValidateInput
	validateErr   error
}

func (m *mockUseCase) Plan(ctx context.Context, sc model.Scope, input schedule.PlanInput) (schedule.PlanOutput, error) {
	m.planScope = sc
	m.planInput = input
	if m.planErr != nil {
		return schedule.PlanOutput{}, m.planErr
	}
	t := input.Tasks[0]
	t.ScheduledDate = "2024-06-11T09:00:00"
	return schedule.PlanOutput{
		Tasks:      []model.Task{t},
		Placements: []schedule.Placement{{ID: t.ID, ScheduledDate: t.ScheduledDate, TimeEstimate: 30}},
		Relocated:  1,
	}, nil
}

func (m *mockUseCase) Validate(ctx context.Context, input schedule.ValidateInput) (schedule.ValidateOutput, error) {
	m.validateInput = input
	if m.validateErr != nil {
		return schedule.ValidateOutput{}, m.validateErr
	}
	return schedule.ValidateOutput{Placements: input.Placements}, nil
}

func setupRouter(uc schedule.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.UserIDHeader, "alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlanHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	body := `{
		"tasks": [{"id": 7, "title": "Report", "time_estimate": 30, "status": "today", "priority": 3}],
		"working_hours": {"monday": {"enabled": true, "start": "08:30", "end": "16:00"}},
		"timezone": "America/New_York"
	}`
	w := post(r, "/api/v1/schedule/plan", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	if uc.planScope.UserID != "alice" {
		t.Errorf("scope = %+v", uc.planScope)
	}
	monday := uc.planInput.WorkingHours.For(time.Monday)
	if !monday.Enabled || monday.Start.String() != "08:30" {
		t.Errorf("monday hours = %+v", monday)
	}
	if uc.planInput.WorkingHours.For(time.Tuesday).Enabled {
		t.Error("days missing from working_hours should be off")
	}
	if uc.planInput.Tasks[0].Priority != model.PriorityHigh {
		t.Errorf("priority = %v", uc.planInput.Tasks[0].Priority)
	}

	var resp struct {
		Data planResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.Tasks[0].ScheduledDate != "2024-06-11T09:00:00" || resp.Data.Relocated != 1 {
		t.Errorf("unexpected response %+v", resp.Data)
	}
	if resp.Data.Suggestions == nil {
		t.Error("suggestions should encode as an empty list")
	}
}

func TestPlanHandler_DefaultHours(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	w := post(r, "/api/v1/schedule/plan", `{"tasks": [{"id": 1}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if uc.planInput.WorkingHours != model.DefaultWorkingHours() {
		t.Errorf("expected default working hours")
	}
	if uc.planInput.Tasks[0].Status != model.TaskStatusBacklog {
		t.Errorf("status default = %s", uc.planInput.Tasks[0].Status)
	}
}

func TestPlanHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
	}{
		{name: "malformed json", body: `{`, wantCode: http.StatusBadRequest},
		{name: "no tasks", body: `{"tasks": []}`, wantCode: http.StatusBadRequest},
		{name: "bad status", body: `{"tasks": [{"id": 1, "status": "someday"}]}`, wantCode: http.StatusBadRequest},
		{name: "duplicate ids", body: `{"tasks": [{"id": 1}, {"id": 1}]}`, wantCode: http.StatusBadRequest},
		{name: "bad weekday", body: `{"tasks": [{"id": 1}], "working_hours": {"funday": {"enabled": true, "start": "09:00", "end": "10:00"}}}`, wantCode: http.StatusBadRequest},
		{name: "start after end", body: `{"tasks": [{"id": 1}], "working_hours": {"monday": {"enabled": true, "start": "18:00", "end": "10:00"}}}`, wantCode: http.StatusBadRequest},
		{name: "bad clock", body: `{"tasks": [{"id": 1}], "working_hours": {"monday": {"enabled": true, "start": "9am", "end": "10:00"}}}`, wantCode: http.StatusBadRequest},
		{name: "timezone", body: `{"tasks": [{"id": 1}]}`, ucErr: schedule.ErrInvalidTimezone, wantCode: http.StatusBadRequest},
		{name: "not configured", body: `{"tasks": [{"id": 1}]}`, ucErr: schedule.ErrPlannerUnavailable, wantCode: http.StatusServiceUnavailable},
		{name: "llm failure", body: `{"tasks": [{"id": 1}]}`, ucErr: fmt.Errorf("%w: boom", schedule.ErrProposalFailed), wantCode: http.StatusBadGateway},
		{name: "unexpected", body: `{"tasks": [{"id": 1}]}`, ucErr: fmt.Errorf("disk on fire"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&mockUseCase{planErr: tt.ucErr})
			w := post(r, "/api/v1/schedule/plan", tt.body)
			if w.Code != tt.wantCode {
				t.Errorf("status %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestPlanHandler_RequiresUser(t *testing.T) {
	r := setupRouter(&mockUseCase{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/plan", strings.NewReader(`{"tasks":[{"id":1}]}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", w.Code)
	}
}

func TestValidateHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	w := post(r, "/api/v1/schedule/validate", `{"placements": [{"id": 1, "scheduled_date": "2024-06-10T08:00:00", "time_estimate": 20}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if len(uc.validateInput.Placements) != 1 || uc.validateInput.Placements[0].TimeEstimate != 20 {
		t.Errorf("unexpected input %+v", uc.validateInput)
	}

	r = setupRouter(&mockUseCase{validateErr: fmt.Errorf("%w: task 1", schedule.ErrInvalidTimestamp)})
	if w := post(r, "/api/v1/schedule/validate", `{"placements": [{"id": 1, "scheduled_date": "x"}]}`); w.Code != http.StatusBadRequest {
		t.Errorf("invalid timestamp: status %d, want 400", w.Code)
	}
}
