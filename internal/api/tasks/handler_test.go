package tasks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomgiova97/freelance-dashboard/internal/models"
	"github.com/tomgiova97/freelance-dashboard/internal/storage"
	"github.com/tomgiova97/freelance-dashboard/internal/timerange"
)

// Mock repositories
type mockTaskRepository struct {
	tasks       []*models.Task
	lastRange   *timerange.Range
	createError error
	listError   error
}

func (m *mockTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if m.createError != nil {
		return m.createError
	}
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *mockTaskRepository) List(ctx context.Context, rng *timerange.Range) ([]*models.Task, error) {
	m.lastRange = rng
	if m.listError != nil {
		return nil, m.listError
	}
	if rng == nil {
		return m.tasks, nil
	}
	var out []*models.Task
	for _, task := range m.tasks {
		if task.EndDate == nil {
			continue
		}
		if rng.Overlaps(task.StartDate, *task.EndDate) {
			out = append(out, task)
		}
	}
	return out, nil
}

func (m *mockTaskRepository) ListByProject(ctx context.Context, projectID string) ([]*models.Task, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var out []*models.Task
	for _, task := range m.tasks {
		if task.ProjectID == projectID {
			out = append(out, task)
		}
	}
	return out, nil
}

type mockStorage struct {
	taskRepo *mockTaskRepository
}

func (m *mockStorage) Open() error                         { return nil }
func (m *mockStorage) Close() error                        { return nil }
func (m *mockStorage) Migrate() error                      { return nil }
func (m *mockStorage) Projects() storage.ProjectRepository { return nil }
func (m *mockStorage) Tasks() storage.TaskRepository       { return m.taskRepo }
func (m *mockStorage) Payments() storage.PaymentRepository { return nil }

func newMockStorage() (*mockStorage, *mockTaskRepository) {
	taskRepo := &mockTaskRepository{}
	return &mockStorage{taskRepo: taskRepo}, taskRepo
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreate_Defaults(t *testing.T) {
	mockStore, mockRepo := newMockStorage()
	handler := NewHandler(mockStore)

	before := time.Now()
	body := `{"projectId": "proj-1", "description": "Wireframes"}`
	req := httptest.NewRequest("POST", "/api/tasks", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)
	after := time.Now()

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if len(mockRepo.tasks) != 1 {
		t.Fatalf("stored tasks = %d, want 1", len(mockRepo.tasks))
	}

	task := mockRepo.tasks[0]
	if task.StartDate.Before(before) || task.StartDate.After(after) {
		t.Errorf("start date should default to now, got %v", task.StartDate)
	}
	if task.DueDate.Before(before) || task.DueDate.After(after) {
		t.Errorf("due date should default to now, got %v", task.DueDate)
	}
	if task.EndDate != nil {
		t.Errorf("end date should default to nil, got %v", task.EndDate)
	}

	// The wire format must carry the missing end date as an explicit null.
	if !strings.Contains(rec.Body.String(), `"endDate":null`) {
		t.Errorf("response should serialize endDate as null, body: %s", rec.Body.String())
	}
}

func TestCreate_ExplicitDates(t *testing.T) {
	mockStore, mockRepo := newMockStorage()
	handler := NewHandler(mockStore)

	body := `{
		"projectId": "proj-1",
		"description": "Wireframes",
		"startDate": "2026-02-16",
		"endDate": "2026-02-18",
		"dueDate": "2026-02-19"
	}`
	req := httptest.NewRequest("POST", "/api/tasks", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	task := mockRepo.tasks[0]
	if !task.StartDate.Equal(date(2026, 2, 16)) {
		t.Errorf("start date = %v, want 2026-02-16", task.StartDate)
	}
	if task.EndDate == nil || !task.EndDate.Equal(date(2026, 2, 18)) {
		t.Errorf("end date = %v, want 2026-02-18", task.EndDate)
	}
	if !task.DueDate.Equal(date(2026, 2, 19)) {
		t.Errorf("due date = %v, want 2026-02-19", task.DueDate)
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing projectId", `{"description": "Wireframes"}`},
		{"missing description", `{"projectId": "proj-1"}`},
		{"bad startDate", `{"projectId": "proj-1", "description": "d", "startDate": "tomorrow"}`},
		{"not json", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore, _ := newMockStorage()
			handler := NewHandler(mockStore)
			req := httptest.NewRequest("POST", "/api/tasks", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestList_RangeSkipsOpenEnded(t *testing.T) {
	mockStore, mockRepo := newMockStorage()
	end := date(2026, 2, 18)
	mockRepo.tasks = []*models.Task{
		{ID: "closed", ProjectID: "proj-1", StartDate: date(2026, 2, 16), EndDate: &end},
		{ID: "open", ProjectID: "proj-1", StartDate: date(2026, 2, 16)},
	}

	handler := NewHandler(mockStore)
	req := httptest.NewRequest("GET", "/api/tasks?startDate=2026-02-16&endDate=2026-02-22", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp []*models.Task
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "closed" {
		t.Errorf("filtered tasks = %v, want only the one with an end date", resp)
	}
}

func TestListByProject(t *testing.T) {
	mockStore, mockRepo := newMockStorage()
	mockRepo.tasks = []*models.Task{
		{ID: "task-1", ProjectID: "proj-1", StartDate: date(2026, 2, 16)},
		{ID: "task-2", ProjectID: "proj-2", StartDate: date(2026, 2, 16)},
	}

	handler := NewHandler(mockStore)
	req := httptest.NewRequest("GET", "/api/tasks/project/proj-1", nil)
	rec := httptest.NewRecorder()

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("projectId", "proj-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	handler.ListByProject(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp []*models.Task
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "task-1" {
		t.Errorf("tasks = %v, want only proj-1's task", resp)
	}
}
