package projects

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomgiova97/freelance-dashboard/internal/models"
	"github.com/tomgiova97/freelance-dashboard/internal/storage"
	"github.com/tomgiova97/freelance-dashboard/internal/timerange"
)

// Mock repositories
type mockProjectRepository struct {
	projects    []*models.Project
	lastRange   *timerange.Range
	createError error
	listError   error
}

func (m *mockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if m.createError != nil {
		return m.createError
	}
	m.projects = append(m.projects, project)
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	for _, p := range m.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context, rng *timerange.Range) ([]*models.Project, error) {
	m.lastRange = rng
	if m.listError != nil {
		return nil, m.listError
	}
	if rng == nil {
		return m.projects, nil
	}
	var out []*models.Project
	for _, p := range m.projects {
		if rng.Overlaps(p.StartDate, p.EndDate) {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockStorage struct {
	projectRepo *mockProjectRepository
}

func (m *mockStorage) Open() error                         { return nil }
func (m *mockStorage) Close() error                        { return nil }
func (m *mockStorage) Migrate() error                      { return nil }
func (m *mockStorage) Projects() storage.ProjectRepository { return m.projectRepo }
func (m *mockStorage) Tasks() storage.TaskRepository       { return nil }
func (m *mockStorage) Payments() storage.PaymentRepository { return nil }

func newMockStorage() (*mockStorage, *mockProjectRepository) {
	projectRepo := &mockProjectRepository{}
	return &mockStorage{projectRepo: projectRepo}, projectRepo
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestList_All(t *testing.T) {
	mockStore, mockRepo := newMockStorage()
	mockRepo.projects = []*models.Project{
		{ID: "proj-1", Title: "Project 1", StartDate: date(2026, 2, 1), EndDate: date(2026, 2, 10)},
		{ID: "proj-2", Title: "Project 2", StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 10)},
	}

	handler := NewHandler(mockStore)
	req := httptest.NewRequest("GET", "/api/projects", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if mockRepo.lastRange != nil {
		t.Error("no query params should mean no range filter")
	}

	var resp []*models.Project
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Errorf("items count = %d, want 2", len(resp))
	}
}

func TestList_RangeFilter(t *testing.T) {
	mockStore, mockRepo := newMockStorage()
	mockRepo.projects = []*models.Project{
		{ID: "in", Title: "In range", StartDate: date(2026, 2, 16), EndDate: date(2026, 2, 20)},
		{ID: "out", Title: "Out of range", StartDate: date(2026, 5, 1), EndDate: date(2026, 5, 10)},
	}

	handler := NewHandler(mockStore)
	req := httptest.NewRequest("GET", "/api/projects?startDate=2026-02-16&endDate=2026-02-22", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if mockRepo.lastRange == nil {
		t.Fatal("range filter should be passed to storage")
	}
	if !mockRepo.lastRange.Start.Equal(date(2026, 2, 16)) {
		t.Errorf("range start = %v, want 2026-02-16", mockRepo.lastRange.Start)
	}

	var resp []*models.Project
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "in" {
		t.Errorf("filtered projects = %v, want only the overlapping one", resp)
	}
}

func TestList_HalfRangeIgnored(t *testing.T) {
	mockStore, mockRepo := newMockStorage()
	mockRepo.projects = []*models.Project{
		{ID: "proj-1", Title: "Project 1", StartDate: date(2026, 2, 1), EndDate: date(2026, 2, 10)},
	}

	handler := NewHandler(mockStore)
	// Only one bound present: filter must not activate.
	req := httptest.NewRequest("GET", "/api/projects?startDate=2026-02-16", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if mockRepo.lastRange != nil {
		t.Error("half a range should mean no filter")
	}
}

func TestList_BadDate(t *testing.T) {
	mockStore, _ := newMockStorage()
	handler := NewHandler(mockStore)
	req := httptest.NewRequest("GET", "/api/projects?startDate=nonsense&endDate=2026-02-22", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestList_EmptyIsArray(t *testing.T) {
	mockStore, _ := newMockStorage()
	handler := NewHandler(mockStore)
	req := httptest.NewRequest("GET", "/api/projects", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("empty list body = %q, want []", got)
	}
}

func TestCreate_Success(t *testing.T) {
	mockStore, mockRepo := newMockStorage()
	handler := NewHandler(mockStore)

	body := `{
		"title": "Site redesign",
		"companyName": "Acme",
		"description": "Marketing site",
		"compensation": 500,
		"compensationRate": "daily",
		"startDate": "2026-02-16",
		"endDate": "2026-02-20"
	}`
	req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp models.Project
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("created project should have an id")
	}
	if resp.Currency != models.DefaultCurrency {
		t.Errorf("currency = %q, want default %q", resp.Currency, models.DefaultCurrency)
	}
	if resp.CumulatedCompensation != 0 {
		t.Errorf("cumulated compensation = %v, want 0", resp.CumulatedCompensation)
	}
	if len(mockRepo.projects) != 1 {
		t.Errorf("stored projects = %d, want 1", len(mockRepo.projects))
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"companyName":"Acme","compensationRate":"daily","startDate":"2026-02-16","endDate":"2026-02-20"}`},
		{"missing company", `{"title":"T","compensationRate":"daily","startDate":"2026-02-16","endDate":"2026-02-20"}`},
		{"bad rate", `{"title":"T","companyName":"Acme","compensationRate":"yearly","startDate":"2026-02-16","endDate":"2026-02-20"}`},
		{"bad start date", `{"title":"T","companyName":"Acme","compensationRate":"daily","startDate":"soon","endDate":"2026-02-20"}`},
		{"missing end date", `{"title":"T","companyName":"Acme","compensationRate":"daily","startDate":"2026-02-16"}`},
		{"not json", `{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore, _ := newMockStorage()
			handler := NewHandler(mockStore)
			req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			var resp struct {
				Error string `json:"error"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Error == "" {
				t.Error("error message should not be empty")
			}
		})
	}
}

func TestCreate_StorageError(t *testing.T) {
	mockStore, mockRepo := newMockStorage()
	mockRepo.createError = errors.New("disk full")
	handler := NewHandler(mockStore)

	body := `{"title":"T","companyName":"Acme","compensationRate":"daily","startDate":"2026-02-16","endDate":"2026-02-20"}`
	req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
