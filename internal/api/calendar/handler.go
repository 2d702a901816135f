// Package calendar implements the week-view endpoint backing the dashboard
// grid: the Monday-to-Sunday window around a reference date, with each task
// mapped to a column/span placement.
package calendar

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/tomgiova97/freelance-dashboard/internal/models"
	"github.com/tomgiova97/freelance-dashboard/internal/storage"
	"github.com/tomgiova97/freelance-dashboard/internal/timeline"
)

type errorResponse struct {
	Error string `json:"error"`
}

func jsonError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

func jsonOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(data)
}

type Handler struct {
	storage storage.Storage
}

func NewHandler(store storage.Storage) *Handler {
	return &Handler{storage: store}
}

// TaskSpan is a task placed in the week grid.
type TaskSpan struct {
	*models.Task
	StartColumn int `json:"startColumn"`
	Span        int `json:"span"`
}

// Row groups the in-view tasks of one project.
type Row struct {
	Project *models.Project `json:"project"`
	Tasks   []TaskSpan      `json:"tasks"`
}

// WeekResponse is the GET /api/calendar/week body.
type WeekResponse struct {
	WeekStart time.Time   `json:"weekStart"`
	WeekEnd   time.Time   `json:"weekEnd"`
	Days      []time.Time `json:"days"`
	Rows      []Row       `json:"rows"`
}

// Week returns the week containing the optional ?date reference (default:
// today), with one row per project overlapping the window.
func (h *Handler) Week(w http.ResponseWriter, r *http.Request) {
	ref := time.Now()
	if d := r.URL.Query().Get("date"); d != "" {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		ref = t
	}

	week := timeline.WeekOf(ref)
	rng := week.Range()
	ctx := r.Context()

	projects, err := h.storage.Projects().List(ctx, &rng)
	if err != nil {
		log.Printf("calendar week error: list projects: %v", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	tasks, err := h.storage.Tasks().List(ctx, &rng)
	if err != nil {
		log.Printf("calendar week error: list tasks: %v", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	byProject := make(map[string][]TaskSpan)
	for _, task := range tasks {
		if task.EndDate == nil {
			// No interval, nothing to place in the grid.
			continue
		}
		span, ok := week.SpanOf(task.StartDate, *task.EndDate)
		if !ok {
			continue
		}
		byProject[task.ProjectID] = append(byProject[task.ProjectID], TaskSpan{
			Task:        task,
			StartColumn: span.StartColumn,
			Span:        span.Days,
		})
	}

	resp := WeekResponse{
		WeekStart: week.Start,
		WeekEnd:   week.End,
		Days:      week.Days(),
		Rows:      make([]Row, 0, len(projects)),
	}
	for _, p := range projects {
		spans := byProject[p.ID]
		if spans == nil {
			spans = []TaskSpan{}
		}
		resp.Rows = append(resp.Rows, Row{Project: p, Tasks: spans})
	}

	jsonOK(w, resp)
}
