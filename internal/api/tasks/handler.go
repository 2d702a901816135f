// Package tasks implements the /api/tasks endpoints.
package tasks

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tomgiova97/freelance-dashboard/internal/metrics"
	"github.com/tomgiova97/freelance-dashboard/internal/models"
	"github.com/tomgiova97/freelance-dashboard/internal/storage"
	"github.com/tomgiova97/freelance-dashboard/internal/timerange"
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

func jsonCreated(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(data)
}

type Handler struct {
	storage storage.Storage
}

func NewHandler(store storage.Storage) *Handler {
	return &Handler{storage: store}
}

// CreateRequest is the POST /api/tasks body. startDate and dueDate default to
// the current time when omitted; endDate defaults to null.
type CreateRequest struct {
	ProjectID   string `json:"projectId"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	DueDate     string `json:"dueDate"`
}

// List returns tasks overlapping the optional startDate/endDate range,
// most recent start date first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rng, err := timerange.FromQuery(
		r.URL.Query().Get("startDate"),
		r.URL.Query().Get("endDate"),
	)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := h.storage.Tasks().List(r.Context(), rng)
	if err != nil {
		log.Printf("list tasks error: %v", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]*models.Task, 0, len(tasks))
	resp = append(resp, tasks...)
	jsonOK(w, resp)
}

// ListByProject returns every task of one project, unfiltered by date.
func (h *Handler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	if projectID == "" {
		jsonError(w, http.StatusBadRequest, "project id required")
		return
	}

	tasks, err := h.storage.Tasks().ListByProject(r.Context(), projectID)
	if err != nil {
		log.Printf("list tasks by project error: %v", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]*models.Task, 0, len(tasks))
	resp = append(resp, tasks...)
	jsonOK(w, resp)
}

// Create creates a new task. The referenced project is not verified; see the
// payments handler for the checked counterpart.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	parsed, err := validateCreate(&req)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	task := &models.Task{
		ID:          uuid.New().String(),
		ProjectID:   parsed.projectID,
		Description: parsed.description,
		StartDate:   now,
		DueDate:     now,
	}
	if parsed.startDate != nil {
		task.StartDate = *parsed.startDate
	}
	if parsed.dueDate != nil {
		task.DueDate = *parsed.dueDate
	}
	task.EndDate = parsed.endDate

	if err := h.storage.Tasks().Create(r.Context(), task); err != nil {
		log.Printf("create task error: %v", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.TasksCreatedTotal.Inc()
	jsonCreated(w, task)
}
