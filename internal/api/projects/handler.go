// Package projects implements the /api/projects endpoints.
package projects

import (
	"encoding/json"
	"log"
	"net/http"

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

// CreateRequest is the POST /api/projects body.
type CreateRequest struct {
	Title            string  `json:"title"`
	CompanyName      string  `json:"companyName"`
	Description      string  `json:"description"`
	Compensation     float64 `json:"compensation"`
	Currency         string  `json:"currency"`
	CompensationRate string  `json:"compensationRate"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
}

// List returns projects overlapping the optional startDate/endDate range,
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

	projects, err := h.storage.Projects().List(r.Context(), rng)
	if err != nil {
		log.Printf("list projects error: %v", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]*models.Project, 0, len(projects))
	resp = append(resp, projects...)
	jsonOK(w, resp)
}

// Create creates a new project with a zero cumulated compensation.
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

	currency := req.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	project := &models.Project{
		ID:                    uuid.New().String(),
		Title:                 parsed.title,
		CompanyName:           parsed.companyName,
		Description:           parsed.description,
		Compensation:          req.Compensation,
		Currency:              currency,
		CompensationRate:      parsed.rate,
		StartDate:             parsed.startDate,
		EndDate:               parsed.endDate,
		CumulatedCompensation: 0,
	}

	if err := h.storage.Projects().Create(r.Context(), project); err != nil {
		log.Printf("create project error: %v", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ProjectsCreatedTotal.Inc()
	log.Printf("project created: %s (%s)", project.Title, project.ID)
	jsonCreated(w, project)
}
