// Package payments implements the /api/payments endpoints.
package payments

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

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

// CreateRequest is the POST /api/payments body. Amount is a pointer so a
// missing field can be told apart from an explicit zero.
type CreateRequest struct {
	ProjectID string   `json:"projectId"`
	Amount    *float64 `json:"amount"`
	Currency  string   `json:"currency"`
	Date      string   `json:"date"`
}

// ListResponse is the GET /api/payments body: the point-filtered ledger plus
// the total over the returned set.
type ListResponse struct {
	Payments  []*models.Payment `json:"payments"`
	TotalGain float64           `json:"totalGain"`
}

// List returns payments whose date lies in the optional startDate/endDate
// range, most recent first, together with their total.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rng, err := timerange.FromQuery(
		r.URL.Query().Get("startDate"),
		r.URL.Query().Get("endDate"),
	)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	payments, err := h.storage.Payments().List(r.Context(), rng)
	if err != nil {
		log.Printf("list payments error: %v", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := ListResponse{
		Payments:  make([]*models.Payment, 0, len(payments)),
		TotalGain: models.TotalGain(payments),
	}
	resp.Payments = append(resp.Payments, payments...)
	jsonOK(w, resp)
}

// Create records a payment and bumps the referenced project's cumulated
// compensation. Both writes happen in one storage transaction, so a payment
// against an unknown project leaves nothing behind.
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
	date := time.Now()
	if parsed.date != nil {
		date = *parsed.date
	}

	payment := &models.Payment{
		ID:        uuid.New().String(),
		ProjectID: parsed.projectID,
		Amount:    parsed.amount,
		Currency:  currency,
		Date:      date,
	}

	if err := h.storage.Payments().Record(r.Context(), payment); err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			jsonError(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Printf("record payment error: %v", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.PaymentsRecordedTotal.Inc()
	metrics.PaymentAmountTotal.WithLabelValues(payment.Currency).Add(payment.Amount)
	log.Printf("payment recorded: %s (%.2f %s against project %s)",
		payment.ID, payment.Amount, payment.Currency, payment.ProjectID)
	jsonCreated(w, payment)
}
