// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/campus-events/internal/model"
	"github.com/Shivanand-hulikatti/campus-events/internal/repository"
	"github.com/Shivanand-hulikatti/campus-events/internal/schedule"
	"github.com/Shivanand-hulikatti/campus-events/internal/service"
)

// CampusHandler holds all HTTP handlers for the campus API.
type CampusHandler struct {
	svc *service.CampusService
}

// NewCampusHandler constructs a CampusHandler.
func NewCampusHandler(svc *service.CampusService) *CampusHandler {
	return &CampusHandler{svc: svc}
}

// Mount registers every API route on r.
func (h *CampusHandler) Mount(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	r.Route("/students", func(r chi.Router) {
		r.Post("/", h.CreateStudent)
		r.Get("/", h.ListStudents)
		r.Get("/{id}", h.GetStudent)
	})

	r.Route("/events", func(r chi.Router) {
		r.Post("/", h.CreateEvent)
		r.Get("/", h.ListEvents)
		r.Post("/preview", h.PreviewEvent)
		r.Get("/overview", h.EventsOverview)
		r.Get("/{id}", h.GetEvent)
		r.Get("/{id}/conflicts", h.EventConflicts)
		r.Post("/{id}/register", h.Register)
		r.Get("/{id}/registrations", h.ListRegistrations)
	})

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", h.RaiseServiceRequest)
		r.Get("/", h.ListServiceRequests)
		r.Get("/summary", h.ServiceRequestSummary)
		r.Get("/categories", h.CategoryDistribution)
		r.Patch("/{id}/status", h.UpdateServiceRequestStatus)
	})

	r.Get("/venues", h.VenueUsage)
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeServiceError maps service and store errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, schedule.ErrInvalidSchedule):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrValidation), errors.Is(err, repository.ErrInvalidCapacity):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrDuplicateRequest):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string      `json:"status"`
	Counts model.Stats `json:"counts"`
}

// HealthCheck handles GET /health
func (h *CampusHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Counts: h.svc.Stats(r.Context())})
}
