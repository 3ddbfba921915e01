package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/campus-events/internal/model"
)

// CreateEvent handles POST /events
// The event is admitted even when it conflicts; the response carries
// is_valid and the recorded violation.
func (h *CampusHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	event, err := h.svc.CreateEvent(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// PreviewEvent handles POST /events/preview
func (h *CampusHandler) PreviewEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	reports, err := h.svc.PreviewEvent(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// ListEvents handles GET /events
func (h *CampusHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListEvents(r.Context()))
}

// EventsOverview handles GET /events/overview
func (h *CampusHandler) EventsOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.EventsOverview(r.Context()))
}

// GetEvent handles GET /events/{id}
// Returns the event summary: seats, validity and violations.
func (h *CampusHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.GetEventSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// EventConflicts handles GET /events/{id}/conflicts
func (h *CampusHandler) EventConflicts(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.EventConflicts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// Register handles POST /events/{id}/register
// Responds 201 for a new registration and 200 with the existing one on repeat.
func (h *CampusHandler) Register(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	reg, created, err := h.svc.Register(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, "student or event not found")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, reg)
}

// ListRegistrations handles GET /events/{id}/registrations
func (h *CampusHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.svc.ListRegistrations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, regs)
}

// VenueUsage handles GET /venues
func (h *CampusHandler) VenueUsage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.VenueUsage(r.Context()))
}
