package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/campus-events/internal/model"
)

// RaiseServiceRequest handles POST /requests
func (h *CampusHandler) RaiseServiceRequest(w http.ResponseWriter, r *http.Request) {
	var req model.RaiseServiceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	sr, err := h.svc.RaiseServiceRequest(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "student not found")
		return
	}
	writeJSON(w, http.StatusCreated, sr)
}

// ListServiceRequests handles GET /requests
func (h *CampusHandler) ListServiceRequests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListServiceRequests(r.Context()))
}

// ServiceRequestSummary handles GET /requests/summary
func (h *CampusHandler) ServiceRequestSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ServiceRequestSummary(r.Context()))
}

// CategoryDistribution handles GET /requests/categories
func (h *CampusHandler) CategoryDistribution(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.CategoryDistribution(r.Context()))
}

// UpdateServiceRequestStatus handles PATCH /requests/{id}/status
func (h *CampusHandler) UpdateServiceRequestStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	sr, err := h.svc.UpdateServiceRequestStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err, "service request not found")
		return
	}
	writeJSON(w, http.StatusOK, sr)
}
