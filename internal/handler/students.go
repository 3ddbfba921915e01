package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/campus-events/internal/model"
)

// CreateStudent handles POST /students
// Responds 201 for a new student and 200 when the id already existed.
func (h *CampusHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateStudentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	st, created, err := h.svc.AddStudent(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "student not found")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, st)
}

// ListStudents handles GET /students
func (h *CampusHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListStudents(r.Context()))
}

// GetStudent handles GET /students/{id}
func (h *CampusHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.GetStudent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "student not found")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
