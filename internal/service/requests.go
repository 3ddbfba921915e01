package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/campus-events/internal/model"
	"github.com/Shivanand-hulikatti/campus-events/internal/repository"
)

// RaiseServiceRequest opens a request for a student. An empty id is replaced
// by a generated one; a taken id fails with repository.ErrDuplicateRequest.
func (s *CampusService) RaiseServiceRequest(ctx context.Context, req model.RaiseServiceRequest) (model.ServiceRequest, error) {
	if blank(req.StudentID) {
		return model.ServiceRequest{}, fmt.Errorf("%w: student_id is required", ErrValidation)
	}
	if blank(req.Category) {
		return model.ServiceRequest{}, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if blank(req.ID) {
		req.ID = uuid.NewString()
	}

	sr, err := s.store.RaiseUniqueServiceRequest(req.ID, req.StudentID, req.Category)
	if err != nil {
		return model.ServiceRequest{}, err
	}
	s.metrics.RecordRequestRaised()
	s.logger(ctx).Info("service request raised", "requestID", sr.ID,
		"studentID", sr.StudentID, "category", sr.Category)
	return sr, nil
}

// UpdateServiceRequestStatus moves a request to the named status.
func (s *CampusService) UpdateServiceRequestStatus(ctx context.Context, id string, req model.UpdateStatusRequest) (model.ServiceRequest, error) {
	status, ok := model.ParseRequestStatus(req.Status)
	if !ok {
		return model.ServiceRequest{}, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}
	if !s.store.UpdateServiceRequestStatus(id, status) {
		return model.ServiceRequest{}, repository.ErrNotFound
	}
	s.metrics.RecordStatusUpdate(string(status))
	s.logger(ctx).Info("service request status updated", "requestID", id, "status", status)

	sr, ok := s.store.GetServiceRequest(id)
	if !ok {
		return model.ServiceRequest{}, repository.ErrNotFound
	}
	return sr, nil
}

// ListServiceRequests returns all requests in the order they were raised.
func (s *CampusService) ListServiceRequests(_ context.Context) []model.ServiceRequest {
	return s.store.ListServiceRequests()
}

// ServiceRequestSummary counts requests per status.
func (s *CampusService) ServiceRequestSummary(_ context.Context) model.RequestSummary {
	return s.store.ServiceRequestSummary()
}

// CategoryDistribution counts requests per category.
func (s *CampusService) CategoryDistribution(_ context.Context) map[string]int {
	return s.store.CategoryDistribution()
}
