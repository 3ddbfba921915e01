package repository

import (
	"github.com/Shivanand-hulikatti/campus-events/internal/model"
)

// RaiseServiceRequest opens a request for an existing student. ok is false
// when the student is unknown. Callers are expected to use each id once; a
// reused id replaces the index entry while the student keeps both requests.
func (s *Store) RaiseServiceRequest(id, studentID, category string) (model.ServiceRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.students[studentID]
	if !ok {
		return model.ServiceRequest{}, false
	}
	return s.raiseLocked(id, st, category), true
}

// RaiseUniqueServiceRequest is RaiseServiceRequest for callers that cannot
// guarantee unique ids. It fails with ErrNotFound for an unknown student and
// ErrDuplicateRequest for an id that is already in use.
func (s *Store) RaiseUniqueServiceRequest(id, studentID, category string) (model.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.students[studentID]
	if !ok {
		return model.ServiceRequest{}, ErrNotFound
	}
	if _, taken := s.requestIndex[id]; taken {
		return model.ServiceRequest{}, ErrDuplicateRequest
	}
	return s.raiseLocked(id, st, category), nil
}

func (s *Store) raiseLocked(id string, st *studentRecord, category string) model.ServiceRequest {
	s.requests = append(s.requests, requestRecord{
		id:        id,
		studentID: st.id,
		category:  category,
		status:    model.RequestOpen,
		createdAt: s.now(),
	})
	i := len(s.requests) - 1
	s.requestIndex[id] = i
	st.requests = append(st.requests, i)
	return s.requests[i].snapshot()
}

// UpdateServiceRequestStatus sets the status of the request stored under id.
// Any known status may follow any other. It returns false, changing nothing,
// when the id is unknown or status is not a known value.
func (s *Store) UpdateServiceRequestStatus(id string, status model.RequestStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.requestIndex[id]
	if !ok {
		return false
	}
	req := &s.requests[i]
	if !req.status.CanTransition(status) {
		return false
	}
	req.status = status
	return true
}

// GetServiceRequest returns the request stored under id.
func (s *Store) GetServiceRequest(id string) (model.ServiceRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.requestIndex[id]
	if !ok {
		return model.ServiceRequest{}, false
	}
	return s.requests[i].snapshot(), true
}

// ListServiceRequests returns the stored requests in the order they were raised.
func (s *Store) ListServiceRequests() []model.ServiceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ServiceRequest, 0, len(s.requestIndex))
	for i, r := range s.requests {
		if s.requestIndex[r.id] == i {
			out = append(out, r.snapshot())
		}
	}
	return out
}

// CategoryDistribution counts stored requests per category.
func (s *Store) CategoryDistribution() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dist := make(map[string]int)
	for _, i := range s.requestIndex {
		dist[s.requests[i].category]++
	}
	return dist
}

func (r requestRecord) snapshot() model.ServiceRequest {
	return model.ServiceRequest{
		ID:        r.id,
		StudentID: r.studentID,
		Category:  r.category,
		Status:    r.status,
		CreatedAt: r.createdAt,
	}
}
