package repository

import (
	"github.com/Shivanand-hulikatti/campus-events/internal/model"
)

// GetEventSummary projects seat counts and validity for the event stored under id.
func (s *Store) GetEventSummary(id string) (model.EventSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.lookupEvent(id)
	if !ok {
		return model.EventSummary{}, false
	}

	seats := model.SeatSummary{Max: ev.maxSeats}
	for _, i := range ev.registrations {
		switch s.registrations[i].status {
		case model.RegistrationConfirmed:
			seats.Confirmed++
		case model.RegistrationWaitlisted:
			seats.Waitlisted++
		}
	}
	seats.Available = max(seats.Max-seats.Confirmed, 0)

	status := model.EventStatusValid
	if !ev.valid {
		status = model.EventStatusInvalid
	}
	return model.EventSummary{
		EventID:    ev.id,
		Title:      ev.title,
		Club:       ev.club,
		Date:       ev.date,
		Time:       timeRange(ev.startTime, ev.endTime),
		Venue:      ev.venue,
		Seats:      seats,
		Violations: append([]string{}, ev.violations...),
		Status:     status,
	}, true
}

// ServiceRequestSummary counts requests per status. Every status is present,
// including those with a zero count.
func (s *Store) ServiceRequestSummary() model.RequestSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := make(model.RequestSummary, len(model.RequestStatuses()))
	for _, st := range model.RequestStatuses() {
		summary[st] = 0
	}
	for _, i := range s.requestIndex {
		summary[s.requests[i].status]++
	}
	return summary
}

// StudentSummary joins a student's registrations with the events they point
// at. A registration on an overwritten event still reports that event.
func (s *Store) StudentSummary(id string) (model.StudentSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.students[id]
	if !ok {
		return model.StudentSummary{}, false
	}
	out := model.StudentSummary{
		StudentID:       st.id,
		Name:            st.name,
		ServiceRequests: len(st.requests),
		Registrations:   make([]model.StudentRegistration, 0, len(st.registrations)),
		Requests:        make([]model.ServiceRequest, 0, len(st.requests)),
	}
	for _, i := range st.registrations {
		r := s.registrations[i]
		ev := s.events[r.eventSeq]
		switch r.status {
		case model.RegistrationConfirmed:
			out.Confirmed++
		case model.RegistrationWaitlisted:
			out.Waitlisted++
		}
		out.Registrations = append(out.Registrations, model.StudentRegistration{
			RegistrationID: r.id,
			EventID:        ev.id,
			Title:          ev.title,
			Date:           ev.date,
			Time:           timeRange(ev.startTime, ev.endTime),
			Venue:          ev.venue,
			Status:         r.status,
		})
	}
	for _, i := range st.requests {
		out.Requests = append(out.Requests, s.requests[i].snapshot())
	}
	return out, true
}

func timeRange(start, end string) string {
	return start + " - " + end
}
