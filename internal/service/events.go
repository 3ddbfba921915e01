package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Shivanand-hulikatti/campus-events/internal/model"
	"github.com/Shivanand-hulikatti/campus-events/internal/repository"
	"github.com/Shivanand-hulikatti/campus-events/internal/schedule"
)

func validateEvent(req model.CreateEventRequest) error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"id", req.ID},
		{"title", req.Title},
		{"club", req.Club},
		{"date", req.Date},
		{"start_time", req.StartTime},
		{"end_time", req.EndTime},
		{"venue", req.Venue},
	} {
		if blank(f.value) {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	if req.MaxSeats <= 0 {
		return fmt.Errorf("%w: max_seats must be a positive integer", ErrValidation)
	}
	if req.MaxSeats > maxSeatsLimit {
		return fmt.Errorf("%w: max_seats cannot exceed 100,000", ErrValidation)
	}
	return nil
}

// CreateEvent validates the request and admits the event. The returned event
// carries its resolved validity and violations.
func (s *CampusService) CreateEvent(ctx context.Context, req model.CreateEventRequest) (model.Event, error) {
	log := s.logger(ctx)
	if err := validateEvent(req); err != nil {
		s.metrics.RecordEventRejected("validation")
		return model.Event{}, err
	}

	ev, err := s.store.AddEvent(req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidSchedule):
			s.metrics.RecordEventRejected("invalid_schedule")
		case errors.Is(err, repository.ErrInvalidCapacity):
			s.metrics.RecordEventRejected("validation")
		}
		log.Info("event refused", "eventID", req.ID, "reason", err.Error())
		return model.Event{}, err
	}

	s.metrics.RecordEventAdmitted(ev.IsValid)
	if ev.IsValid {
		log.Info("event admitted", "eventID", ev.ID, "sequence", ev.Sequence)
	} else {
		log.Info("event admitted with schedule violation", "eventID", ev.ID,
			"sequence", ev.Sequence, "violation", ev.Violations[0])
	}
	return ev, nil
}

// PreviewEvent reports the conflicts a candidate event would have without admitting it.
func (s *CampusService) PreviewEvent(_ context.Context, req model.CreateEventRequest) ([]model.ConflictReport, error) {
	if blank(req.Date) || blank(req.StartTime) || blank(req.EndTime) {
		return nil, fmt.Errorf("%w: date, start_time and end_time are required", ErrValidation)
	}
	return s.store.PreviewConflicts(req)
}

// ListEvents returns all current events in admission order.
func (s *CampusService) ListEvents(_ context.Context) []model.Event {
	return s.store.ListEvents()
}

// GetEventSummary returns the summary of one event.
func (s *CampusService) GetEventSummary(_ context.Context, id string) (model.EventSummary, error) {
	sum, ok := s.store.GetEventSummary(id)
	if !ok {
		return model.EventSummary{}, repository.ErrNotFound
	}
	return sum, nil
}

// EventConflicts lists the stored events that overlap the given one.
func (s *CampusService) EventConflicts(_ context.Context, id string) ([]model.ConflictReport, error) {
	reports, ok := s.store.EventConflicts(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return reports, nil
}

// EventsOverview aggregates validity and conflicts across all events.
func (s *CampusService) EventsOverview(_ context.Context) model.EventsOverview {
	return s.store.EventsOverview()
}

// VenueUsage counts events per venue.
func (s *CampusService) VenueUsage(_ context.Context) map[string]int {
	return s.store.VenueUsage()
}

// Register registers a student for an event. created is false when the
// pair was already registered and the existing registration is returned.
func (s *CampusService) Register(ctx context.Context, eventID string, req model.RegisterRequest) (model.Registration, bool, error) {
	if blank(eventID) {
		return model.Registration{}, false, fmt.Errorf("%w: event id is required", ErrValidation)
	}
	if blank(req.StudentID) {
		return model.Registration{}, false, fmt.Errorf("%w: student_id is required", ErrValidation)
	}

	reg, created, ok := s.store.Register(req.StudentID, eventID)
	if !ok {
		return model.Registration{}, false, repository.ErrNotFound
	}
	if created {
		s.metrics.RecordRegistration(string(reg.Status))
		s.logger(ctx).Info("registration created", "eventID", eventID,
			"studentID", req.StudentID, "status", reg.Status)
	}
	return reg, created, nil
}

// ListRegistrations returns all registrations for an event in arrival order.
func (s *CampusService) ListRegistrations(_ context.Context, eventID string) ([]model.Registration, error) {
	regs, ok := s.store.EventRegistrations(eventID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return regs, nil
}
