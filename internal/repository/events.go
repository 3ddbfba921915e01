package repository

import (
	"fmt"

	"github.com/Shivanand-hulikatti/campus-events/internal/model"
	"github.com/Shivanand-hulikatti/campus-events/internal/schedule"
)

// AddEvent admits a new event and resolves its validity against the events
// already in the store.
//
// Existing events are scanned in admission order. The first one that is
// itself valid and overlaps the newcomer in time invalidates it, and a single
// violation naming that event is recorded. Invalid events are never used as
// the reason to reject a newcomer. The new event then replaces any event
// stored under the same id.
//
// Unparseable dates or times fail with schedule.ErrInvalidSchedule and a
// non-positive seat count with ErrInvalidCapacity; in both cases the store
// is left unchanged.
func (s *Store) AddEvent(req model.CreateEventRequest) (model.Event, error) {
	if req.MaxSeats < 1 {
		return model.Event{}, fmt.Errorf("admit event %q: %w: got %d", req.ID, ErrInvalidCapacity, req.MaxSeats)
	}
	slot, err := schedule.NewSlot(req.Date, req.StartTime, req.EndTime, req.Venue)
	if err != nil {
		return model.Event{}, fmt.Errorf("admit event %q: %w", req.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	ev := &eventRecord{
		id:        req.ID,
		title:     req.Title,
		club:      req.Club,
		date:      req.Date,
		startTime: req.StartTime,
		endTime:   req.EndTime,
		venue:     req.Venue,
		maxSeats:  req.MaxSeats,
		seq:       s.seq,
		createdAt: s.now(),
		slot:      slot,
		valid:     true,
	}

	for _, existing := range s.currentEvents() {
		if !existing.valid {
			continue
		}
		c := schedule.Detect(existing.slot, ev.slot)
		if !c.HasConflict {
			continue
		}
		ev.valid = false
		ev.violations = append(ev.violations, fmt.Sprintf(
			"Conflicts with %s (%s) which was registered first: %s",
			existing.title, existing.id, c.Describe(ev.venue)))
		break
	}

	s.events[ev.seq] = ev
	s.eventOrder = append(s.eventOrder, ev.seq)
	s.eventIndex[ev.id] = ev.seq
	return s.eventSnapshot(ev), nil
}

// GetEvent returns the current event stored under id.
func (s *Store) GetEvent(id string) (model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.lookupEvent(id)
	if !ok {
		return model.Event{}, false
	}
	return s.eventSnapshot(ev), true
}

// ListEvents returns the current events in admission order.
func (s *Store) ListEvents() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.currentEvents()
	out := make([]model.Event, 0, len(current))
	for _, ev := range current {
		out = append(out, s.eventSnapshot(ev))
	}
	return out
}

// PreviewConflicts checks a candidate event against every stored event with
// a different id without admitting it. Unlike admission it reports every
// overlap, including overlaps with events that were themselves rejected.
func (s *Store) PreviewConflicts(req model.CreateEventRequest) ([]model.ConflictReport, error) {
	slot, err := schedule.NewSlot(req.Date, req.StartTime, req.EndTime, req.Venue)
	if err != nil {
		return nil, fmt.Errorf("preview event %q: %w", req.ID, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := []model.ConflictReport{}
	for _, other := range s.currentEvents() {
		if other.id == req.ID {
			continue
		}
		if c := schedule.Detect(slot, other.slot); c.HasConflict {
			reports = append(reports, conflictReport(other, c, req.Venue))
		}
	}
	return reports, nil
}

// EventConflicts lists every stored event that overlaps the event stored under id.
func (s *Store) EventConflicts(id string) ([]model.ConflictReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.lookupEvent(id)
	if !ok {
		return nil, false
	}
	reports := []model.ConflictReport{}
	for _, other := range s.currentEvents() {
		if other.seq == ev.seq {
			continue
		}
		if c := schedule.Detect(ev.slot, other.slot); c.HasConflict {
			reports = append(reports, conflictReport(other, c, ev.venue))
		}
	}
	return reports, true
}

// EventsOverview counts valid and invalid events and the distinct pairs of
// stored events that overlap.
func (s *Store) EventsOverview() model.EventsOverview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.currentEvents()
	var ov model.EventsOverview
	ov.Total = len(current)
	involved := make(map[uint64]struct{})
	for i, a := range current {
		if a.valid {
			ov.Valid++
		}
		for _, b := range current[i+1:] {
			if schedule.Detect(a.slot, b.slot).HasConflict {
				ov.ConflictPairs++
				involved[a.seq] = struct{}{}
				involved[b.seq] = struct{}{}
			}
		}
	}
	ov.Invalid = ov.Total - ov.Valid
	ov.EventsWithConflicts = len(involved)
	return ov
}

// VenueUsage counts current events per venue.
func (s *Store) VenueUsage() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	usage := make(map[string]int)
	for _, ev := range s.currentEvents() {
		usage[ev.venue]++
	}
	return usage
}

// currentEvents returns the events the id index points at, in admission
// order. Callers must hold s.mu.
func (s *Store) currentEvents() []*eventRecord {
	out := make([]*eventRecord, 0, len(s.eventIndex))
	for _, seq := range s.eventOrder {
		ev := s.events[seq]
		if s.eventIndex[ev.id] == seq {
			out = append(out, ev)
		}
	}
	return out
}

func (s *Store) lookupEvent(id string) (*eventRecord, bool) {
	seq, ok := s.eventIndex[id]
	if !ok {
		return nil, false
	}
	return s.events[seq], true
}

func (s *Store) eventSnapshot(ev *eventRecord) model.Event {
	out := model.Event{
		ID:            ev.id,
		Title:         ev.title,
		Club:          ev.club,
		Date:          ev.date,
		StartTime:     ev.startTime,
		EndTime:       ev.endTime,
		Venue:         ev.venue,
		MaxSeats:      ev.maxSeats,
		Sequence:      ev.seq,
		CreatedAt:     ev.createdAt,
		IsValid:       ev.valid,
		Violations:    append([]string{}, ev.violations...),
		Registrations: make([]model.Registration, 0, len(ev.registrations)),
	}
	for _, i := range ev.registrations {
		out.Registrations = append(out.Registrations, s.registrationSnapshot(i))
	}
	return out
}

func conflictReport(other *eventRecord, c schedule.Conflict, venue string) model.ConflictReport {
	r := model.ConflictReport{
		EventID:       other.id,
		Title:         other.title,
		TimeConflict:  c.TimeConflict,
		VenueConflict: c.VenueConflict,
		Description:   c.Describe(venue),
	}
	if c.Period != nil {
		r.Period = &model.ConflictPeriod{Date: c.Period.Date, Start: c.Period.Start, End: c.Period.End}
	}
	return r
}
