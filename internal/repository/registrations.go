package repository

import (
	"github.com/Shivanand-hulikatti/campus-events/internal/model"
)

// Register links a student to the current event stored under eventID.
//
// ok is false when either id is unknown. A pair that is already registered
// returns the existing registration with created=false and capacity is not
// looked at again. Otherwise the registration is Confirmed while the event
// holds fewer Confirmed registrations than max seats, and Waitlisted after
// that. Event validity plays no part in seat assignment.
func (s *Store) Register(studentID, eventID string) (reg model.Registration, created, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, found := s.lookupEvent(eventID)
	if !found {
		return model.Registration{}, false, false
	}
	st, found := s.students[studentID]
	if !found {
		return model.Registration{}, false, false
	}

	key := pairKey{studentID: studentID, eventSeq: ev.seq}
	if i, dup := s.pairs[key]; dup {
		return s.registrationSnapshot(i), false, true
	}

	status := model.RegistrationWaitlisted
	if s.confirmedLocked(ev) < ev.maxSeats {
		status = model.RegistrationConfirmed
	}

	s.registrations = append(s.registrations, registrationRecord{
		id:        s.newID(),
		studentID: studentID,
		eventSeq:  ev.seq,
		status:    status,
		createdAt: s.now(),
	})
	i := len(s.registrations) - 1
	s.pairs[key] = i
	ev.registrations = append(ev.registrations, i)
	st.registrations = append(st.registrations, i)
	return s.registrationSnapshot(i), true, true
}

// EventRegistrations returns the registrations of the current event stored
// under eventID in arrival order.
func (s *Store) EventRegistrations(eventID string) ([]model.Registration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.lookupEvent(eventID)
	if !ok {
		return nil, false
	}
	out := make([]model.Registration, 0, len(ev.registrations))
	for _, i := range ev.registrations {
		out = append(out, s.registrationSnapshot(i))
	}
	return out, true
}

func (s *Store) confirmedLocked(ev *eventRecord) int {
	n := 0
	for _, i := range ev.registrations {
		if s.registrations[i].status == model.RegistrationConfirmed {
			n++
		}
	}
	return n
}

func (s *Store) registrationSnapshot(i int) model.Registration {
	r := s.registrations[i]
	return model.Registration{
		ID:            r.id,
		StudentID:     r.studentID,
		EventID:       s.events[r.eventSeq].id,
		EventSequence: r.eventSeq,
		Status:        r.status,
		CreatedAt:     r.createdAt,
	}
}
