package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/campus-events/internal/model"
	"github.com/Shivanand-hulikatti/campus-events/internal/schedule"
)

func newTestStore() *Store {
	var n int
	base := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)
	var ticks int
	return NewStore(
		WithClock(func() time.Time {
			ticks++
			return base.Add(time.Duration(ticks) * time.Second)
		}),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("reg-%d", n)
		}),
	)
}

func eventReq(id, venue, start, end string, seats int) model.CreateEventRequest {
	return model.CreateEventRequest{
		ID:        id,
		Title:     "Event " + id,
		Club:      "Club",
		Date:      "2025-12-01",
		StartTime: start,
		EndTime:   end,
		Venue:     venue,
		MaxSeats:  seats,
	}
}

func mustAddEvent(t *testing.T, s *Store, req model.CreateEventRequest) model.Event {
	t.Helper()
	ev, err := s.AddEvent(req)
	require.NoError(t, err)
	return ev
}

func TestAddStudent_DuplicateIsNoop(t *testing.T) {
	s := newTestStore()

	first, created := s.AddStudent("S1", "A")
	require.True(t, created)
	second, created := s.AddStudent("S1", "B")
	require.False(t, created)

	assert.Equal(t, "A", first.Name)
	assert.Equal(t, "A", second.Name)
	assert.Len(t, s.ListStudents(), 1)
}

func TestAddStudent_PlaceholderName(t *testing.T) {
	s := newTestStore()

	st, _ := s.AddStudent("S9", "")
	assert.Equal(t, "Student S9", st.Name)

	st, _ = s.AddStudent("S10", "   ")
	assert.Equal(t, "Student S10", st.Name)
}

func TestAddEvent_FirstComeConflictAttribution(t *testing.T) {
	s := newTestStore()

	a := mustAddEvent(t, s, eventReq("A", "Hall", "10:00 AM", "12:00 PM", 10))
	b := mustAddEvent(t, s, eventReq("B", "Hall", "11:00 AM", "01:00 PM", 10))

	assert.True(t, a.IsValid)
	assert.Empty(t, a.Violations)
	assert.False(t, b.IsValid)
	require.Len(t, b.Violations, 1)
	assert.Equal(t,
		"Conflicts with Event A (A) which was registered first: Time and venue conflict: "+
			"Event at same venue (Hall) on 2025-12-01 between 11:00 AM and 12:00 PM",
		b.Violations[0])

	// Querying in the opposite order changes nothing.
	gotB, ok := s.GetEvent("B")
	require.True(t, ok)
	gotA, ok := s.GetEvent("A")
	require.True(t, ok)
	assert.False(t, gotB.IsValid)
	assert.True(t, gotA.IsValid)
}

func TestAddEvent_TimeOnlyConflict(t *testing.T) {
	s := newTestStore()

	mustAddEvent(t, s, eventReq("A", "Hall", "10:00 AM", "12:00 PM", 10))
	b := mustAddEvent(t, s, eventReq("B", "Lab", "11:30 AM", "01:00 PM", 10))

	require.False(t, b.IsValid)
	assert.Equal(t,
		"Conflicts with Event A (A) which was registered first: Time conflict: "+
			"Student cannot attend multiple events on 2025-12-01 between 11:30 AM and 12:00 PM",
		b.Violations[0])
}

func TestAddEvent_NonConflictingRemainValid(t *testing.T) {
	s := newTestStore()

	a := mustAddEvent(t, s, eventReq("A", "Hall", "10:00 AM", "11:00 AM", 10))
	b := mustAddEvent(t, s, eventReq("B", "Hall", "01:00 PM", "02:00 PM", 10))
	c := eventReq("C", "Lab", "10:00 AM", "11:00 AM", 10)
	c.Date = "2025-12-02"
	cev := mustAddEvent(t, s, c)

	assert.True(t, a.IsValid)
	assert.True(t, b.IsValid)
	assert.True(t, cev.IsValid)
}

func TestAddEvent_BoundaryTouchingConflicts(t *testing.T) {
	s := newTestStore()

	mustAddEvent(t, s, eventReq("A", "Hall", "10:00 AM", "12:00 PM", 10))
	b := mustAddEvent(t, s, eventReq("B", "Hall", "12:00 PM", "02:00 PM", 10))

	assert.False(t, b.IsValid)
}

func TestAddEvent_InvalidEventsAreNotBlamed(t *testing.T) {
	s := newTestStore()

	mustAddEvent(t, s, eventReq("A", "Hall", "09:00 AM", "10:00 AM", 10))
	// B overlaps A and is rejected.
	b := mustAddEvent(t, s, eventReq("B", "Hall", "10:00 AM", "11:00 AM", 10))
	require.False(t, b.IsValid)
	// C overlaps only B, which is invalid, so C is admitted.
	c := mustAddEvent(t, s, eventReq("C", "Hall", "10:30 AM", "11:30 AM", 10))
	assert.True(t, c.IsValid)
}

func TestAddEvent_SingleViolationFromEarliest(t *testing.T) {
	s := newTestStore()

	mustAddEvent(t, s, eventReq("A", "Hall", "09:00 AM", "10:00 AM", 10))
	mustAddEvent(t, s, eventReq("B", "Lab", "11:00 AM", "12:00 PM", 10))
	c := mustAddEvent(t, s, eventReq("C", "Hall", "09:30 AM", "11:30 AM", 10))

	require.False(t, c.IsValid)
	require.Len(t, c.Violations, 1)
	assert.Contains(t, c.Violations[0], "(A)")
}

func TestAddEvent_DuplicateIDOverwrites(t *testing.T) {
	s := newTestStore()

	first := mustAddEvent(t, s, eventReq("E1", "Hall", "10:00 AM", "11:00 AM", 10))
	req := eventReq("E1", "Lab", "02:00 PM", "03:00 PM", 5)
	req.Title = "Replacement"
	second := mustAddEvent(t, s, req)

	events := s.ListEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "Replacement", events[0].Title)
	assert.Equal(t, second.Sequence, events[0].Sequence)
	assert.Greater(t, second.Sequence, first.Sequence)
	assert.Equal(t, 1, s.Stats().Events)
}

func TestAddEvent_DuplicateIDCheckedAgainstPrevious(t *testing.T) {
	s := newTestStore()

	mustAddEvent(t, s, eventReq("E1", "Hall", "10:00 AM", "11:00 AM", 10))
	again := mustAddEvent(t, s, eventReq("E1", "Hall", "10:00 AM", "11:00 AM", 10))

	assert.False(t, again.IsValid, "the replaced event is still on the books during admission")
}

func TestAddEvent_OverwrittenEventReachableThroughRegistrations(t *testing.T) {
	s := newTestStore()
	s.AddStudent("S1", "Ana")

	mustAddEvent(t, s, eventReq("E1", "Hall", "10:00 AM", "11:00 AM", 10))
	old, _, ok := s.Register("S1", "E1")
	require.True(t, ok)

	req := eventReq("E1", "Lab", "02:00 PM", "03:00 PM", 10)
	req.Title = "New"
	mustAddEvent(t, s, req)

	regs, ok := s.EventRegistrations("E1")
	require.True(t, ok)
	assert.Empty(t, regs, "the new event starts with no registrations")

	sum, ok := s.StudentSummary("S1")
	require.True(t, ok)
	require.Len(t, sum.Registrations, 1)
	assert.Equal(t, "Event E1", sum.Registrations[0].Title)
	assert.Equal(t, "Hall", sum.Registrations[0].Venue)
	assert.Equal(t, old.ID, sum.Registrations[0].RegistrationID)

	// Registering again targets the new event object.
	fresh, created, ok := s.Register("S1", "E1")
	require.True(t, ok)
	assert.True(t, created)
	assert.NotEqual(t, old.EventSequence, fresh.EventSequence)
}

func TestAddEvent_RejectsBadInput(t *testing.T) {
	s := newTestStore()

	_, err := s.AddEvent(eventReq("E1", "Hall", "10:00", "11:00 AM", 10))
	assert.ErrorIs(t, err, schedule.ErrInvalidSchedule)

	_, err = s.AddEvent(eventReq("E2", "Hall", "11:00 AM", "10:00 AM", 10))
	assert.ErrorIs(t, err, schedule.ErrInvalidSchedule)

	_, err = s.AddEvent(eventReq("E3", "Hall", "10:00 AM", "11:00 AM", 0))
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	assert.Empty(t, s.ListEvents())
	_, ok := s.GetEvent("E1")
	assert.False(t, ok)
}

func TestRegister_CapacityBoundary(t *testing.T) {
	s := newTestStore()
	mustAddEvent(t, s, eventReq("E1", "Hall", "10:00 AM", "11:00 AM", 2))
	for _, id := range []string{"S1", "S2", "S3"} {
		s.AddStudent(id, "")
	}

	var got []model.RegistrationStatus
	for _, id := range []string{"S1", "S2", "S3"} {
		reg, created, ok := s.Register(id, "E1")
		require.True(t, ok)
		require.True(t, created)
		got = append(got, reg.Status)
	}

	want := []model.RegistrationStatus{
		model.RegistrationConfirmed,
		model.RegistrationConfirmed,
		model.RegistrationWaitlisted,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}

	regs, _ := s.EventRegistrations("E1")
	require.Len(t, regs, 3)
	assert.Equal(t, "S1", regs[0].StudentID)
	assert.Equal(t, "S3", regs[2].StudentID)
}

func TestRegister_Idempotent(t *testing.T) {
	s := newTestStore()
	mustAddEvent(t, s, eventReq("E1", "Hall", "10:00 AM", "11:00 AM", 1))
	s.AddStudent("S1", "")
	s.AddStudent("S2", "")

	first, created, ok := s.Register("S1", "E1")
	require.True(t, ok)
	require.True(t, created)
	second, created, ok := s.Register("S1", "E1")
	require.True(t, ok)
	assert.False(t, created)
	assert.Equal(t, first, second)

	ev, _ := s.GetEvent("E1")
	assert.Len(t, ev.Registrations, 1)
	st, _ := s.GetStudent("S1")
	assert.Len(t, st.Registrations, 1)

	// A waitlisted registration stays waitlisted on re-registration.
	wl, _, _ := s.Register("S2", "E1")
	require.Equal(t, model.RegistrationWaitlisted, wl.Status)
	again, _, _ := s.Register("S2", "E1")
	assert.Equal(t, wl, again)
}

func TestRegister_UnknownIdentifiers(t *testing.T) {
	s := newTestStore()
	mustAddEvent(t, s, eventReq("E1", "Hall", "10:00 AM", "11:00 AM", 1))
	s.AddStudent("S1", "")

	_, _, ok := s.Register("NOPE", "E1")
	assert.False(t, ok)
	_, _, ok = s.Register("S1", "NOPE")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Stats().Registrations)
}

func TestRegister_InvalidEventStillAcceptsRegistrations(t *testing.T) {
	s := newTestStore()
	mustAddEvent(t, s, eventReq("A", "Hall", "10:00 AM", "12:00 PM", 1))
	b := mustAddEvent(t, s, eventReq("B", "Hall", "11:00 AM", "01:00 PM", 1))
	require.False(t, b.IsValid)
	s.AddStudent("S1", "")

	reg, _, ok := s.Register("S1", "B")
	require.True(t, ok)
	assert.Equal(t, model.RegistrationConfirmed, reg.Status)
}

func TestRegister_ConcurrentNeverOverbooks(t *testing.T) {
	s := NewStore()
	mustAddEvent(t, s, eventReq("E1", "Hall", "10:00 AM", "11:00 AM", 5))
	const students = 50
	for i := 0; i < students; i++ {
		s.AddStudent(fmt.Sprintf("S%d", i), "")
	}

	var wg sync.WaitGroup
	for i := 0; i < students; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Register(fmt.Sprintf("S%d", i), "E1")
		}()
	}
	wg.Wait()

	sum, ok := s.GetEventSummary("E1")
	require.True(t, ok)
	assert.Equal(t, 5, sum.Seats.Confirmed)
	assert.Equal(t, students-5, sum.Seats.Waitlisted)
}

func TestServiceRequests_Lifecycle(t *testing.T) {
	s := newTestStore()
	s.AddStudent("S1", "")

	req, ok := s.RaiseServiceRequest("R1", "S1", "Library Access")
	require.True(t, ok)
	assert.Equal(t, model.RequestOpen, req.Status)

	_, ok = s.RaiseServiceRequest("R2", "NOPE", "Counseling")
	assert.False(t, ok)

	assert.True(t, s.UpdateServiceRequestStatus("R1", model.RequestResolved))
	// Backwards moves are allowed.
	assert.True(t, s.UpdateServiceRequestStatus("R1", model.RequestOpen))
	assert.True(t, s.UpdateServiceRequestStatus("R1", model.RequestInProgress))
	assert.False(t, s.UpdateServiceRequestStatus("NOPE", model.RequestResolved))
	assert.False(t, s.UpdateServiceRequestStatus("R1", model.RequestStatus("Closed")))

	got, ok := s.GetServiceRequest("R1")
	require.True(t, ok)
	assert.Equal(t, model.RequestInProgress, got.Status)

	st, _ := s.GetStudent("S1")
	require.Len(t, st.ServiceRequests, 1)
	assert.Equal(t, "R1", st.ServiceRequests[0].ID)
}

func TestRaiseUniqueServiceRequest(t *testing.T) {
	s := newTestStore()
	s.AddStudent("S1", "")

	_, err := s.RaiseUniqueServiceRequest("R1", "S1", "Other")
	require.NoError(t, err)
	_, err = s.RaiseUniqueServiceRequest("R1", "S1", "Other")
	assert.ErrorIs(t, err, ErrDuplicateRequest)
	_, err = s.RaiseUniqueServiceRequest("R2", "NOPE", "Other")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, s.ListServiceRequests(), 1)
}

func TestServiceRequestSummary(t *testing.T) {
	s := newTestStore()

	want := model.RequestSummary{
		model.RequestOpen:       0,
		model.RequestInProgress: 0,
		model.RequestResolved:   0,
	}
	assert.Equal(t, want, s.ServiceRequestSummary())

	s.AddStudent("S1", "")
	s.RaiseServiceRequest("R1", "S1", "Other")
	s.RaiseServiceRequest("R2", "S1", "Other")
	s.RaiseServiceRequest("R3", "S1", "Counseling")
	s.UpdateServiceRequestStatus("R3", model.RequestResolved)

	want = model.RequestSummary{
		model.RequestOpen:       2,
		model.RequestInProgress: 0,
		model.RequestResolved:   1,
	}
	assert.Equal(t, want, s.ServiceRequestSummary())
	assert.Equal(t, map[string]int{"Other": 2, "Counseling": 1}, s.CategoryDistribution())
}

func TestGetEventSummary(t *testing.T) {
	s := newTestStore()
	mustAddEvent(t, s, eventReq("A", "Hall", "10:00 AM", "12:00 PM", 1))
	mustAddEvent(t, s, eventReq("B", "Hall", "11:00 AM", "01:00 PM", 3))
	s.AddStudent("S1", "")
	s.AddStudent("S2", "")
	s.Register("S1", "A")
	s.Register("S2", "A")

	sum, ok := s.GetEventSummary("A")
	require.True(t, ok)
	want := model.EventSummary{
		EventID:    "A",
		Title:      "Event A",
		Club:       "Club",
		Date:       "2025-12-01",
		Time:       "10:00 AM - 12:00 PM",
		Venue:      "Hall",
		Seats:      model.SeatSummary{Max: 1, Confirmed: 1, Waitlisted: 1, Available: 0},
		Violations: []string{},
		Status:     model.EventStatusValid,
	}
	if diff := cmp.Diff(want, sum); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	sum, ok = s.GetEventSummary("B")
	require.True(t, ok)
	assert.Equal(t, model.EventStatusInvalid, sum.Status)
	assert.Len(t, sum.Violations, 1)
	assert.Equal(t, 3, sum.Seats.Available)

	_, ok = s.GetEventSummary("NOPE")
	assert.False(t, ok)
}

func TestConflictProjections(t *testing.T) {
	s := newTestStore()
	mustAddEvent(t, s, eventReq("A", "Hall", "10:00 AM", "12:00 PM", 10))
	mustAddEvent(t, s, eventReq("B", "Hall", "11:00 AM", "01:00 PM", 10))
	mustAddEvent(t, s, eventReq("C", "Lab", "03:00 PM", "04:00 PM", 10))

	reports, ok := s.EventConflicts("B")
	require.True(t, ok)
	require.Len(t, reports, 1)
	assert.Equal(t, "A", reports[0].EventID)
	assert.True(t, reports[0].VenueConflict)
	require.NotNil(t, reports[0].Period)
	assert.Equal(t, "11:00 AM", reports[0].Period.Start)

	_, ok = s.EventConflicts("NOPE")
	assert.False(t, ok)

	preview, err := s.PreviewConflicts(eventReq("D", "Lab", "11:30 AM", "03:00 PM", 10))
	require.NoError(t, err)
	var ids []string
	for _, r := range preview {
		ids = append(ids, r.EventID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, ids, "preview includes rejected events")
	assert.Len(t, s.ListEvents(), 3, "preview does not admit")

	_, err = s.PreviewConflicts(eventReq("D", "Lab", "bad", "03:00 PM", 10))
	assert.ErrorIs(t, err, schedule.ErrInvalidSchedule)

	ov := s.EventsOverview()
	assert.Equal(t, model.EventsOverview{
		Total: 3, Valid: 2, Invalid: 1, EventsWithConflicts: 2, ConflictPairs: 1,
	}, ov)
	assert.Equal(t, map[string]int{"Hall": 2, "Lab": 1}, s.VenueUsage())
}

func TestStudentSummary(t *testing.T) {
	s := newTestStore()
	mustAddEvent(t, s, eventReq("A", "Hall", "10:00 AM", "11:00 AM", 1))
	mustAddEvent(t, s, eventReq("B", "Lab", "01:00 PM", "02:00 PM", 1))
	s.AddStudent("S0", "")
	s.AddStudent("S1", "Ana")
	s.Register("S0", "A")
	s.Register("S1", "A")
	s.Register("S1", "B")
	s.RaiseServiceRequest("R1", "S1", "Other")

	sum, ok := s.StudentSummary("S1")
	require.True(t, ok)
	assert.Equal(t, "Ana", sum.Name)
	assert.Equal(t, 1, sum.Confirmed)
	assert.Equal(t, 1, sum.Waitlisted)
	assert.Equal(t, 1, sum.ServiceRequests)
	require.Len(t, sum.Registrations, 2)
	assert.Equal(t, model.RegistrationWaitlisted, sum.Registrations[0].Status)
	assert.Equal(t, "10:00 AM - 11:00 AM", sum.Registrations[0].Time)

	_, ok = s.StudentSummary("NOPE")
	assert.False(t, ok)

	assert.Equal(t, model.Stats{Students: 2, Events: 2, Registrations: 3, ServiceRequests: 1}, s.Stats())
}
