// Package repository is the in-memory entity store for students, events,
// registrations and service requests. It also hosts the decision logic that
// runs inside each mutation: event admission, seat assignment and the
// service-request workflow.
//
// Every mutating method holds a single exclusive lock for its whole
// read-then-write sequence, so admission scans and seat counts never observe
// a half-applied mutation. Read-only projections share a read lock.
package repository

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/campus-events/internal/model"
	"github.com/Shivanand-hulikatti/campus-events/internal/schedule"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidCapacity is returned when an event is submitted with fewer than one seat.
var ErrInvalidCapacity = errors.New("max seats must be a positive integer")

// ErrDuplicateRequest is returned by RaiseUniqueServiceRequest when the id is taken.
var ErrDuplicateRequest = errors.New("service request already exists")

type studentRecord struct {
	id            string
	name          string
	registrations []int // indexes into Store.registrations
	requests      []int // indexes into Store.requests
}

type eventRecord struct {
	id         string
	title      string
	club       string
	date       string
	startTime  string
	endTime    string
	venue      string
	maxSeats   int
	seq        uint64
	createdAt  time.Time
	slot       schedule.Slot
	valid      bool
	violations []string

	registrations []int // indexes into Store.registrations, arrival order
}

type registrationRecord struct {
	id        string
	studentID string
	eventSeq  uint64
	status    model.RegistrationStatus
	createdAt time.Time
}

type requestRecord struct {
	id        string
	studentID string
	category  string
	status    model.RequestStatus
	createdAt time.Time
}

type pairKey struct {
	studentID string
	eventSeq  uint64
}

// Store owns every entity collection. Events live in an arena keyed by their
// creation sequence; the id index points at the current object for each id,
// so an overwritten event stays reachable through its registrations.
type Store struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func() string

	students     map[string]*studentRecord
	studentOrder []string

	seq        uint64
	events     map[uint64]*eventRecord
	eventOrder []uint64 // every admitted sequence, ascending
	eventIndex map[string]uint64

	registrations []registrationRecord
	pairs         map[pairKey]int

	requests     []requestRecord
	requestIndex map[string]int
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how registration ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// NewStore constructs an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
		students:     make(map[string]*studentRecord),
		events:       make(map[uint64]*eventRecord),
		eventIndex:   make(map[string]uint64),
		pairs:        make(map[pairKey]int),
		requestIndex: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddStudent creates the student if the id is new and returns it. A repeated
// id is a no-op that returns the existing student with its original name;
// created reports which case happened.
func (s *Store) AddStudent(id, name string) (student model.Student, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.students[id]; ok {
		return s.studentSnapshot(rec), false
	}
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("Student %s", id)
	}
	rec := &studentRecord{id: id, name: name}
	s.students[id] = rec
	s.studentOrder = append(s.studentOrder, id)
	return s.studentSnapshot(rec), true
}

// GetStudent returns the student with the given id.
func (s *Store) GetStudent(id string) (model.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.students[id]
	if !ok {
		return model.Student{}, false
	}
	return s.studentSnapshot(rec), true
}

// ListStudents returns all students in the order they were added.
func (s *Store) ListStudents() []model.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Student, 0, len(s.studentOrder))
	for _, id := range s.studentOrder {
		out = append(out, s.studentSnapshot(s.students[id]))
	}
	return out
}

// Stats reports the size of each collection.
func (s *Store) Stats() model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.Stats{
		Students:        len(s.students),
		Events:          len(s.eventIndex),
		Registrations:   len(s.registrations),
		ServiceRequests: len(s.requestIndex),
	}
}

func (s *Store) studentSnapshot(rec *studentRecord) model.Student {
	st := model.Student{
		ID:              rec.id,
		Name:            rec.name,
		Registrations:   make([]model.Registration, 0, len(rec.registrations)),
		ServiceRequests: make([]model.ServiceRequest, 0, len(rec.requests)),
	}
	for _, i := range rec.registrations {
		st.Registrations = append(st.Registrations, s.registrationSnapshot(i))
	}
	for _, i := range rec.requests {
		st.ServiceRequests = append(st.ServiceRequests, s.requests[i].snapshot())
	}
	return st
}
