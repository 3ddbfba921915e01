// Package model defines the core domain types for the campus event system.
package model

import "time"

// RegistrationStatus is the seat outcome assigned to a registration when it
// is created. It is never recomputed afterwards.
type RegistrationStatus string

const (
	RegistrationConfirmed  RegistrationStatus = "Confirmed"
	RegistrationWaitlisted RegistrationStatus = "Waitlisted"
)

// Student is a snapshot of a student and everything it holds.
type Student struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Registrations   []Registration   `json:"registrations"`
	ServiceRequests []ServiceRequest `json:"service_requests"`
}

// Event is a snapshot of an admitted event. IsValid and Violations are
// resolved once, at admission time.
type Event struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Club          string         `json:"club"`
	Date          string         `json:"date"`
	StartTime     string         `json:"start_time"`
	EndTime       string         `json:"end_time"`
	Venue         string         `json:"venue"`
	MaxSeats      int            `json:"max_seats"`
	Sequence      uint64         `json:"sequence"`
	CreatedAt     time.Time      `json:"created_at"`
	IsValid       bool           `json:"is_valid"`
	Violations    []string       `json:"violations"`
	Registrations []Registration `json:"registrations"`
}

// Registration links one student to one event. EventSequence identifies the
// exact event object, which matters once an event id has been overwritten.
type Registration struct {
	ID            string             `json:"id"`
	StudentID     string             `json:"student_id"`
	EventID       string             `json:"event_id"`
	EventSequence uint64             `json:"event_sequence"`
	Status        RegistrationStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ServiceRequest is a ticket raised by a student.
type ServiceRequest struct {
	ID        string        `json:"id"`
	StudentID string        `json:"student_id"`
	Category  string        `json:"category"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// CreateStudentRequest is the payload for adding a student.
type CreateStudentRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateEventRequest is the payload for admitting a new event.
// Dates use YYYY-MM-DD and times use "hh:mm AM/PM".
type CreateEventRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Club      string `json:"club"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Venue     string `json:"venue"`
	MaxSeats  int    `json:"max_seats"`
}

// RegisterRequest is the payload for registering a student for an event.
type RegisterRequest struct {
	StudentID string `json:"student_id"`
}

// RaiseServiceRequest is the payload for raising a service request.
// ID may be left empty; one is generated in that case.
type RaiseServiceRequest struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	Category  string `json:"category"`
}

// UpdateStatusRequest is the payload for changing a service request status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
