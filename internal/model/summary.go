package model

// Event validity labels used in summaries.
const (
	EventStatusValid   = "Valid"
	EventStatusInvalid = "Invalid Schedule"
)

// SeatSummary is the seat distribution of one event.
type SeatSummary struct {
	Max        int `json:"max"`
	Confirmed  int `json:"confirmed"`
	Waitlisted int `json:"waitlisted"`
	Available  int `json:"available"`
}

// EventSummary is the read-side projection of a single event.
type EventSummary struct {
	EventID    string      `json:"event_id"`
	Title      string      `json:"title"`
	Club       string      `json:"club"`
	Date       string      `json:"date"`
	Time       string      `json:"time"`
	Venue      string      `json:"venue"`
	Seats      SeatSummary `json:"seats"`
	Violations []string    `json:"violations"`
	Status     string      `json:"status"`
}

// RequestSummary maps every request status to its count.
type RequestSummary map[RequestStatus]int

// ConflictPeriod is the overlap window of two events, formatted for display.
type ConflictPeriod struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ConflictReport describes a conflict between a subject event and another one.
type ConflictReport struct {
	EventID       string          `json:"event_id"`
	Title         string          `json:"title"`
	TimeConflict  bool            `json:"time_conflict"`
	VenueConflict bool            `json:"venue_conflict"`
	Period        *ConflictPeriod `json:"conflict_period,omitempty"`
	Description   string          `json:"description"`
}

// EventsOverview aggregates validity and conflicts across all stored events.
type EventsOverview struct {
	Total               int `json:"total"`
	Valid               int `json:"valid"`
	Invalid             int `json:"invalid"`
	EventsWithConflicts int `json:"events_with_conflicts"`
	ConflictPairs       int `json:"conflict_pairs"`
}

// StudentRegistration is a registration joined with its event details.
type StudentRegistration struct {
	RegistrationID string             `json:"registration_id"`
	EventID        string             `json:"event_id"`
	Title          string             `json:"title"`
	Date           string             `json:"date"`
	Time           string             `json:"time"`
	Venue          string             `json:"venue"`
	Status         RegistrationStatus `json:"status"`
}

// StudentSummary is the roster view of a single student.
type StudentSummary struct {
	StudentID       string                `json:"student_id"`
	Name            string                `json:"name"`
	Confirmed       int                   `json:"confirmed"`
	Waitlisted      int                   `json:"waitlisted"`
	ServiceRequests int                   `json:"service_requests"`
	Registrations   []StudentRegistration `json:"registrations"`
	Requests        []ServiceRequest      `json:"requests"`
}

// Stats holds collection sizes, reported by the health endpoint.
type Stats struct {
	Students        int `json:"students"`
	Events          int `json:"events"`
	Registrations   int `json:"registrations"`
	ServiceRequests int `json:"service_requests"`
}
