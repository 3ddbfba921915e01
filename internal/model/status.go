package model

import "strings"

// RequestStatus is the workflow state of a service request.
type RequestStatus string

const (
	RequestOpen       RequestStatus = "Open"
	RequestInProgress RequestStatus = "In-Progress"
	RequestResolved   RequestStatus = "Resolved"
)

// RequestStatuses lists every request status in workflow order.
func RequestStatuses() []RequestStatus {
	return []RequestStatus{RequestOpen, RequestInProgress, RequestResolved}
}

// Valid reports whether s is one of the known request statuses.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestOpen, RequestInProgress, RequestResolved:
		return true
	}
	return false
}

// CanTransition reports whether a request may move from s to next.
// The workflow is permissive: any known status may follow any other.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	return s.Valid() && next.Valid()
}

// ParseRequestStatus accepts the wire values ("Open", "In-Progress",
// "Resolved") as well as the upper-case constant spellings such as
// "IN_PROGRESS".
func ParseRequestStatus(raw string) (RequestStatus, bool) {
	norm := strings.ToUpper(strings.TrimSpace(raw))
	norm = strings.ReplaceAll(norm, "-", "_")
	switch norm {
	case "OPEN":
		return RequestOpen, true
	case "IN_PROGRESS":
		return RequestInProgress, true
	case "RESOLVED":
		return RequestResolved, true
	}
	return "", false
}
