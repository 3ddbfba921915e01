package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequestStatus(t *testing.T) {
	tests := map[string]RequestStatus{
		"Open":        RequestOpen,
		"In-Progress": RequestInProgress,
		"IN_PROGRESS": RequestInProgress,
		" resolved ":  RequestResolved,
	}
	for in, want := range tests {
		got, ok := ParseRequestStatus(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseRequestStatus("Closed")
	assert.False(t, ok)
}

func TestCanTransition_AnyToAny(t *testing.T) {
	for _, from := range RequestStatuses() {
		for _, to := range RequestStatuses() {
			assert.True(t, from.CanTransition(to), "%s -> %s", from, to)
		}
		assert.False(t, from.CanTransition("Closed"))
	}
}
