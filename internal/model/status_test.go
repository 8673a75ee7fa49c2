package model

import "testing"

func TestJobStatus_String(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected string
	}{
		{JobStatusPending, "Pending"},
		{JobStatusRunning, "Running"},
		{JobStatusCompleted, "Completed"},
		{JobStatusError, "Error"},
	}

	for _, test := range tests {
		if got := test.status.String(); got != test.expected {
			t.Errorf("String() = %s, expected %s", got, test.expected)
		}
	}
}

func TestJobStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusPending, false},
		{JobStatusRunning, false},
		{JobStatusCompleted, true},
		{JobStatusError, true},
	}

	for _, test := range tests {
		if got := test.status.IsFinished(); got != test.expected {
			t.Errorf("IsFinished() for %s = %v, expected %v", test.status, got, test.expected)
		}
	}
}
