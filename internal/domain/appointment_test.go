package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"completed is terminal", StatusCompleted, StatusPending, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"no-op transition rejected", StatusConfirmed, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "CONFIRMED", "CANCELLED", "COMPLETED"} {
		status, ok := ParseStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, AppointmentStatus(valid), status)
	}

	for _, invalid := range []string{"", "pending", "DONE", "ARCHIVED"} {
		_, ok := ParseStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestOccupiesSlot(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).OccupiesSlot())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).OccupiesSlot())
	assert.True(t, (&Appointment{Status: StatusCompleted}).OccupiesSlot())
	assert.False(t, (&Appointment{Status: StatusCancelled}).OccupiesSlot())
}

func TestScopeCanSee(t *testing.T) {
	owner := UserScope(42)
	assert.True(t, owner.CanSee(42))
	assert.False(t, owner.CanSee(7))

	admin := AdminScope(1)
	assert.True(t, admin.CanSee(42))
	assert.True(t, admin.CanSee(7))
}
