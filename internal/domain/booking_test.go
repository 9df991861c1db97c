package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingStatus(t *testing.T) {
	for _, label := range []string{"Pending", "InProgress", "Completed", "Cancelled"} {
		s, ok := ParseBookingStatus(label)
		assert.True(t, ok, label)
		assert.Equal(t, BookingStatus(label), s)
	}

	_, ok := ParseBookingStatus("Bogus")
	assert.False(t, ok)

	_, ok = ParseBookingStatus("pending") // labels are case sensitive
	assert.False(t, ok)
}

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusInProgress))
	assert.True(t, BookingStatusInProgress.CanTransitionTo(BookingStatusPending))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCompleted))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCancelled))
	assert.True(t, BookingStatusInProgress.CanTransitionTo(BookingStatusCancelled))

	// terminal states only allow the no-op
	assert.False(t, BookingStatusCompleted.CanTransitionTo(BookingStatusPending))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusInProgress))
	assert.True(t, BookingStatusCompleted.CanTransitionTo(BookingStatusCompleted))
}

func TestRoleSatisfies(t *testing.T) {
	assert.True(t, RoleSatisfies(RoleAdmin, RoleAgent))
	assert.True(t, RoleSatisfies(RoleAgent, RoleAgent))
	assert.False(t, RoleSatisfies(RoleAgent, RoleAdmin))
	assert.False(t, RoleSatisfies("viewer", RoleAgent))
}
