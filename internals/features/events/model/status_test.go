package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to EventStatus }{
		{StatusPlanning, StatusSubmittedForApproval},
		{StatusPlanning, StatusCancelled},
		{StatusSubmittedForApproval, StatusPlanning},
		{StatusSubmittedForApproval, StatusCancelled},
		{StatusActive, StatusInProgress},
		{StatusActive, StatusPlanning},
		{StatusActive, StatusCancelled},
		{StatusInProgress, StatusWrapUp},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
		{StatusWrapUp, StatusCompleted},
		{StatusWrapUp, StatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	rejected := []struct{ from, to EventStatus }{
		{StatusPlanning, StatusActive},
		{StatusPlanning, StatusInProgress},
		{StatusPlanning, StatusCompleted},
		// Active is only reachable through approval, never a plain update.
		{StatusSubmittedForApproval, StatusActive},
		{StatusActive, StatusWrapUp},
		{StatusActive, StatusCompleted},
		{StatusInProgress, StatusPlanning},
		{StatusWrapUp, StatusInProgress},
		{StatusCompleted, StatusPlanning},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusPlanning},
		{StatusCancelled, StatusCompleted},
	}
	for _, tc := range rejected {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestCanTransitionSameStatus(t *testing.T) {
	for s := StatusPlanning; s <= StatusCancelled; s++ {
		assert.True(t, CanTransition(s, s), "%s -> %s (no-op) should be allowed", s, s)
	}
}

func TestCanApprove(t *testing.T) {
	assert.True(t, CanApprove(StatusSubmittedForApproval))

	for _, s := range []EventStatus{
		StatusPlanning, StatusActive, StatusInProgress,
		StatusWrapUp, StatusCompleted, StatusCancelled,
	} {
		assert.False(t, CanApprove(s), "approval from %s should be rejected", s)
	}
}

func TestStatusValid(t *testing.T) {
	for s := StatusPlanning; s <= StatusCancelled; s++ {
		assert.True(t, s.Valid())
	}
	assert.False(t, EventStatus(-1).Valid())
	assert.False(t, EventStatus(7).Valid())
}
