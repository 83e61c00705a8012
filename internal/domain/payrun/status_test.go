package payrun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to BatchStatus
	}{
		{StatusDraft, StatusCalculating},
		{StatusDraft, StatusCancelled},
		{StatusCalculating, StatusCalculated},
		{StatusCalculating, StatusDraft},
		{StatusCalculated, StatusReviewed},
		{StatusCalculated, StatusApproved},
		{StatusCalculated, StatusCalculating},
		{StatusReviewed, StatusApproved},
		{StatusApproved, StatusLocked},
		{StatusLocked, StatusRemitted},
	}
	for _, c := range allowed {
		assert.True(t, c.from.CanTransitionTo(c.to), "%s -> %s must be allowed", c.from, c.to)
	}

	denied := []struct {
		from, to BatchStatus
	}{
		{StatusDraft, StatusCalculated},
		{StatusDraft, StatusApproved},
		{StatusCalculated, StatusLocked},
		{StatusReviewed, StatusCalculating},
		{StatusApproved, StatusCalculating},
		{StatusLocked, StatusCancelled},
		{StatusLocked, StatusDraft},
		{StatusRemitted, StatusLocked},
		{StatusCancelled, StatusDraft},
	}
	for _, c := range denied {
		assert.False(t, c.from.CanTransitionTo(c.to), "%s -> %s must be denied", c.from, c.to)
	}
}

func TestBatchStatusCancellableBeforeLock(t *testing.T) {
	for _, s := range []BatchStatus{StatusDraft, StatusCalculating, StatusCalculated, StatusReviewed, StatusApproved} {
		assert.True(t, s.CanTransitionTo(StatusCancelled), "%s must be cancellable", s)
	}
	for _, s := range []BatchStatus{StatusLocked, StatusRemitted, StatusCancelled} {
		assert.False(t, s.CanTransitionTo(StatusCancelled), "%s must not be cancellable", s)
	}
}

func TestBatchStatusIsLocked(t *testing.T) {
	assert.True(t, StatusLocked.IsLocked())
	assert.True(t, StatusRemitted.IsLocked())
	for _, s := range []BatchStatus{StatusDraft, StatusCalculating, StatusCalculated, StatusReviewed, StatusApproved, StatusCancelled} {
		assert.False(t, s.IsLocked(), "%s is not locked", s)
	}
}

func TestBatchStatusCanRecalculate(t *testing.T) {
	assert.True(t, StatusDraft.CanRecalculate())
	assert.True(t, StatusCalculated.CanRecalculate())
	for _, s := range []BatchStatus{StatusReviewed, StatusApproved, StatusLocked, StatusRemitted, StatusCancelled} {
		assert.False(t, s.CanRecalculate(), "%s must not recalculate", s)
	}
}

func TestBatchStatusTerminal(t *testing.T) {
	assert.True(t, StatusRemitted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusLocked.IsTerminal())
	assert.False(t, StatusDraft.IsTerminal())
}

func TestBatchStatusIsValid(t *testing.T) {
	assert.True(t, StatusDraft.IsValid())
	assert.False(t, BatchStatus("PENDING").IsValid())
}
