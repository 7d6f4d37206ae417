package domain_test

import (
	"testing"
	"time"

	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRosterStatusExpired(t *testing.T) {
	now := time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC)

	past := domain.BusyUntil(now.Add(-time.Minute))
	assert.True(t, past.Expired(now))

	exact := domain.BusyUntil(now)
	assert.True(t, exact.Expired(now), "an expiry equal to now has elapsed")

	future := domain.BusyUntil(now.Add(time.Minute))
	assert.False(t, future.Expired(now))

	// Crossing midnight: an expiry at 00:30 the next day is still in the
	// future at 23:50, because the status carries the absolute instant.
	lateNow := time.Date(2024, 1, 15, 23, 50, 0, 0, time.UTC)
	afterMidnight := domain.BusyUntil(time.Date(2024, 1, 16, 0, 30, 0, 0, time.UTC))
	assert.False(t, afterMidnight.Expired(lateNow))

	for _, s := range []domain.RosterStatus{
		domain.Available(), domain.Next(), domain.Busy(), domain.OnBreak(), domain.Off(),
	} {
		assert.False(t, s.Expired(now), "non-timed status %s never expires", s.Kind)
	}
}

func TestRosterStatusQueueEligible(t *testing.T) {
	assert.True(t, domain.Available().QueueEligible())
	assert.True(t, domain.OnBreak().QueueEligible())
	assert.False(t, domain.Off().QueueEligible())
	assert.False(t, domain.Busy().QueueEligible())
	assert.False(t, domain.BusyUntil(time.Now()).QueueEligible())
	assert.False(t, domain.Next().QueueEligible())
}

func TestRosterEntryOccupied(t *testing.T) {
	assert.False(t, domain.RosterEntry{Position: 1}.Occupied())
	assert.True(t, domain.RosterEntry{Position: 1, StaffName: "Anong"}.Occupied())
}
