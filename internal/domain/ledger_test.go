package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func waitlisted(userID uint, pos int, joinedAt time.Time) Participant {
	return Participant{UserID: userID, Status: StatusWaitlisted, PaymentStatus: PaymentNotRequired, WaitlistPosition: intPtr(pos), JoinedAt: joinedAt}
}

func TestWaitlistOrdering(t *testing.T) {
	participants := []Participant{
		waitlisted(1, 3, now),
		{UserID: 2, Status: StatusConfirmed},
		waitlisted(3, 1, now.Add(time.Minute)),
		waitlisted(4, 1, now),
		{UserID: 5, Status: StatusCancelled},
	}

	queue := Waitlist(participants)
	require.Len(t, queue, 3)
	assert.Equal(t, []uint{4, 3, 1}, []uint{queue[0].UserID, queue[1].UserID, queue[2].UserID})

	head, ok := NextWaitlistedUser(participants)
	require.True(t, ok)
	assert.Equal(t, uint(4), head.UserID)

	_, ok = NextWaitlistedUser(nil)
	assert.False(t, ok)
}

func TestNextWaitlistPosition(t *testing.T) {
	assert.Equal(t, 1, NextWaitlistPosition(nil))
	assert.Equal(t, 6, NextWaitlistPosition([]Participant{waitlisted(1, 2, now), waitlisted(2, 5, now)}))
}

func TestLedgerQueries(t *testing.T) {
	paidAt := now
	participants := []Participant{
		{Status: StatusConfirmed, PaymentStatus: PaymentCompleted, PaidAt: &paidAt},
		{Status: StatusConfirmed, PaymentStatus: PaymentMarkedPaid},
		{Status: StatusPending, PaymentStatus: PaymentPending},
		{Status: StatusCancelled},
	}

	assert.Equal(t, 2, ConfirmedCount(participants))
	assert.True(t, HasInTransition(participants))
	assert.True(t, HasConfirmedPayments(participants))

	assert.False(t, HasConfirmedPayments(participants[1:]))
	assert.False(t, HasInTransition([]Participant{participants[0], participants[3]}))
}

func TestSummarize(t *testing.T) {
	h := Hunt{ID: 7, Capacity: intPtr(3), MinimumPax: intPtr(2)}
	participants := []Participant{
		{Status: StatusConfirmed},
		{Status: StatusConfirmed},
		waitlisted(3, 1, now),
		{Status: StatusPending},
	}

	s := Summarize(h, participants)
	assert.Equal(t, 2, s.ConfirmedCount)
	assert.Equal(t, 1, s.PendingCount)
	assert.Equal(t, 1, s.WaitlistedCount)
	require.NotNil(t, s.AvailableSpots)
	assert.Equal(t, 1, *s.AvailableSpots)
	assert.True(t, s.MinimumPaxMet)
	assert.True(t, s.HasParticipantsInTransition)

	// Waitlisted and pending rows never count towards the minimum.
	assert.False(t, MetMinimumPax(h, 1))
	assert.Nil(t, Summarize(Hunt{}, participants).AvailableSpots)
}
