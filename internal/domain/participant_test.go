package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticipantValidate(t *testing.T) {
	paidAt := now

	tests := []struct {
		name    string
		p       Participant
		wantErr bool
	}{
		{name: "confirmed free", p: Participant{Status: StatusConfirmed, PaymentStatus: PaymentNotRequired}},
		{name: "waitlisted with position", p: Participant{Status: StatusWaitlisted, PaymentStatus: PaymentPending, WaitlistPosition: intPtr(1)}},
		{name: "waitlisted without position", p: Participant{Status: StatusWaitlisted, PaymentStatus: PaymentNotRequired}, wantErr: true},
		{name: "position on a pending row", p: Participant{Status: StatusPending, PaymentStatus: PaymentPending, WaitlistPosition: intPtr(2)}, wantErr: true},
		{name: "completed payment while pending", p: Participant{Status: StatusPending, PaymentStatus: PaymentCompleted, PaidAt: &paidAt}, wantErr: true},
		{name: "completed payment without date", p: Participant{Status: StatusConfirmed, PaymentStatus: PaymentCompleted}, wantErr: true},
		{name: "completed payment", p: Participant{Status: StatusConfirmed, PaymentStatus: PaymentCompleted, PaidAt: &paidAt}},
		{name: "unknown status", p: Participant{Status: "maybe", PaymentStatus: PaymentNotRequired}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusWaitlisted, StatusConfirmed))
	assert.True(t, CanTransition(StatusCancelled, StatusWaitlisted))
	assert.False(t, CanTransition(StatusConfirmed, StatusPending))
	assert.False(t, CanTransition(StatusCancelled, StatusCancelled))
}

func TestHuntChanges(t *testing.T) {
	h := Hunt{Visibility: VisibilityPublic, Capacity: intPtr(4)}

	assert.False(t, HuntChanges{Capacity: intPtr(4)}.TouchesCapacity(h))
	assert.True(t, HuntChanges{Capacity: intPtr(5)}.TouchesCapacity(h))
	assert.True(t, HuntChanges{ClearCapacity: true}.TouchesCapacity(h))

	private := VisibilityPrivate
	assert.True(t, HuntChanges{Visibility: &private}.TouchesSettings(h))
	assert.False(t, HuntChanges{Capacity: intPtr(5)}.TouchesSettings(h))
}
