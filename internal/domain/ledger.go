package domain

import "sort"

// The functions below are the capacity ledger and waitlist queue over an
// in-memory participant set. Stores answer the same questions with
// aggregate queries.

func CountByStatus(participants []Participant, status ParticipantStatus) int {
	n := 0
	for _, p := range participants {
		if p.Status == status {
			n++
		}
	}

	return n
}

func ConfirmedCount(participants []Participant) int {
	return CountByStatus(participants, StatusConfirmed)
}

func HasInTransition(participants []Participant) bool {
	for _, p := range participants {
		if p.Status.InTransition() {
			return true
		}
	}

	return false
}

func HasConfirmedPayments(participants []Participant) bool {
	for _, p := range participants {
		if p.HasCompletedPayment() {
			return true
		}
	}

	return false
}

// NextWaitlistPosition is one past the highest position in use, or 1.
func NextWaitlistPosition(participants []Participant) int {
	highest := 0
	for _, p := range participants {
		if p.Status == StatusWaitlisted && p.WaitlistPosition != nil && *p.WaitlistPosition > highest {
			highest = *p.WaitlistPosition
		}
	}

	return highest + 1
}

// Waitlist returns the waitlisted participants in promotion order:
// ascending position, then ascending join time.
func Waitlist(participants []Participant) []Participant {
	queue := make([]Participant, 0, len(participants))
	for _, p := range participants {
		if p.Status == StatusWaitlisted {
			queue = append(queue, p)
		}
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return WaitlistLess(queue[i], queue[j])
	})

	return queue
}

func WaitlistLess(a, b Participant) bool {
	pa, pb := position(a), position(b)
	if pa != pb {
		return pa < pb
	}

	return a.JoinedAt.Before(b.JoinedAt)
}

func position(p Participant) int {
	if p.WaitlistPosition == nil {
		return 0
	}

	return *p.WaitlistPosition
}

// NextWaitlistedUser returns the head of the waitlist.
func NextWaitlistedUser(participants []Participant) (Participant, bool) {
	queue := Waitlist(participants)
	if len(queue) == 0 {
		return Participant{}, false
	}

	return queue[0], true
}

// MetMinimumPax reports whether enough participants are confirmed. Only
// confirmed participants count.
func MetMinimumPax(h Hunt, confirmed int) bool {
	if h.MinimumPax == nil {
		return confirmed > 0
	}

	return confirmed >= *h.MinimumPax
}

func Summarize(h Hunt, participants []Participant) HuntSummary {
	confirmed := ConfirmedCount(participants)
	summary := HuntSummary{
		HuntID:                      h.ID,
		Capacity:                    h.Capacity,
		ConfirmedCount:              confirmed,
		PendingCount:                CountByStatus(participants, StatusPending),
		WaitlistedCount:             CountByStatus(participants, StatusWaitlisted),
		MinimumPaxMet:               MetMinimumPax(h, confirmed),
		HasParticipantsInTransition: HasInTransition(participants),
	}
	if h.Capacity != nil {
		available := *h.Capacity - confirmed
		if available < 0 {
			available = 0
		}
		summary.AvailableSpots = &available
	}

	return summary
}
