package domain

import "time"

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

type Hunt struct {
	ID          uint      `json:"id"`
	OwnerID     uint      `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`

	Visibility    Visibility `json:"visibility"`
	IsPaid        bool       `json:"is_paid"`
	Capacity      *int       `json:"capacity"` // nil means unlimited
	AllowWaitlist bool       `json:"allow_waitlist"`
	MinimumPax    *int       `json:"minimum_pax,omitempty"`

	// HasParticipantsInTransition caches HasInTransition over the hunt's
	// participants. It is recomputed after every participation transition.
	HasParticipantsInTransition bool `json:"has_participants_in_transition"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h Hunt) IsPrivate() bool {
	return h.Visibility == VisibilityPrivate
}

func (h Hunt) IsCreator(userID uint) bool {
	return h.OwnerID == userID
}

// IsFull reports whether confirmed participants fill the hunt.
func (h Hunt) IsFull(confirmed int) bool {
	return h.Capacity != nil && confirmed >= *h.Capacity
}

// PurgeAt is the moment the waitlist is cleared before the hunt starts.
func (h Hunt) PurgeAt() time.Time {
	return h.StartDate.Add(-PreStartOffset)
}

// HuntChanges holds the owner-proposed settings update. Nil fields are left
// untouched. ClearCapacity makes the hunt unlimited.
type HuntChanges struct {
	Title         *string
	Description   *string
	Location      *string
	StartDate     *time.Time
	EndDate       *time.Time
	Visibility    *Visibility
	IsPaid        *bool
	AllowWaitlist *bool
	Capacity      *int
	ClearCapacity bool
	MinimumPax    *int
}

// TouchesSettings reports whether the change alters admission rules, which
// is only allowed once no participant is pending or waitlisted.
func (c HuntChanges) TouchesSettings(h Hunt) bool {
	if c.Visibility != nil && *c.Visibility != h.Visibility {
		return true
	}
	if c.IsPaid != nil && *c.IsPaid != h.IsPaid {
		return true
	}
	if c.AllowWaitlist != nil && *c.AllowWaitlist != h.AllowWaitlist {
		return true
	}

	return false
}

// TouchesCapacity reports whether the change alters the capacity.
func (c HuntChanges) TouchesCapacity(h Hunt) bool {
	if c.ClearCapacity {
		return h.Capacity != nil
	}
	if c.Capacity == nil {
		return false
	}

	return h.Capacity == nil || *h.Capacity != *c.Capacity
}

// Apply returns h with every non-capacity change applied.
func (c HuntChanges) Apply(h Hunt) Hunt {
	if c.Title != nil {
		h.Title = *c.Title
	}
	if c.Description != nil {
		h.Description = *c.Description
	}
	if c.Location != nil {
		h.Location = *c.Location
	}
	if c.StartDate != nil {
		h.StartDate = *c.StartDate
	}
	if c.EndDate != nil {
		h.EndDate = *c.EndDate
	}
	if c.Visibility != nil {
		h.Visibility = *c.Visibility
	}
	if c.IsPaid != nil {
		h.IsPaid = *c.IsPaid
	}
	if c.AllowWaitlist != nil {
		h.AllowWaitlist = *c.AllowWaitlist
	}
	if c.MinimumPax != nil {
		h.MinimumPax = c.MinimumPax
	}

	return h
}

// HuntSummary is the participation snapshot shown on a hunt page.
type HuntSummary struct {
	HuntID                      uint `json:"hunt_id"`
	Capacity                    *int `json:"capacity"`
	ConfirmedCount              int  `json:"confirmed_count"`
	PendingCount                int  `json:"pending_count"`
	WaitlistedCount             int  `json:"waitlisted_count"`
	AvailableSpots              *int `json:"available_spots"`
	MinimumPaxMet               bool `json:"minimum_pax_met"`
	HasParticipantsInTransition bool `json:"has_participants_in_transition"`
}

type User struct {
	ID               uint   `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	EmailVerified    bool   `json:"email_verified"`
	PaymentAccountID string `json:"-"`
	HuntsJoined      int    `json:"hunts_joined"`
}

// PaymentCapability is what an owner needs before creating a paid hunt.
type PaymentCapability struct {
	EmailVerified     bool
	HasPaymentAccount bool
}

func (c PaymentCapability) CanHostPaidHunt() bool {
	return c.EmailVerified && c.HasPaymentAccount
}
