package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/hunt-api/internal/domain"
)

var visibilities = []interface{}{string(domain.VisibilityPublic), string(domain.VisibilityPrivate)}

type CreateHuntRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
	Visibility    string    `json:"visibility" enums:"public,private"`
	IsPaid        bool      `json:"is_paid"`
	Capacity      *int      `json:"capacity"`
	AllowWaitlist bool      `json:"allow_waitlist"`
	MinimumPax    *int      `json:"minimum_pax"`
}

func (req *CreateHuntRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Location, validation.Length(0, 200)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required, validation.By(after(req.StartDate))),
		validation.Field(&req.Visibility, validation.In(visibilities...)),
		validation.Field(&req.Capacity, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&req.MinimumPax, validation.NilOrNotEmpty, validation.Min(1)),
	)
}

func (req *CreateHuntRequest) ToDomain() domain.Hunt {
	visibility := domain.VisibilityPublic
	if req.Visibility != "" {
		visibility = domain.Visibility(req.Visibility)
	}

	return domain.Hunt{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		StartDate:     req.StartDate.UTC(),
		EndDate:       req.EndDate.UTC(),
		Visibility:    visibility,
		IsPaid:        req.IsPaid,
		Capacity:      req.Capacity,
		AllowWaitlist: req.AllowWaitlist,
		MinimumPax:    req.MinimumPax,
	}
}

// UpdateHuntRequest changes only the fields that are set. ClearCapacity
// makes the hunt unlimited.
type UpdateHuntRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Location      *string    `json:"location"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Visibility    *string    `json:"visibility" enums:"public,private"`
	IsPaid        *bool      `json:"is_paid"`
	AllowWaitlist *bool      `json:"allow_waitlist"`
	Capacity      *int       `json:"capacity"`
	ClearCapacity bool       `json:"clear_capacity"`
	MinimumPax    *int       `json:"minimum_pax"`
}

func (req *UpdateHuntRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Location, validation.Length(0, 200)),
		validation.Field(&req.Visibility, validation.NilOrNotEmpty, validation.In(visibilities...)),
		validation.Field(&req.Capacity, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&req.MinimumPax, validation.NilOrNotEmpty, validation.Min(1)),
	)
	if err != nil {
		return err
	}
	if req.ClearCapacity && req.Capacity != nil {
		return errors.New("capacity and clear_capacity cannot both be set")
	}

	return nil
}

func (req *UpdateHuntRequest) ToDomain() domain.HuntChanges {
	changes := domain.HuntChanges{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		IsPaid:        req.IsPaid,
		AllowWaitlist: req.AllowWaitlist,
		Capacity:      req.Capacity,
		ClearCapacity: req.ClearCapacity,
		MinimumPax:    req.MinimumPax,
	}
	if req.StartDate != nil {
		start := req.StartDate.UTC()
		changes.StartDate = &start
	}
	if req.EndDate != nil {
		end := req.EndDate.UTC()
		changes.EndDate = &end
	}
	if req.Visibility != nil {
		v := domain.Visibility(*req.Visibility)
		changes.Visibility = &v
	}

	return changes
}

// ApproveRequest is the optional body of approve and confirm-payment.
type ApproveRequest struct {
	AcceptOverCapacity bool `json:"accept_over_capacity"`
}

func after(start time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		end, _ := value.(time.Time)
		if !start.IsZero() && !end.After(start) {
			return errors.New("must be after start_date")
		}

		return nil
	}
}
