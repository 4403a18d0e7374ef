package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vietanh2810/hunt-api/internal/domain"
	"github.com/vietanh2810/hunt-api/internal/repository/dao"
	"github.com/vietanh2810/hunt-api/internal/service"
)

var (
	ErrHuntNotFound         = dao.ErrHuntNotFound
	ErrParticipantNotFound  = dao.ErrParticipantNotFound
	ErrDuplicateParticipant = dao.ErrDuplicateParticipant
	ErrConflict             = dao.ErrConflict
)

type HuntDAO interface {
	Transaction(ctx context.Context, fn func(tx *dao.HuntDAO) error) error
	Insert(ctx context.Context, hunt dao.Hunt) (dao.Hunt, error)
	FindByID(ctx context.Context, id uint) (dao.Hunt, error)
	FindParticipant(ctx context.Context, huntID, userID uint) (dao.Participant, error)
	FindParticipants(ctx context.Context, huntID uint, statuses ...string) ([]dao.Participant, error)
	FindExpired(ctx context.Context, now time.Time) ([]dao.Participant, error)
}

type HuntRepository struct {
	dao HuntDAO
}

func NewHuntRepository(dao HuntDAO) *HuntRepository {
	return &HuntRepository{
		dao: dao,
	}
}

// translate maps storage errors onto the domain errors services match on.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dao.ErrHuntNotFound):
		return domain.ErrHuntNotFound
	case errors.Is(err, dao.ErrParticipantNotFound):
		return domain.ErrNotAParticipant
	case errors.Is(err, dao.ErrDuplicateParticipant):
		return domain.ErrAlreadyParticipant
	case errors.Is(err, dao.ErrConflict):
		return domain.ErrWriteConflict
	}

	return err
}

func (r *HuntRepository) CreateHunt(ctx context.Context, hunt domain.Hunt) (domain.Hunt, error) {
	created, err := r.dao.Insert(ctx, huntDomainToDao(hunt))
	if err != nil {
		return domain.Hunt{}, fmt.Errorf("r.dao.Insert -> %w", translate(err))
	}

	return huntDaoToDomain(created), nil
}

func (r *HuntRepository) GetHunt(ctx context.Context, id uint) (domain.Hunt, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Hunt{}, fmt.Errorf("r.dao.FindByID -> %w", translate(err))
	}

	return huntDaoToDomain(found), nil
}

func (r *HuntRepository) FindParticipant(ctx context.Context, huntID, userID uint) (domain.Participant, error) {
	found, err := r.dao.FindParticipant(ctx, huntID, userID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindParticipant -> %w", translate(err))
	}

	return participantDaoToDomain(found), nil
}

func (r *HuntRepository) ListParticipants(ctx context.Context, huntID uint, statuses ...domain.ParticipantStatus) ([]domain.Participant, error) {
	found, err := r.dao.FindParticipants(ctx, huntID, statusStrings(statuses)...)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindParticipants -> %w", translate(err))
	}

	return participantsDaoToDomain(found), nil
}

func (r *HuntRepository) FindExpiredRequests(ctx context.Context, now time.Time) ([]domain.ParticipantRef, error) {
	found, err := r.dao.FindExpired(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindExpired -> %w", translate(err))
	}

	refs := make([]domain.ParticipantRef, 0, len(found))
	for _, p := range found {
		refs = append(refs, domain.ParticipantRef{HuntID: p.HuntID, UserID: p.UserID})
	}

	return refs, nil
}

// InHuntTx opens a transaction, takes the row lock of the hunt and hands fn a
// view of the hunt bound to that transaction.
func (r *HuntRepository) InHuntTx(ctx context.Context, huntID uint, fn func(tx service.HuntTx) error) error {
	err := r.dao.Transaction(ctx, func(tx *dao.HuntDAO) error {
		locked, err := tx.LockByID(ctx, huntID)
		if err != nil {
			return fmt.Errorf("tx.LockByID -> %w", translate(err))
		}

		return fn(&huntTx{dao: tx, hunt: huntDaoToDomain(locked)})
	})

	return translate(err)
}

// huntTx implements service.HuntTx on top of a locked transaction.
type huntTx struct {
	dao  *dao.HuntDAO
	hunt domain.Hunt
}

func (t *huntTx) Hunt() domain.Hunt {
	return t.hunt
}

func (t *huntTx) SaveHunt(ctx context.Context, hunt domain.Hunt) (domain.Hunt, error) {
	hunt.ID = t.hunt.ID
	hunt.CreatedAt = t.hunt.CreatedAt

	saved, err := t.dao.Update(ctx, huntDomainToDao(hunt))
	if err != nil {
		return domain.Hunt{}, fmt.Errorf("t.dao.Update -> %w", translate(err))
	}
	t.hunt = huntDaoToDomain(saved)

	return t.hunt, nil
}

func (t *huntTx) DeleteHunt(ctx context.Context) error {
	if err := t.dao.Delete(ctx, t.hunt.ID); err != nil {
		return fmt.Errorf("t.dao.Delete -> %w", translate(err))
	}

	return nil
}

func (t *huntTx) FindParticipant(ctx context.Context, userID uint) (domain.Participant, error) {
	found, err := t.dao.FindParticipant(ctx, t.hunt.ID, userID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("t.dao.FindParticipant -> %w", translate(err))
	}

	return participantDaoToDomain(found), nil
}

func (t *huntTx) Participants(ctx context.Context, statuses ...domain.ParticipantStatus) ([]domain.Participant, error) {
	found, err := t.dao.FindParticipants(ctx, t.hunt.ID, statusStrings(statuses)...)
	if err != nil {
		return nil, fmt.Errorf("t.dao.FindParticipants -> %w", translate(err))
	}

	return participantsDaoToDomain(found), nil
}

// SaveParticipant refuses rows that break the participant invariants or
// belong to another hunt.
func (t *huntTx) SaveParticipant(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	if p.HuntID == 0 {
		p.HuntID = t.hunt.ID
	}
	if p.HuntID != t.hunt.ID {
		return domain.Participant{}, fmt.Errorf("participant of hunt %d saved in hunt %d", p.HuntID, t.hunt.ID)
	}
	if err := p.Validate(); err != nil {
		return domain.Participant{}, fmt.Errorf("p.Validate -> %w", err)
	}

	saved, err := t.dao.SaveParticipant(ctx, participantDomainToDao(p))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("t.dao.SaveParticipant -> %w", translate(err))
	}

	return participantDaoToDomain(saved), nil
}

func (t *huntTx) ConfirmedCount(ctx context.Context) (int, error) {
	count, err := t.dao.CountParticipants(ctx, t.hunt.ID, string(domain.StatusConfirmed))
	if err != nil {
		return 0, fmt.Errorf("t.dao.CountParticipants -> %w", translate(err))
	}

	return count, nil
}

func (t *huntTx) PendingCount(ctx context.Context) (int, error) {
	count, err := t.dao.CountParticipants(ctx, t.hunt.ID, string(domain.StatusPending))
	if err != nil {
		return 0, fmt.Errorf("t.dao.CountParticipants -> %w", translate(err))
	}

	return count, nil
}

func (t *huntTx) HasInTransition(ctx context.Context) (bool, error) {
	ok, err := t.dao.HasInTransition(ctx, t.hunt.ID)
	if err != nil {
		return false, fmt.Errorf("t.dao.HasInTransition -> %w", translate(err))
	}

	return ok, nil
}

func (t *huntTx) HasConfirmedPayments(ctx context.Context) (bool, error) {
	ok, err := t.dao.HasConfirmedPayments(ctx, t.hunt.ID)
	if err != nil {
		return false, fmt.Errorf("t.dao.HasConfirmedPayments -> %w", translate(err))
	}

	return ok, nil
}

func (t *huntTx) NextWaitlistPosition(ctx context.Context) (int, error) {
	highest, err := t.dao.MaxWaitlistPosition(ctx, t.hunt.ID)
	if err != nil {
		return 0, fmt.Errorf("t.dao.MaxWaitlistPosition -> %w", translate(err))
	}

	return highest + 1, nil
}

func (t *huntTx) NextWaitlisted(ctx context.Context, limit int) ([]domain.Participant, error) {
	found, err := t.dao.FindWaitlisted(ctx, t.hunt.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("t.dao.FindWaitlisted -> %w", translate(err))
	}

	return participantsDaoToDomain(found), nil
}

func huntDomainToDao(h domain.Hunt) dao.Hunt {
	return dao.Hunt{
		ID:                          h.ID,
		OwnerID:                     h.OwnerID,
		Title:                       h.Title,
		Description:                 h.Description,
		Location:                    h.Location,
		StartDate:                   h.StartDate,
		EndDate:                     h.EndDate,
		Visibility:                  string(h.Visibility),
		IsPaid:                      h.IsPaid,
		Capacity:                    h.Capacity,
		AllowWaitlist:               h.AllowWaitlist,
		MinimumPax:                  h.MinimumPax,
		HasParticipantsInTransition: h.HasParticipantsInTransition,
		CreatedAt:                   h.CreatedAt,
		UpdatedAt:                   h.UpdatedAt,
	}
}

func huntDaoToDomain(h dao.Hunt) domain.Hunt {
	return domain.Hunt{
		ID:                          h.ID,
		OwnerID:                     h.OwnerID,
		Title:                       h.Title,
		Description:                 h.Description,
		Location:                    h.Location,
		StartDate:                   h.StartDate.UTC(),
		EndDate:                     h.EndDate.UTC(),
		Visibility:                  domain.Visibility(h.Visibility),
		IsPaid:                      h.IsPaid,
		Capacity:                    h.Capacity,
		AllowWaitlist:               h.AllowWaitlist,
		MinimumPax:                  h.MinimumPax,
		HasParticipantsInTransition: h.HasParticipantsInTransition,
		CreatedAt:                   h.CreatedAt,
		UpdatedAt:                   h.UpdatedAt,
	}
}

func participantDomainToDao(p domain.Participant) dao.Participant {
	return dao.Participant{
		ID:                  p.ID,
		HuntID:              p.HuntID,
		UserID:              p.UserID,
		Status:              string(p.Status),
		PaymentStatus:       string(p.PaymentStatus),
		WaitlistPosition:    p.WaitlistPosition,
		JoinedAt:            p.JoinedAt,
		RequestExpiresAt:    p.RequestExpiresAt,
		IsPaymentProcessing: p.IsPaymentProcessing,
		PaidAt:              p.PaidAt,
		RejectionCount:      p.RejectionCount,
		LastRejectedAt:      p.LastRejectedAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func participantDaoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:                  p.ID,
		HuntID:              p.HuntID,
		UserID:              p.UserID,
		Status:              domain.ParticipantStatus(p.Status),
		PaymentStatus:       domain.PaymentStatus(p.PaymentStatus),
		WaitlistPosition:    p.WaitlistPosition,
		JoinedAt:            p.JoinedAt,
		RequestExpiresAt:    p.RequestExpiresAt,
		IsPaymentProcessing: p.IsPaymentProcessing,
		PaidAt:              p.PaidAt,
		RejectionCount:      p.RejectionCount,
		LastRejectedAt:      p.LastRejectedAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func participantsDaoToDomain(found []dao.Participant) []domain.Participant {
	participants := make([]domain.Participant, 0, len(found))
	for _, p := range found {
		participants = append(participants, participantDaoToDomain(p))
	}

	return participants
}

func statusStrings(statuses []domain.ParticipantStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}

	return out
}
