package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Participant struct {
	ID     uint `gorm:"primaryKey"`
	HuntID uint `gorm:"not null;uniqueIndex:idx_participants_hunt_user"`
	UserID uint `gorm:"not null;uniqueIndex:idx_participants_hunt_user;index"`

	Status           string `gorm:"size:16;not null;index"`
	PaymentStatus    string `gorm:"size:16;not null;default:'not_required'"`
	WaitlistPosition *int
	JoinedAt         time.Time  `gorm:"not null"`
	RequestExpiresAt *time.Time `gorm:"index"`

	IsPaymentProcessing bool `gorm:"not null;default:false"`
	PaidAt              *time.Time

	RejectionCount int `gorm:"not null;default:0"`
	LastRejectedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

var inTransitionStatuses = []string{"pending", "waitlisted"}

func (d *HuntDAO) FindParticipant(ctx context.Context, huntID, userID uint) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).
		Where("hunt_id = ? AND user_id = ?", huntID, userID).
		First(&participant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

// SaveParticipant inserts a new row or overwrites every column of an
// existing one, so cleared pointers are persisted as NULL.
func (d *HuntDAO) SaveParticipant(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Save(&participant)
	if result.Error != nil {
		return Participant{}, classify(result.Error)
	}

	return participant, nil
}

func (d *HuntDAO) FindParticipants(ctx context.Context, huntID uint, statuses ...string) ([]Participant, error) {
	var participants []Participant

	query := d.db.WithContext(ctx).Where("hunt_id = ?", huntID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	result := query.Order("joined_at ASC, id ASC").Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *HuntDAO) CountParticipants(ctx context.Context, huntID uint, statuses ...string) (int, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("hunt_id = ? AND status IN ?", huntID, statuses).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(count), nil
}

func (d *HuntDAO) HasInTransition(ctx context.Context, huntID uint) (bool, error) {
	count, err := d.CountParticipants(ctx, huntID, inTransitionStatuses...)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// HasConfirmedPayments only counts payments the owner confirmed.
func (d *HuntDAO) HasConfirmedPayments(ctx context.Context, huntID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("hunt_id = ? AND status = ? AND payment_status = ? AND paid_at IS NOT NULL", huntID, "confirmed", "completed").
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *HuntDAO) MaxWaitlistPosition(ctx context.Context, huntID uint) (int, error) {
	var highest int

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Select("COALESCE(MAX(waitlist_position), 0)").
		Where("hunt_id = ? AND status = ?", huntID, "waitlisted").
		Scan(&highest)
	if result.Error != nil {
		return 0, result.Error
	}

	return highest, nil
}

// FindWaitlisted returns waitlisted rows in promotion order. A limit of zero
// or less returns the whole queue.
func (d *HuntDAO) FindWaitlisted(ctx context.Context, huntID uint, limit int) ([]Participant, error) {
	var participants []Participant

	query := d.db.WithContext(ctx).
		Where("hunt_id = ? AND status = ?", huntID, "waitlisted").
		Order("waitlist_position ASC, joined_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

// FindExpired lists pending and waitlisted rows of live hunts whose request
// deadline has passed.
func (d *HuntDAO) FindExpired(ctx context.Context, now time.Time) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).
		Joins("JOIN hunts ON hunts.id = participants.hunt_id AND hunts.deleted_at IS NULL").
		Where("participants.status IN ? AND participants.request_expires_at <= ?", inTransitionStatuses, now).
		Order("participants.hunt_id ASC, participants.request_expires_at ASC").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}
