package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Hunt struct {
	ID          uint      `gorm:"primaryKey"`
	OwnerID     uint      `gorm:"not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Location    string
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`

	Visibility    string `gorm:"size:16;not null;default:'public'"` // "public" or "private"
	IsPaid        bool   `gorm:"not null;default:false"`
	Capacity      *int
	AllowWaitlist bool `gorm:"not null;default:false"`
	MinimumPax    *int

	HasParticipantsInTransition bool          `gorm:"not null;default:false"`
	Participants                []Participant `gorm:"foreignKey:HuntID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type HuntDAO struct {
	db *gorm.DB
}

func NewHuntDAO(db *gorm.DB) *HuntDAO {
	return &HuntDAO{
		db: db,
	}
}

// Transaction runs fn inside a database transaction. The DAO handed to fn is
// bound to that transaction.
func (d *HuntDAO) Transaction(ctx context.Context, fn func(tx *HuntDAO) error) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&HuntDAO{db: tx})
	})

	return classify(err)
}

func (d *HuntDAO) Insert(ctx context.Context, hunt Hunt) (Hunt, error) {
	result := d.db.WithContext(ctx).Create(&hunt)
	if result.Error != nil {
		return Hunt{}, result.Error
	}

	return hunt, nil
}

func (d *HuntDAO) FindByID(ctx context.Context, id uint) (Hunt, error) {
	var hunt Hunt

	result := d.db.WithContext(ctx).First(&hunt, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Hunt{}, ErrHuntNotFound
		}

		return Hunt{}, result.Error
	}

	return hunt, nil
}

// LockByID reads the hunt with SELECT ... FOR UPDATE. Every participation
// write takes this lock first, so writers of one hunt are serialized while
// other hunts proceed in parallel.
func (d *HuntDAO) LockByID(ctx context.Context, id uint) (Hunt, error) {
	var hunt Hunt

	result := d.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&hunt, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Hunt{}, ErrHuntNotFound
		}

		return Hunt{}, classify(result.Error)
	}

	return hunt, nil
}

func (d *HuntDAO) Update(ctx context.Context, hunt Hunt) (Hunt, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Save(&hunt)
	if result.Error != nil {
		return Hunt{}, classify(result.Error)
	}

	return hunt, nil
}

func (d *HuntDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Hunt{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHuntNotFound
	}

	return nil
}
