package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// User mirrors the account fields the hunt service reads. Accounts are owned
// by the authentication service.
type User struct {
	ID uint `gorm:"primaryKey"`

	Email            string `gorm:"unique;not null"`
	Name             string `gorm:"not null"`
	EmailVerified    bool   `gorm:"not null;default:false"`
	PaymentAccountID string
	HuntsJoined      int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) IncrementHuntsJoined(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		UpdateColumn("hunts_joined", gorm.Expr("hunts_joined + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
