package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/hunt-api/internal/domain"
	"github.com/vietanh2810/hunt-api/internal/repository/dao"
)

var (
	ErrUserNotFound = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	IncrementHuntsJoined(ctx context.Context, id uint) error
}

// UserRepository reads the account capabilities the participation rules
// depend on.
type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func translateUser(err error) error {
	if errors.Is(err, dao.ErrUserNotFound) {
		return domain.ErrUserNotFound
	}

	return err
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Email:            user.Email,
		Name:             user.Name,
		EmailVerified:    user.EmailVerified,
		PaymentAccountID: user.PaymentAccountID,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", translateUser(err))
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) PaymentCapability(ctx context.Context, ownerID uint) (domain.PaymentCapability, error) {
	user, err := r.FindByID(ctx, ownerID)
	if err != nil {
		return domain.PaymentCapability{}, err
	}

	return domain.PaymentCapability{
		EmailVerified:     user.EmailVerified,
		HasPaymentAccount: user.PaymentAccountID != "",
	}, nil
}

func (r *UserRepository) IsEmailVerified(ctx context.Context, userID uint) (bool, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}

	return user.EmailVerified, nil
}

func (r *UserRepository) IncrementHuntsJoined(ctx context.Context, userID uint) error {
	if err := r.dao.IncrementHuntsJoined(ctx, userID); err != nil {
		return fmt.Errorf("r.dao.IncrementHuntsJoined -> %w", translateUser(err))
	}

	return nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		EmailVerified:    u.EmailVerified,
		PaymentAccountID: u.PaymentAccountID,
		HuntsJoined:      u.HuntsJoined,
	}
}
