package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// EnsureAdmin creates the admin account when the username is free. An
// existing account is left as is, so a changed ADMIN_PASSWORD does not
// silently reset a password edited elsewhere.
func (r *UserGormRepository) EnsureAdmin(ctx context.Context, u *models.User) (bool, error) {
	_, err := r.FindByUsername(ctx, u.Username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, booking.ErrNotFound) {
		return false, err
	}

	u.IsAdmin = true
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return false, err
	}
	return true, nil
}
