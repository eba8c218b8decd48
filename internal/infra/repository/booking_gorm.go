package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booking.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *BookingGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *BookingGormRepository) UpdateService(ctx context.Context, s *models.Service) error {
	res := r.db.WithContext(ctx).
		Model(&models.Service{ID: s.ID}).
		Select("name", "description", "price", "duration_min", "image", "category").
		Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return booking.ErrNotFound
	}
	return nil
}

func (r *BookingGormRepository) DeleteService(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return booking.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsOnDate(ctx context.Context, date string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// InsertBooking maps a unique/exclusion violation to ErrBookingConflict so
// a deployment that adds such a constraint reports the race as a conflict.
func (r *BookingGormRepository) InsertBooking(ctx context.Context, b *models.Booking) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isExclusionConflict(err) {
			return booking.ErrBookingConflict
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	id uint,
	status string,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, id).Error; err != nil {
			return err
		}
		b.Status = status
		return tx.Model(&b).Update("status", status).Error
	})
	if err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

// --------------------------------------------------
// Blocked times
// --------------------------------------------------

func (r *BookingGormRepository) ListBlockedTimes(ctx context.Context) ([]models.BlockedTime, error) {
	var blocks []models.BlockedTime
	if err := r.db.WithContext(ctx).
		Order("date ASC, start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *BookingGormRepository) ListBlockedTimesOnDate(ctx context.Context, date string) ([]models.BlockedTime, error) {
	var blocks []models.BlockedTime
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *BookingGormRepository) InsertBlockedTime(ctx context.Context, b *models.BlockedTime) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) DeleteBlockedTime(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.BlockedTime{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return booking.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Shop settings
// --------------------------------------------------

// GetShopSettings creates the singleton row with default hours on first read.
func (r *BookingGormRepository) GetShopSettings(ctx context.Context) (*models.ShopSettings, error) {
	var s models.ShopSettings
	defaults := models.DefaultShopSettings()
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Attrs(defaults).
		FirstOrCreate(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BookingGormRepository) UpsertShopSettings(
	ctx context.Context,
	in *models.ShopSettings,
) (*models.ShopSettings, error) {

	current, err := r.GetShopSettings(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(current).
		Updates(map[string]any{
			"open_time":  in.OpenTime,
			"close_time": in.CloseTime,
		}).Error; err != nil {
		return nil, err
	}

	current.OpenTime = in.OpenTime
	current.CloseTime = in.CloseTime
	return current, nil
}

// --------------------------------------------------
// Maintenance
// --------------------------------------------------

// Wipe removes every booking and blocked time. Services, settings and users
// are left untouched.
func (r *BookingGormRepository) Wipe(ctx context.Context) (int64, int64, error) {
	var bookings, blocks int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Booking{})
		if res.Error != nil {
			return res.Error
		}
		bookings = res.RowsAffected

		res = tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.BlockedTime{})
		if res.Error != nil {
			return res.Error
		}
		blocks = res.RowsAffected
		return nil
	})
	return bookings, blocks, err
}

// Compile-time check
var _ booking.Repository = (*BookingGormRepository)(nil)
