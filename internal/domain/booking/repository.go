package booking

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Repository is the persistence port. Implementations return ErrNotFound
// for missing rows.
type Repository interface {
	// -------- Services --------
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error

	// -------- Bookings --------
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListBookingsOnDate(ctx context.Context, date string) ([]models.Booking, error)
	InsertBooking(ctx context.Context, b *models.Booking) error
	UpdateBookingStatus(ctx context.Context, id uint, status string) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)

	// -------- Blocked times --------
	ListBlockedTimes(ctx context.Context) ([]models.BlockedTime, error)
	ListBlockedTimesOnDate(ctx context.Context, date string) ([]models.BlockedTime, error)
	InsertBlockedTime(ctx context.Context, b *models.BlockedTime) error
	DeleteBlockedTime(ctx context.Context, id uint) error

	// -------- Shop settings --------
	GetShopSettings(ctx context.Context) (*models.ShopSettings, error)
	UpsertShopSettings(ctx context.Context, s *models.ShopSettings) (*models.ShopSettings, error)
}
