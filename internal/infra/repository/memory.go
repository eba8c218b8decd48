package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// MemoryRepository is a process-local booking.Repository. It backs the use
// case and handler tests and local runs without postgres.
type MemoryRepository struct {
	mu sync.Mutex

	nextID   uint
	services map[uint]models.Service
	bookings map[uint]models.Booking
	blocks   map[uint]models.BlockedTime
	settings *models.ShopSettings

	// InsertErr, when set, is returned by the next InsertBooking.
	InsertErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		services: map[uint]models.Service{},
		bookings: map[uint]models.Booking{},
		blocks:   map[uint]models.BlockedTime{},
	}
}

func (r *MemoryRepository) id() uint {
	r.nextID++
	return r.nextID
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *MemoryRepository) ListServices(_ context.Context) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) CreateService(_ context.Context, s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == 0 {
		s.ID = r.id()
	} else if s.ID > r.nextID {
		r.nextID = s.ID
	}
	if s.Category == "" {
		s.Category = models.CategoryMain
	}
	now := time.Now()
	s.CreatedAt, s.UpdatedAt = now, now
	r.services[s.ID] = *s
	return nil
}

func (r *MemoryRepository) UpdateService(_ context.Context, s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.services[s.ID]
	if !ok {
		return booking.ErrNotFound
	}
	s.CreatedAt = current.CreatedAt
	s.UpdatedAt = time.Now()
	r.services[s.ID] = *s
	return nil
}

func (r *MemoryRepository) DeleteService(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[id]; !ok {
		return booking.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *MemoryRepository) ListBookings(_ context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	// newest first, like the gorm ordering by created_at
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *MemoryRepository) ListBookingsOnDate(_ context.Context, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (r *MemoryRepository) InsertBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.InsertErr; err != nil {
		r.InsertErr = nil
		return err
	}

	b.ID = r.id()
	if b.Status == "" {
		b.Status = string(booking.StatusPending)
	}
	b.CreatedAt = time.Now()
	r.bookings[b.ID] = *b
	return nil
}

func (r *MemoryRepository) UpdateBookingStatus(_ context.Context, id uint, status string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	b.Status = status
	r.bookings[id] = b
	return &b, nil
}

func (r *MemoryRepository) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return &b, nil
}

// --------------------------------------------------
// Blocked times
// --------------------------------------------------

func (r *MemoryRepository) ListBlockedTimes(_ context.Context) ([]models.BlockedTime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.BlockedTime, 0, len(r.blocks))
	for _, b := range r.blocks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepository) ListBlockedTimesOnDate(_ context.Context, date string) ([]models.BlockedTime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.BlockedTime
	for _, b := range r.blocks {
		if b.Date == date {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) InsertBlockedTime(_ context.Context, b *models.BlockedTime) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.id()
	b.CreatedAt = time.Now()
	r.blocks[b.ID] = *b
	return nil
}

func (r *MemoryRepository) DeleteBlockedTime(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blocks[id]; !ok {
		return booking.ErrNotFound
	}
	delete(r.blocks, id)
	return nil
}

// --------------------------------------------------
// Shop settings
// --------------------------------------------------

func (r *MemoryRepository) GetShopSettings(_ context.Context) (*models.ShopSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.settings == nil {
		s := models.DefaultShopSettings()
		s.ID = 1
		s.UpdatedAt = time.Now()
		r.settings = &s
	}
	out := *r.settings
	return &out, nil
}

func (r *MemoryRepository) UpsertShopSettings(_ context.Context, in *models.ShopSettings) (*models.ShopSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := models.ShopSettings{
		ID:        1,
		OpenTime:  in.OpenTime,
		CloseTime: in.CloseTime,
		UpdatedAt: time.Now(),
	}
	r.settings = &s
	out := s
	return &out, nil
}

var _ booking.Repository = (*MemoryRepository)(nil)
