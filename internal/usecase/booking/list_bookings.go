package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
)

const deletedServiceName = "Serviço removido"

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns every booking, newest first, with its service name.
func (uc *ListBookings) Execute(ctx context.Context) ([]dto.BookingListDTO, error) {
	bookings, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	catalog := domain.NewCatalog(services)

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		name := deletedServiceName
		if s, ok := catalog.Lookup(b.ServiceID); ok {
			name = s.Name
		}

		out = append(out, dto.BookingListDTO{
			ID:            b.ID,
			CustomerName:  b.CustomerName,
			CustomerPhone: b.CustomerPhone,
			CustomerEmail: b.CustomerEmail,
			ServiceID:     b.ServiceID,
			ServiceName:   name,
			Date:          b.Date,
			Time:          b.Time,
			Status:        b.Status,
			CreatedAt:     b.CreatedAt,
		})
	}

	return out, nil
}

type OccupiedSlots struct {
	repo domain.Repository
}

func NewOccupiedSlots(repo domain.Repository) *OccupiedSlots {
	return &OccupiedSlots{repo: repo}
}

// Execute expands all active bookings into their busy 15-minute ticks.
func (uc *OccupiedSlots) Execute(ctx context.Context) ([]domain.OccupiedSlot, error) {
	bookings, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	slots := domain.OccupiedSlots(bookings, domain.NewCatalog(services))
	if slots == nil {
		slots = []domain.OccupiedSlot{}
	}
	return slots, nil
}
