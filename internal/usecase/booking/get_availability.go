package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

type GetAvailabilityInput struct {
	Date      string
	ServiceID uint
}

type GetAvailability struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetAvailability(repo domain.Repository, clock timezone.Clock) *GetAvailability {
	return &GetAvailability{repo: repo, clock: clock}
}

// Execute lists the start times still bookable for the service on the date.
// An unknown service yields an empty list, not an error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]string, error) {

	if !validators.IsDate(in.Date) {
		return nil, validators.NewFieldError("date", "Data inválida. Use o formato AAAA-MM-DD.")
	}

	day, err := loadDay(ctx, uc.repo, in.Date)
	if err != nil {
		return nil, err
	}

	service, ok := day.Catalog.Lookup(in.ServiceID)
	if !ok {
		return []string{}, nil
	}

	return domain.AvailableSlots(day, service, uc.clock.Now()), nil
}
