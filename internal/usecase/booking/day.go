package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
)

// loadDay reads the shared state both the availability read and the
// admission write decide on. It is called once per request so admission
// always sees fresh data.
func loadDay(ctx context.Context, repo domain.Repository, date string) (domain.Day, error) {
	services, err := repo.ListServices(ctx)
	if err != nil {
		return domain.Day{}, err
	}

	settings, err := repo.GetShopSettings(ctx)
	if err != nil {
		return domain.Day{}, err
	}

	bookings, err := repo.ListBookingsOnDate(ctx, date)
	if err != nil {
		return domain.Day{}, err
	}

	blocks, err := repo.ListBlockedTimesOnDate(ctx, date)
	if err != nil {
		return domain.Day{}, err
	}

	return domain.Day{
		Date:     date,
		Settings: *settings,
		Bookings: bookings,
		Blocks:   blocks,
		Catalog:  domain.NewCatalog(services),
	}, nil
}
