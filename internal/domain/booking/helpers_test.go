package booking

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var (
	shopLoc = time.FixedZone("BRT", -3*60*60)

	cut       = models.Service{ID: 1, Name: "Precision Cut", Price: 4500, DurationMin: 45}
	beard     = models.Service{ID: 2, Name: "Beard Sculpt", Price: 3500, DurationMin: 30}
	executive = models.Service{ID: 3, Name: "The Executive", Price: 7500, DurationMin: 75}
)

func ptr(s string) *string { return &s }

func at(date, hm string) time.Time {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+hm, shopLoc)
	if err != nil {
		panic(err)
	}
	return t
}

func newDay(date string) Day {
	return Day{
		Date:     date,
		Settings: models.DefaultShopSettings(),
		Catalog:  NewCatalog([]models.Service{cut, beard, executive}),
	}
}

func bookingAt(id uint, date, hm string, serviceID uint, status Status) models.Booking {
	return models.Booking{ID: id, Date: date, Time: hm, ServiceID: serviceID, Status: string(status)}
}
