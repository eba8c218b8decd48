package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// fallback is used when the tz database is unavailable in the container.
// Brazil has had no DST since 2019, so UTC-3 is exact for the default zone.
var fallback = time.FixedZone("BRT", -3*60*60)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return fallback
}

// Clock supplies "now" already projected into the shop timezone.
type Clock interface {
	Now() time.Time
}

type ShopClock struct {
	loc *time.Location
}

func NewShopClock(tz string) ShopClock {
	return ShopClock{loc: Location(tz)}
}

func (c ShopClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c ShopClock) Location() *time.Location {
	return c.loc
}

// FixedClock always returns the same instant. Useful for tests and replays.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
