package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func TestMemoryRepository_Settings_LazyDefault(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	s, err := r.GetShopSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "09:00", s.OpenTime)
	assert.Equal(t, "19:00", s.CloseTime)

	updated, err := r.UpsertShopSettings(ctx, &models.ShopSettings{OpenTime: "08:00", CloseTime: "18:00"})
	require.NoError(t, err)
	assert.Equal(t, "08:00", updated.OpenTime)

	again, err := r.GetShopSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "18:00", again.CloseTime)
}

func TestMemoryRepository_Bookings(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	first := &models.Booking{ServiceID: 1, Date: "2026-03-11", Time: "14:00"}
	second := &models.Booking{ServiceID: 1, Date: "2026-03-11", Time: "10:00"}
	other := &models.Booking{ServiceID: 1, Date: "2026-03-12", Time: "09:00"}
	for _, b := range []*models.Booking{first, second, other} {
		require.NoError(t, r.InsertBooking(ctx, b))
	}
	assert.Equal(t, "pending", first.Status)

	onDate, err := r.ListBookingsOnDate(ctx, "2026-03-11")
	require.NoError(t, err)
	require.Len(t, onDate, 2)
	assert.Equal(t, "10:00", onDate[0].Time)

	all, err := r.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, other.ID, all[0].ID)

	updated, err := r.UpdateBookingStatus(ctx, first.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", updated.Status)

	_, err = r.UpdateBookingStatus(ctx, 999, "cancelled")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestMemoryRepository_InsertErrIsOneShot(t *testing.T) {
	r := NewMemoryRepository()
	r.InsertErr = booking.ErrBookingConflict

	err := r.InsertBooking(context.Background(), &models.Booking{})
	assert.ErrorIs(t, err, booking.ErrBookingConflict)
	assert.NoError(t, r.InsertBooking(context.Background(), &models.Booking{}))
}

func TestMemoryRepository_BlockedTimes(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	b := &models.BlockedTime{Date: "2026-03-11"}
	require.NoError(t, r.InsertBlockedTime(ctx, b))

	list, err := r.ListBlockedTimesOnDate(ctx, "2026-03-11")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, r.DeleteBlockedTime(ctx, b.ID))
	assert.ErrorIs(t, r.DeleteBlockedTime(ctx, b.ID), booking.ErrNotFound)
}
