package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
)

func TestListBookings_EnrichedNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.create().Execute(ctx, request(tomorrow, "10:00", 1))
	require.NoError(t, err)
	second, err := f.create().Execute(ctx, request(tomorrow, "14:00", 2))
	require.NoError(t, err)

	require.NoError(t, f.repo.DeleteService(ctx, 2))

	list, err := NewListBookings(f.repo).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, "Serviço removido", list[0].ServiceName)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, "Precision Cut", list[1].ServiceName)
}

func TestOccupiedSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := NewOccupiedSlots(f.repo).Execute(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = f.create().Execute(ctx, request(tomorrow, "10:00", 1))
	require.NoError(t, err)
	cancelled, err := f.create().Execute(ctx, request(tomorrow, "15:00", 2))
	require.NoError(t, err)
	_, err = f.repo.UpdateBookingStatus(ctx, cancelled.ID, "cancelled")
	require.NoError(t, err)

	slots, err := NewOccupiedSlots(f.repo).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.OccupiedSlot{
		{Date: tomorrow, Time: "10:00"},
		{Date: tomorrow, Time: "10:15"},
		{Date: tomorrow, Time: "10:30"},
		{Date: tomorrow, Time: "10:45"},
	}, slots)
}
