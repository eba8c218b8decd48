package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

func TestUpdateBookingStatus_Permissive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.create().Execute(ctx, request(tomorrow, "10:00", 1))
	require.NoError(t, err)

	uc := NewUpdateBookingStatus(f.repo, f.audit, false)

	updated, err := uc.Execute(ctx, UpdateBookingStatusInput{BookingID: b.ID, Status: "cancelled", UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", updated.Status)

	// The admin override may move a booking anywhere.
	updated, err = uc.Execute(ctx, UpdateBookingStatusInput{BookingID: b.ID, Status: "pending", UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "pending", updated.Status)

	f.flush()
	assert.Equal(t, []string{
		audit.ActionBookingCreated,
		audit.ActionBookingStatus,
		audit.ActionBookingStatus,
	}, f.writer.actions())
}

func TestUpdateBookingStatus_Strict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.create().Execute(ctx, request(tomorrow, "10:00", 1))
	require.NoError(t, err)

	uc := NewUpdateBookingStatus(f.repo, f.audit, true)

	_, err = uc.Execute(ctx, UpdateBookingStatusInput{BookingID: b.ID, Status: "completed"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	for _, next := range []string{"confirmed", "completed"} {
		updated, err := uc.Execute(ctx, UpdateBookingStatusInput{BookingID: b.ID, Status: next})
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	_, err = uc.Execute(ctx, UpdateBookingStatusInput{BookingID: b.ID, Status: "cancelled"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, err := f.repo.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", stored.Status)
}

func TestUpdateBookingStatus_Errors(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateBookingStatus(f.repo, f.audit, false)

	_, err := uc.Execute(context.Background(), UpdateBookingStatusInput{BookingID: 404, Status: "confirmed"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Execute(context.Background(), UpdateBookingStatusInput{BookingID: 1, Status: "archived"})
	var fe *validators.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "status", fe.Field)
}
