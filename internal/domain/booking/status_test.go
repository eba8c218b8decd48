package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, st)

	_, err = ParseStatus("scheduled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTransition(t *testing.T) {
	t.Run("strict rejects illegal", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusCompleted)}
		err := Transition(b, StatusPending, true)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, string(StatusCompleted), b.Status)
	})

	t.Run("permissive overrides", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusCompleted)}
		require.NoError(t, Transition(b, StatusPending, false))
		assert.Equal(t, string(StatusPending), b.Status)
	})

	t.Run("permissive reactivates cancelled without a conflict check", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusCancelled)}
		require.NoError(t, Transition(b, StatusConfirmed, false))
		assert.True(t, IsActive(b.Status))
	})

	t.Run("strict keeps cancelled terminal", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusCancelled)}
		assert.ErrorIs(t, Transition(b, StatusPending, true), ErrInvalidTransition)
		assert.False(t, IsActive(b.Status))
	})

	t.Run("empty status is pending", func(t *testing.T) {
		b := &models.Booking{}
		require.NoError(t, Transition(b, StatusConfirmed, true))
		assert.Equal(t, string(StatusConfirmed), b.Status)
	})
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(""))
	assert.True(t, IsActive("pending"))
	assert.True(t, IsActive("completed"))
	assert.False(t, IsActive("cancelled"))
}
