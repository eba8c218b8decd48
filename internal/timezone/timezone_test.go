package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus_Mons"))
	assert.True(t, IsValid("UTC"))
}

func TestLocationFallsBackToShopZone(t *testing.T) {
	loc := Location("Mars/Olympus_Mons")

	instant := time.Date(2026, 7, 1, 15, 0, 0, 0, time.UTC)
	_, offset := instant.In(loc).Zone()
	assert.Equal(t, -3*60*60, offset)
}

func TestShopClock(t *testing.T) {
	clock := NewShopClock("UTC")
	assert.Equal(t, time.UTC, clock.Location())
	assert.Equal(t, time.UTC, clock.Now().Location())
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, at, FixedClock{At: at}.Now())
}
