package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

const (
	today    = "2026-03-10"
	tomorrow = "2026-03-11"
)

var shopLoc = time.FixedZone("BRT", -3*60*60)

// clock is fixed at 10:00 on today.
var clock = timezone.FixedClock{At: time.Date(2026, 3, 10, 10, 0, 0, 0, shopLoc)}

type recordingChannel struct {
	mu     sync.Mutex
	events []notify.BookingCreated
}

func (c *recordingChannel) Name() string { return "test" }

func (c *recordingChannel) Send(_ context.Context, ev notify.BookingCreated) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
	return nil
}

type recordingWriter struct {
	mu     sync.Mutex
	events []audit.Event
}

func (w *recordingWriter) Write(_ context.Context, ev audit.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, ev)
	return nil
}

func (w *recordingWriter) actions() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.events))
	for _, ev := range w.events {
		out = append(out, ev.Action)
	}
	return out
}

type fixture struct {
	repo     *repository.MemoryRepository
	channel  *recordingChannel
	writer   *recordingWriter
	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewMemoryRepository()
	ctx := context.Background()
	for _, s := range []models.Service{
		{ID: 1, Name: "Precision Cut", Price: 4500, DurationMin: 45},
		{ID: 2, Name: "Beard Sculpt", Price: 3500, DurationMin: 30},
		{ID: 3, Name: "The Executive", Price: 7500, DurationMin: 75},
	} {
		s := s
		require.NoError(t, repo.CreateService(ctx, &s))
	}

	f := &fixture{
		repo:    repo,
		channel: &recordingChannel{},
		writer:  &recordingWriter{},
	}
	f.notifier = notify.NewDispatcher(zerolog.Nop(), f.channel)
	f.audit = audit.NewDispatcher(f.writer, zerolog.Nop())
	t.Cleanup(f.flush)
	return f
}

// flush waits for the asynchronous dispatchers to deliver everything.
func (f *fixture) flush() {
	f.notifier.Close()
	f.audit.Close()
}

func (f *fixture) create() *CreateBooking {
	return NewCreateBooking(f.repo, clock, f.notifier, f.audit, zerolog.Nop())
}

func (f *fixture) availability() *GetAvailability {
	return NewGetAvailability(f.repo, clock)
}

func request(date, hm string, serviceID uint) CreateBookingInput {
	return CreateBookingInput{
		CustomerName:  "João Silva",
		CustomerPhone: "11999990000",
		CustomerEmail: "joao@example.com",
		ServiceID:     serviceID,
		Date:          date,
		Time:          hm,
	}
}

func strPtr(s string) *string { return &s }
