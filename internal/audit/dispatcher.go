package audit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Action names recorded in the audit log.
const (
	ActionBookingCreated  = "booking.created"
	ActionBookingStatus   = "booking.status_changed"
	ActionBlockCreated    = "blocked_time.created"
	ActionBlockDeleted    = "blocked_time.deleted"
	ActionSettingsUpdated = "settings.updated"
	ActionServiceCreated  = "service.created"
	ActionServiceUpdated  = "service.updated"
	ActionServiceDeleted  = "service.deleted"
	ActionServiceImage    = "service.image_uploaded"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Writer interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	writer Writer
	log    zerolog.Logger
	queue  chan Event

	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewDispatcher(writer Writer, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		log:    log.With().Str("component", "audit").Logger(),
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.writer.Write(ctx, ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
		cancel()
	}
}

// Dispatch never blocks the request path. A full queue drops the event.
// A nil Dispatcher is a no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains the queue. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// ID is a helper for the optional id fields of Event.
func ID(v uint) *uint {
	return &v
}
