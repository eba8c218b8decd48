package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
)

// Channel is one outbound delivery route (e-mail, webhook).
type Channel interface {
	Name() string
	Send(ctx context.Context, ev BookingCreated) error
}

type Dispatcher struct {
	channels []Channel
	log      zerolog.Logger
	queue    chan BookingCreated
	timeout  time.Duration

	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewDispatcher(log zerolog.Logger, channels ...Channel) *Dispatcher {
	d := &Dispatcher{
		channels: channels,
		log:      log.With().Str("component", "notify").Logger(),
		queue:    make(chan BookingCreated, 100),
		timeout:  10 * time.Second,
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		for _, ch := range d.channels {
			d.deliver(ch, ev)
		}
	}
}

func (d *Dispatcher) deliver(ch Channel, ev BookingCreated) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := ch.Send(ctx, ev); err != nil {
		metrics.IncNotificationFailure(ch.Name())
		d.log.Error().
			Err(err).
			Str("channel", ch.Name()).
			Uint("booking_id", ev.BookingID).
			Msg("notification failed")
		return
	}

	d.log.Debug().
		Str("channel", ch.Name()).
		Uint("booking_id", ev.BookingID).
		Msg("notification sent")
}

// Dispatch enqueues ev and returns immediately. Delivery failures never
// reach the caller. A nil Dispatcher is a no-op.
func (d *Dispatcher) Dispatch(ev BookingCreated) {
	if d == nil || len(d.channels) == 0 {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Uint("booking_id", ev.BookingID).Msg("notify queue full, dropping event")
	}
}

// Close waits for queued events to be delivered.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}
