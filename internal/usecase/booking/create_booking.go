package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	ServiceID     uint
	Date          string
	Time          string
}

func (in CreateBookingInput) normalize() CreateBookingInput {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.CustomerEmail = strings.ToLower(strings.TrimSpace(in.CustomerEmail))
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	return in
}

func (in CreateBookingInput) validate() error {
	switch {
	case !validators.Check(in.CustomerName, "required,max=100"):
		return validators.NewFieldError("customer_name", "Informe um nome com até 100 caracteres.")
	case !validators.Check(in.CustomerPhone, "required,max=20"):
		return validators.NewFieldError("customer_phone", "Informe um telefone com até 20 caracteres.")
	case !validators.IsEmail(in.CustomerEmail):
		return validators.NewFieldError("customer_email", "E-mail inválido.")
	case in.ServiceID == 0:
		return validators.NewFieldError("service_id", "Selecione um serviço.")
	case !validators.IsDate(in.Date):
		return validators.NewFieldError("date", "Data inválida. Use o formato AAAA-MM-DD.")
	case !validators.IsHHMM(in.Time):
		return validators.NewFieldError("time", "Horário inválido. Use o formato HH:MM.")
	}
	return nil
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	clock    timezone.Clock
	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	clock timezone.Clock,
	notifier *notify.Dispatcher,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		clock:    clock,
		notifier: notifier,
		audit:    audit,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Input shape
	// --------------------------------------------------
	in = in.normalize()
	if err := in.validate(); err != nil {
		metrics.IncBookingRejected("validation")
		return nil, err
	}
	// "9:00" and "09:00" name the same slot; store the padded form.
	in.Time = domain.MinutesToTime(domain.TimeToMinutes(in.Time))

	// --------------------------------------------------
	// 2. Fresh read of the day
	// --------------------------------------------------
	day, err := loadDay(ctx, uc.repo, in.Date)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Admission
	// --------------------------------------------------
	b, err := domain.Admit(day, domain.Request{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		ServiceID:     in.ServiceID,
		Date:          in.Date,
		Time:          in.Time,
	}, uc.clock.Now())
	if err != nil {
		uc.rejected(in, err)
		return nil, err
	}

	// --------------------------------------------------
	// 4. Persistence
	// --------------------------------------------------
	if err := uc.repo.InsertBooking(ctx, b); err != nil {
		uc.rejected(in, err)
		return nil, err
	}

	metrics.IncBookingAdmitted()
	uc.log.Info().
		Uint("booking_id", b.ID).
		Uint("service_id", b.ServiceID).
		Str("date", b.Date).
		Str("time", b.Time).
		Msg("booking admitted")

	// --------------------------------------------------
	// 5. Side effects (fire and forget)
	// --------------------------------------------------
	service, _ := day.Catalog.Lookup(b.ServiceID)
	uc.notifier.Dispatch(notify.NewBookingCreated(*b, &service))

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: audit.ID(b.ID),
		Metadata: map[string]any{
			"service_id": b.ServiceID,
			"date":       b.Date,
			"time":       b.Time,
		},
	})

	return b, nil
}

func (uc *CreateBooking) rejected(in CreateBookingInput, err error) {
	var ae *domain.AdmissionError
	if !errors.As(err, &ae) {
		return
	}
	metrics.IncBookingRejected(string(ae.Reason))
	uc.log.Info().
		Str("reason", string(ae.Reason)).
		Uint("service_id", in.ServiceID).
		Str("date", in.Date).
		Str("time", in.Time).
		Msg("booking rejected")
}
