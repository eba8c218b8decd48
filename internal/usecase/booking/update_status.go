package booking

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

type UpdateBookingStatusInput struct {
	BookingID uint
	Status    string
	UserID    uint
}

type UpdateBookingStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	strict bool
}

// NewUpdateBookingStatus builds the admin status override. With strict set
// only the pending -> confirmed -> completed / cancelled machine is allowed.
func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	strict bool,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{repo: repo, audit: audit, strict: strict}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	in UpdateBookingStatusInput,
) (*models.Booking, error) {

	to, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, validators.NewFieldError("status", "Status inválido.")
	}

	current, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	from := current.Status

	if err := domain.Transition(current, to, uc.strict); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateBookingStatus(ctx, in.BookingID, current.Status)
	if err != nil {
		return nil, err
	}

	metrics.IncStatusChange(updated.Status)
	uc.audit.Dispatch(audit.Event{
		UserID:   audit.ID(in.UserID),
		Action:   audit.ActionBookingStatus,
		Entity:   "booking",
		EntityID: audit.ID(updated.ID),
		Metadata: map[string]string{
			"from": from,
			"to":   updated.Status,
		},
	})

	return updated, nil
}
