package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

// ======================================================
// CREATE
// ======================================================

type CreateBlockedTimeInput struct {
	Date      string
	StartTime *string
	EndTime   *string
	Reason    *string
	UserID    uint
}

type CreateBlockedTime struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBlockedTime(repo domain.Repository, audit *audit.Dispatcher) *CreateBlockedTime {
	return &CreateBlockedTime{repo: repo, audit: audit}
}

// Execute stores a full-day block when both bounds are absent and a sub-range
// block when both are present. A single bound is rejected.
func (uc *CreateBlockedTime) Execute(
	ctx context.Context,
	in CreateBlockedTimeInput,
) (*models.BlockedTime, error) {

	date := strings.TrimSpace(in.Date)
	if !validators.IsDate(date) {
		return nil, validators.NewFieldError("date", "Data inválida. Use o formato AAAA-MM-DD.")
	}

	start, end := trimmed(in.StartTime), trimmed(in.EndTime)
	if (start == nil) != (end == nil) {
		return nil, validators.NewFieldError("end_time", "Informe início e fim, ou nenhum para bloquear o dia inteiro.")
	}

	if start != nil {
		if !validators.IsHHMM(*start) {
			return nil, validators.NewFieldError("start_time", "Horário inválido. Use o formato HH:MM.")
		}
		if !validators.IsHHMM(*end) {
			return nil, validators.NewFieldError("end_time", "Horário inválido. Use o formato HH:MM.")
		}
		if domain.TimeToMinutes(*start) >= domain.TimeToMinutes(*end) {
			return nil, validators.NewFieldError("end_time", "O fim deve ser depois do início.")
		}
		*start = domain.MinutesToTime(domain.TimeToMinutes(*start))
		*end = domain.MinutesToTime(domain.TimeToMinutes(*end))
	}

	reason := trimmed(in.Reason)
	if reason != nil && !validators.Check(*reason, "max=255") {
		return nil, validators.NewFieldError("reason", "O motivo deve ter até 255 caracteres.")
	}

	block := &models.BlockedTime{
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Reason:    reason,
	}
	if err := uc.repo.InsertBlockedTime(ctx, block); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.ID(in.UserID),
		Action:   audit.ActionBlockCreated,
		Entity:   "blocked_time",
		EntityID: audit.ID(block.ID),
		Metadata: block,
	})

	return block, nil
}

// trimmed returns nil for absent or blank values.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// ======================================================
// DELETE
// ======================================================

type DeleteBlockedTime struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBlockedTime(repo domain.Repository, audit *audit.Dispatcher) *DeleteBlockedTime {
	return &DeleteBlockedTime{repo: repo, audit: audit}
}

func (uc *DeleteBlockedTime) Execute(ctx context.Context, id, userID uint) error {
	if err := uc.repo.DeleteBlockedTime(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.ID(userID),
		Action:   audit.ActionBlockDeleted,
		Entity:   "blocked_time",
		EntityID: audit.ID(id),
	})
	return nil
}

// ======================================================
// LIST
// ======================================================

type ListBlockedTimes struct {
	repo domain.Repository
}

func NewListBlockedTimes(repo domain.Repository) *ListBlockedTimes {
	return &ListBlockedTimes{repo: repo}
}

// Execute lists every block, or only those on date when it is set.
func (uc *ListBlockedTimes) Execute(ctx context.Context, date string) ([]models.BlockedTime, error) {
	if date == "" {
		return uc.repo.ListBlockedTimes(ctx)
	}
	if !validators.IsDate(date) {
		return nil, validators.NewFieldError("date", "Data inválida. Use o formato AAAA-MM-DD.")
	}
	return uc.repo.ListBlockedTimesOnDate(ctx, date)
}
