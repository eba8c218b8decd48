package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

type GetSettings struct {
	repo domain.Repository
}

func NewGetSettings(repo domain.Repository) *GetSettings {
	return &GetSettings{repo: repo}
}

// Execute returns the shop hours, creating the 09:00-19:00 default on first use.
func (uc *GetSettings) Execute(ctx context.Context) (*models.ShopSettings, error) {
	return uc.repo.GetShopSettings(ctx)
}

type UpdateSettingsInput struct {
	OpenTime  string
	CloseTime string
	UserID    uint
}

type UpdateSettings struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSettings(repo domain.Repository, audit *audit.Dispatcher) *UpdateSettings {
	return &UpdateSettings{repo: repo, audit: audit}
}

func (uc *UpdateSettings) Execute(
	ctx context.Context,
	in UpdateSettingsInput,
) (*models.ShopSettings, error) {

	open := strings.TrimSpace(in.OpenTime)
	closing := strings.TrimSpace(in.CloseTime)

	if !validators.IsHHMM(open) {
		return nil, validators.NewFieldError("open_time", "Horário inválido. Use o formato HH:MM.")
	}
	if !validators.IsHHMM(closing) {
		return nil, validators.NewFieldError("close_time", "Horário inválido. Use o formato HH:MM.")
	}
	if domain.TimeToMinutes(open) >= domain.TimeToMinutes(closing) {
		return nil, validators.NewFieldError("close_time", "O fechamento deve ser depois da abertura.")
	}

	settings, err := uc.repo.UpsertShopSettings(ctx, &models.ShopSettings{
		OpenTime:  domain.MinutesToTime(domain.TimeToMinutes(open)),
		CloseTime: domain.MinutesToTime(domain.TimeToMinutes(closing)),
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.ID(in.UserID),
		Action:   audit.ActionSettingsUpdated,
		Entity:   "shop_settings",
		EntityID: audit.ID(settings.ID),
		Metadata: map[string]string{
			"open_time":  settings.OpenTime,
			"close_time": settings.CloseTime,
		},
	})

	return settings, nil
}
