package db

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// DefaultServices is the catalog a fresh installation starts with.
func DefaultServices() []models.Service {
	return []models.Service{
		{
			Name:        "Precision Cut",
			Description: "Signature consultation + precision shear work + hot towel finish.",
			Price:       4500,
			DurationMin: 45,
			Image:       "https://images.unsplash.com/photo-1585747860715-2ba37e788b70?auto=format&fit=crop&q=80&w=1000",
			Category:    models.CategoryMain,
		},
		{
			Name:        "Beard Sculpt",
			Description: "Hot towel steam + straight razor lineup + oil treatment.",
			Price:       3500,
			DurationMin: 30,
			Image:       "https://images.unsplash.com/photo-1621605815971-fbc98d665033?auto=format&fit=crop&q=80&w=1000",
			Category:    models.CategoryMain,
		},
		{
			Name:        "The Executive",
			Description: "Full service cut + beard sculpt + black mask facial.",
			Price:       7500,
			DurationMin: 75,
			Image:       "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?auto=format&fit=crop&q=80&w=1000",
			Category:    models.CategoryMain,
		},
	}
}

// SeedServices fills an empty catalog. A catalog with any service is left
// alone.
func SeedServices(ctx context.Context, repo domain.Repository, log zerolog.Logger) error {
	existing, err := repo.ListServices(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, s := range DefaultServices() {
		s := s
		if err := repo.CreateService(ctx, &s); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(DefaultServices())).Msg("seeded services")
	return nil
}

type AdminStore interface {
	EnsureAdmin(ctx context.Context, u *models.User) (bool, error)
}

// SeedAdmin creates the configured admin account once. Without a password
// nothing is created and a warning is logged.
func SeedAdmin(ctx context.Context, users AdminStore, username, password, name string, log zerolog.Logger) error {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		log.Warn().Msg("ADMIN_PASSWORD not set, admin account not seeded")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	created, err := users.EnsureAdmin(ctx, &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		IsAdmin:      true,
	})
	if err != nil {
		return err
	}
	if created {
		log.Info().Str("username", username).Msg("seeded admin user")
	}
	return nil
}
