// Command wipe deletes every booking and blocked time. Services, settings
// and users are kept.
package main

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	bookings, blocks, err := infraRepo.NewBookingGormRepository(db).Wipe(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("wipe failed")
	}

	log.Info().
		Int64("bookings", bookings).
		Int64("blocked_times", blocks).
		Msg("database wiped")
}
