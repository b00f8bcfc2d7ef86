// Command seed carga datos de ejemplo para desarrollo. Si ya hay usuarios no hace nada.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	jwtauth "pet-health-record/internal/adapters/auth/jwt"
	pg "pet-health-record/internal/adapters/storage/postgres"
	"pet-health-record/internal/config"
	"pet-health-record/internal/domain/pets"
	"pet-health-record/internal/domain/users"
	"pet-health-record/internal/domain/vaccinations"
	"pet-health-record/internal/domain/vaccines"
	"pet-health-record/internal/platform/logger"
	"pet-health-record/internal/platform/patch"
	"pet-health-record/internal/ports/auth"
	"pet-health-record/internal/router"
)

const seedPassword = "Passw0rd!"

func main() {
	staffEmail := flag.String("staff-email", "", "si se indica, crea además un usuario staff")
	staffPassword := flag.String("staff-password", "", "password del usuario staff")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("invalid config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName + "-seed",
	})

	if err := run(cfg, log, *staffEmail, *staffPassword); err != nil {
		log.Error("seed failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger, staffEmail, staffPassword string) error {
	if cfg.DBDSN == "" {
		return errors.New("DB_DSN is required to seed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := pg.Open(cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := pg.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	svcs, err := router.NewServices(router.Options{
		Logger:     log,
		DB:         db,
		JWT:        jwtauth.Config{Secret: cfg.JWTSecret},
		BcryptCost: cfg.BcryptCost,
	})
	if err != nil {
		return fmt.Errorf("wire services: %w", err)
	}

	n, err := svcs.Users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		log.Warn("data already exists, skipping seeding", map[string]any{"users": n})
		return nil
	}

	if err := seed(ctx, svcs, time.Now()); err != nil {
		return err
	}

	if staffEmail != "" {
		if _, err := svcs.Users.CreateUser(ctx, users.CreateUserInput{
			Email:       staffEmail,
			Password:    staffPassword,
			FullName:    "Staff",
			IsStaff:     true,
			IsSuperuser: true,
		}); err != nil {
			return fmt.Errorf("create staff user: %w", err)
		}
	}

	log.Info("seed data created successfully", nil)
	return nil
}

func seed(ctx context.Context, svcs *router.Services, now time.Time) error {
	owner1, err := svcs.Users.CreateUser(ctx, users.CreateUserInput{
		Email: "owner1@example.com", Password: seedPassword,
		FullName: "Owner One", PhoneNumber: "+1-555-0001",
	})
	if err != nil {
		return err
	}
	owner2, err := svcs.Users.CreateUser(ctx, users.CreateUserInput{
		Email: "owner2@example.com", Password: seedPassword,
		FullName: "Owner Two", PhoneNumber: "+1-555-0002",
	})
	if err != nil {
		return err
	}
	caller1 := &auth.Claims{UserID: owner1.ID, Email: owner1.Email}
	caller2 := &auth.Claims{UserID: owner2.ID, Email: owner2.Email}

	day := func(offset int) string { return now.AddDate(0, 0, offset).Format("2006-01-02") }

	rex, err := svcs.Pets.Create(ctx, caller1, pets.Input{
		Name: ptr("Rex"), Species: ptr("dog"), Breed: ptr("Labrador"),
		BirthDate: patch.Of(day(-365)),
		Weight:    patch.Of(json.RawMessage(`"30.5"`)),
	})
	if err != nil {
		return err
	}
	mia, err := svcs.Pets.Create(ctx, caller2, pets.Input{
		Name: ptr("Mia"), Species: ptr("cat"), Breed: ptr("Siamese"),
		BirthDate: patch.Of(day(-200)),
		Weight:    patch.Of(json.RawMessage(`"4.2"`)),
	})
	if err != nil {
		return err
	}

	days := 365
	rabies, err := svcs.Vaccines.Create(ctx, vaccines.Input{
		Name: ptr("Rabies"), Manufacturer: ptr("VetPharma"),
		Description: ptr("Rabies vaccine for dogs and cats."), PeriodicityDays: &days,
	})
	if err != nil {
		return err
	}
	distemper, err := svcs.Vaccines.Create(ctx, vaccines.Input{
		Name: ptr("Distemper"), Manufacturer: ptr("AnimalHealth"),
		Description: ptr("Canine distemper vaccine."), PeriodicityDays: &days,
	})
	if err != nil {
		return err
	}

	if _, err := svcs.Vaccinations.Create(ctx, caller1, vaccinations.Input{
		Pet: &rex.ID, Vaccine: &rabies.ID,
		ApplicationDate: ptr(day(-30)), NextDueDate: patch.Of(day(335)),
		Notes: ptr("First rabies dose."), VeterinarianName: ptr("Dr. Smith"),
	}); err != nil {
		return err
	}
	if _, err := svcs.Vaccinations.Create(ctx, caller2, vaccinations.Input{
		Pet: &mia.ID, Vaccine: &distemper.ID,
		ApplicationDate: ptr(day(-10)), NextDueDate: patch.Of(day(355)),
		Notes: ptr("Annual distemper vaccine."), VeterinarianName: ptr("Dr. Johnson"),
	}); err != nil {
		return err
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
