package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/preskool/school/internal/app/models"
	appRepos "github.com/preskool/school/internal/app/repositories"
	"github.com/preskool/school/internal/pkg/auth"
	"github.com/preskool/school/internal/pkg/dberrors"
)

// Default admin credentials for a fresh install. The password must be
// changed after first login.
const (
	defaultAdminEmail    = "admin@preskool.local"
	defaultAdminPassword = "ChangeMe123!"
)

// CreateDefaultData seeds the default admin account, a starter set of
// departments and the recurring national holidays. Safe to run repeatedly;
// existing rows are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	holidayRepo := appRepos.NewHolidayRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin account --- //
	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking default admin account")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		hashed, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:     defaultAdminEmail,
				Password:  hashed,
				FirstName: "System",
				LastName:  "Administrator",
				Role:      appModels.RoleAdmin,
				IsActive:  true,
			}
			if err := userRepo.Create(ctx, admin); err != nil && !dberrors.IsUniqueViolation(err) {
				lgr.Error().Err(err).Msg("Error creating default admin account")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
			}
		}
	}

	// --- Starter departments --- //
	for _, d := range []appModels.Department{
		{Name: "Mathematics", Description: "Mathematics department"},
		{Name: "Science", Description: "Science department"},
		{Name: "English", Description: "English department"},
	} {
		exists, err := departmentRepo.NameExists(ctx, d.Name, 0)
		if err != nil {
			lgr.Error().Err(err).Str("department", d.Name).Msg("Error checking starter department")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}
		department := d
		if err := departmentRepo.Create(ctx, &department); err != nil && !dberrors.IsUniqueViolation(err) {
			lgr.Error().Err(err).Str("department", d.Name).Msg("Error creating starter department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Recurring national holidays for the current year --- //
	year := time.Now().Year()
	for _, h := range []appModels.Holiday{
		{Name: "New Year's Day", Date: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), Type: appModels.HolidayNational, IsRecurring: true, IsActive: true},
		{Name: "Christmas Day", Date: time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC), Type: appModels.HolidayNational, IsRecurring: true, IsActive: true},
	} {
		exists, err := holidayRepo.ExistsByNameAndDate(ctx, h.Name, h.Date, 0)
		if err != nil {
			lgr.Error().Err(err).Str("holiday", h.Name).Msg("Error checking seed holiday")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}
		holiday := h
		if err := holidayRepo.Create(ctx, &holiday); err != nil && !dberrors.IsUniqueViolation(err) {
			lgr.Error().Err(err).Str("holiday", h.Name).Msg("Error creating seed holiday")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}
