package seed

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/app/repositories"
	"github.com/joinwork/joinwork/internal/config"
	"github.com/joinwork/joinwork/internal/pkg/auth"
)

// CreateDefaultData seeds the workshop catalog and the ministry account
// when they are missing. Errors are logged and returned but should not
// stop startup.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (workshops, ministry account)...")

	if err := seedWorkshops(ctx, repos, lgr); err != nil {
		return err
	}
	return seedMinistryAccount(ctx, repos, lgr)
}

func seedWorkshops(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	if existing := repos.WorkshopRepository.All(ctx); len(existing) > 0 {
		return nil
	}

	workshops := []*models.Workshop{
		{
			Title:       "CV Writing Workshop",
			Description: "How to write a CV that gets past the first screening.",
			Date:        "2025-03-10",
			Location:    "Baghdad",
			Organizer:   "Ministry of Labor",
		},
		{
			Title:       "Interview Skills",
			Description: "Mock interviews and feedback with HR professionals.",
			Date:        "2025-03-24",
			Location:    "Basra",
			Organizer:   "Ministry of Labor",
		},
		{
			Title:       "Freelancing Basics",
			Description: "Getting started with remote and freelance work.",
			Date:        "2025-04-07",
			Location:    "Erbil",
			Organizer:   "Ministry of Labor",
		},
		{
			Title:       "LinkedIn for Graduates",
			Description: "Building a professional online presence.",
			Date:        "2025-04-21",
			Location:    "Online",
			Organizer:   "Ministry of Labor",
		},
	}

	for _, workshop := range workshops {
		if _, err := repos.WorkshopRepository.Create(ctx, workshop); err != nil {
			lgr.Error().Err(err).Str("title", workshop.Title).Msg("Error creating default workshop")
			return err
		}
	}

	lgr.Info().Int("count", len(workshops)).Msg("Default workshops created")
	return nil
}

func seedMinistryAccount(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	email := config.GetEnv("MINISTRY_EMAIL", "ministry@joinwork.gov")
	if existing := repos.UserRepository.GetByEmail(ctx, email); existing != nil {
		return nil
	}

	password := config.GetEnv("MINISTRY_PASSWORD", "ministry123")
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing ministry account password")
		return err
	}

	user, err := repos.UserRepository.Create(ctx, &models.User{
		FullName:     "Ministry of Labor",
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleMinistry,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating ministry account")
		return err
	}

	lgr.Info().Int64("userID", user.ID).Str("email", email).Msg("Ministry account created")
	return nil
}
