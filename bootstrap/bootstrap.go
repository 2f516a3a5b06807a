package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"jobs-service/config"
	"jobs-service/models"
)

type ServiceSeeder interface {
	SeedServices(ctx context.Context, services []models.Service) (int, error)
}

type UserSeeder interface {
	SeedUsers(ctx context.Context, users []models.User) (int, error)
}

// Run seeds the service catalog and a manager account into empty
// collections. It does nothing unless ENABLE_BOOTSTRAP is set.
func Run(ctx context.Context, cfg config.Config, services ServiceSeeder, users UserSeeder, logger zerolog.Logger) error {
	if !cfg.EnableBootstrap {
		return nil
	}
	logger = logger.With().Str("component", "bootstrap").Logger()

	n, err := services.SeedServices(ctx, InitialServices())
	if err != nil {
		return errors.Wrap(err, "seeding services")
	}
	if n > 0 {
		logger.Info().Int("count", n).Msg("inserted initial services")
	}

	if cfg.BootstrapManagerPassword == "" {
		logger.Info().Msg("no manager password configured, skipping user seed")
		return nil
	}
	manager := models.User{
		Email:    cfg.BootstrapManagerEmail,
		Password: cfg.BootstrapManagerPassword,
		Role:     models.RoleManager,
	}
	n, err = users.SeedUsers(ctx, []models.User{manager})
	if err != nil {
		return errors.Wrap(err, "seeding users")
	}
	if n > 0 {
		logger.Info().Str("email", manager.Email).Msg("inserted initial manager")
	}
	return nil
}

func InitialServices() []models.Service {
	return []models.Service{
		{
			ServiceName: "Pressure Washing",
			Severities: []models.SeverityLevel{
				{Level: "Light", Rate: 0.25, ContractorRate: 0.12, EstimatedTime: 0.002},
				{Level: "Medium", Rate: 0.35, ContractorRate: 0.17, EstimatedTime: 0.003},
				{Level: "Heavy", Rate: 0.5, ContractorRate: 0.25, EstimatedTime: 0.005},
			},
		},
		{
			ServiceName: "Sealcoating",
			Severities: []models.SeverityLevel{
				{Level: "Light", Rate: 0.18, ContractorRate: 0.09, EstimatedTime: 0.001},
				{Level: "Heavy", Rate: 0.3, ContractorRate: 0.15, EstimatedTime: 0.002},
			},
		},
		{
			ServiceName: "Line Striping",
			Severities: []models.SeverityLevel{
				{Level: "Standard", Rate: 0.4, ContractorRate: 0.2, EstimatedTime: 0.004},
			},
		},
	}
}
