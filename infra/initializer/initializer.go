// Package initializer wires the infrastructure: logger, database connection,
// migrations, and the repositories the services run on.
package initializer

import (
	"fmt"

	"github.com/mhaefliger/grocery/infra"
	infrarepo "github.com/mhaefliger/grocery/infra/repository"
	"github.com/mhaefliger/grocery/pkg/app"
	"github.com/mhaefliger/grocery/pkg/config"
)

// InitializeDependencies builds everything the application needs from
// configuration: logger, DB connection (with migrations applied), unit of
// work and analytics repository.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := SetupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &app.Deps{
		Uow:       infrarepo.NewUoW(db),
		Analytics: infrarepo.NewAnalyticsRepository(db),
		Logger:    logger,
	}, nil
}
