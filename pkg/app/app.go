// Package app assembles the services from their dependencies.
package app

import (
	"log/slog"

	"github.com/mhaefliger/grocery/pkg/config"
	"github.com/mhaefliger/grocery/pkg/repository"
	analyticssvc "github.com/mhaefliger/grocery/pkg/service/analytics"
	exportsvc "github.com/mhaefliger/grocery/pkg/service/export"
	receiptsvc "github.com/mhaefliger/grocery/pkg/service/receipt"
	taxonomysvc "github.com/mhaefliger/grocery/pkg/service/taxonomy"
)

// Deps contains the infrastructure dependencies the services are built on.
type Deps struct {
	Uow       repository.UnitOfWork
	Analytics repository.AnalyticsRepository
	Logger    *slog.Logger
}

// App holds the configured services.
type App struct {
	Deps   *Deps
	Config *config.App

	ReceiptService   *receiptsvc.Service
	TaxonomyService  *taxonomysvc.Service
	AnalyticsService *analyticssvc.Service
	ExportService    *exportsvc.Service
}

// New builds the application from its dependencies.
func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:             deps,
		Config:           cfg,
		ReceiptService:   receiptsvc.New(deps.Uow, deps.Logger),
		TaxonomyService:  taxonomysvc.New(deps.Uow, deps.Logger),
		AnalyticsService: analyticssvc.New(deps.Analytics, deps.Logger),
		ExportService:    exportsvc.New(deps.Analytics, deps.Logger),
	}
}
