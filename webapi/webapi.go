// Package webapi provides the HTTP surface of the grocery tracker.
// It is organized into sub-packages per domain:
// - receipt: receipt recording, listing and lookup endpoints
// - taxonomy: category and store endpoints
// - analytics: spending aggregation and XLSX export endpoints
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mhaefliger/grocery/pkg/app"
	analyticsweb "github.com/mhaefliger/grocery/webapi/analytics"
	"github.com/mhaefliger/grocery/webapi/common"
	receiptweb "github.com/mhaefliger/grocery/webapi/receipt"
	taxonomyweb "github.com/mhaefliger/grocery/webapi/taxonomy"
)

// SetupApp initializes Fiber with custom configuration and registers all routes.
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "grocery-tracker",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return common.ProblemDetailsJSON(c, fe.Message, nil, fe.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Grocery tracker API is running")
	})

	receiptweb.Routes(fiberApp, app.ReceiptService)
	taxonomyweb.Routes(fiberApp, app.TaxonomyService)
	analyticsweb.Routes(fiberApp, app.AnalyticsService, app.ExportService)
	return fiberApp
}
