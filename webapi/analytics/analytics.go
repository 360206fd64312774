package analytics

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/mhaefliger/grocery/pkg/currency"
	"github.com/mhaefliger/grocery/pkg/dto"
	analyticssvc "github.com/mhaefliger/grocery/pkg/service/analytics"
	exportsvc "github.com/mhaefliger/grocery/pkg/service/export"
	"github.com/mhaefliger/grocery/webapi/common"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Routes registers HTTP routes for analytics and export.
//
// Routes:
//   - GET /analytics/categories : Spending totals per category.
//   - GET /analytics/monthly    : Spending per category and month.
//   - GET /analytics/stores     : Normalized price comparison across stores.
//   - GET /analytics/trends     : Normalized price observations over time.
//   - GET /export/items.xlsx    : Item-level export as an XLSX workbook.
func Routes(app *fiber.App, analyticsSvc *analyticssvc.Service, exportSvc *exportsvc.Service) {
	app.Get("/analytics/categories", CategorySpending(analyticsSvc))
	app.Get("/analytics/monthly", MonthlySpending(analyticsSvc))
	app.Get("/analytics/stores", StoreComparison(analyticsSvc))
	app.Get("/analytics/trends", PriceTrends(analyticsSvc))
	app.Get("/export/items.xlsx", ExportItems(exportSvc))
}

// CategorySpending returns a handler aggregating spending per category.
func CategorySpending(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := filterFromQuery(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err, fiber.StatusBadRequest)
		}
		rows, err := svc.CategorySpending(c.UserContext(), filter)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to aggregate category spending", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Category spending", rows)
	}
}

// MonthlySpending returns a handler aggregating spending per category and month.
func MonthlySpending(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := filterFromQuery(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err, fiber.StatusBadRequest)
		}
		rows, err := svc.MonthlySpending(c.UserContext(), filter)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to aggregate monthly spending", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Monthly spending", rows)
	}
}

// StoreComparison returns a handler comparing normalized prices across stores.
func StoreComparison(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := filterFromQuery(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err, fiber.StatusBadRequest)
		}
		rows, err := svc.StoreComparison(c.UserContext(), filter)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to compare stores", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Store comparison", rows)
	}
}

// PriceTrends returns a handler listing normalized price observations over time.
func PriceTrends(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := filterFromQuery(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err, fiber.StatusBadRequest)
		}
		rows, err := svc.PriceTrends(c.UserContext(), filter)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch price trends", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Price trends", rows)
	}
}

// ExportItems returns a handler streaming an XLSX workbook with one row per
// item, receipt fields repeated.
func ExportItems(svc *exportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, err := common.DateQuery(c, "from")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err, fiber.StatusBadRequest)
		}
		to, err := common.DateQuery(c, "to")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err, fiber.StatusBadRequest)
		}
		filter := dto.ReceiptFilter{
			DateFrom: from,
			DateTo:   to,
			Stores:   common.CSVQuery(c, "stores"),
		}
		data, err := svc.ItemsXLSX(c.UserContext(), filter)
		if err != nil {
			log.Errorf("Failed to build items export: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to build export", err)
		}
		filename := fmt.Sprintf("grocery-items-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.Send(data)
	}
}

func filterFromQuery(c *fiber.Ctx) (dto.AnalyticsFilter, error) {
	var filter dto.AnalyticsFilter
	from, err := common.DateQuery(c, "from")
	if err != nil {
		return filter, err
	}
	to, err := common.DateQuery(c, "to")
	if err != nil {
		return filter, err
	}
	filter.DateFrom = from
	filter.DateTo = to
	filter.Currency = c.Query("currency", string(currency.Default))
	filter.ItemNames = common.CSVQuery(c, "items")
	if raw := c.QueryInt("category_id", 0); raw > 0 {
		id := uint(raw)
		filter.CategoryID = &id
	}
	return filter, nil
}
