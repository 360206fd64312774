package receipt

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/mhaefliger/grocery/pkg/dto"
	receiptsvc "github.com/mhaefliger/grocery/pkg/service/receipt"
	"github.com/mhaefliger/grocery/webapi/common"
)

// Routes registers HTTP routes for receipt operations.
//
// Routes:
//   - POST   /receipts              : Record a new receipt with its items.
//   - GET    /receipts              : List receipt summaries with filters.
//   - GET    /receipts/store-names  : Distinct store names seen on receipts.
//   - GET    /receipts/item-names   : Distinct item names across all receipts.
//   - GET    /receipts/:id          : Fetch a single receipt with items.
//   - PUT    /receipts/:id          : Replace a receipt and all of its items.
//   - DELETE /receipts/:id          : Delete a receipt and its items.
func Routes(app *fiber.App, svc *receiptsvc.Service) {
	app.Post("/receipts", Create(svc))
	app.Get("/receipts", List(svc))
	app.Get("/receipts/store-names", StoreNames(svc))
	app.Get("/receipts/item-names", ItemNames(svc))
	app.Get("/receipts/:id", Get(svc))
	app.Put("/receipts/:id", Update(svc))
	app.Delete("/receipts/:id", Delete(svc))
}

// Create returns a handler that records a receipt together with its items in
// a single transaction.
func Create(svc *receiptsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[Request](c)
		if input == nil {
			return err // error response already written
		}
		payload, err := input.ToPayload()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid receipt", err, fiber.StatusBadRequest)
		}
		created, err := svc.Save(c.UserContext(), payload)
		if err != nil {
			log.Errorf("Failed to save receipt: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to save receipt", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Receipt saved", created)
	}
}

// Get returns a handler that fetches one receipt with its items.
func Get(svc *receiptsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := receiptID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid receipt ID", err, fiber.StatusBadRequest)
		}
		r, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch receipt", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Receipt", r)
	}
}

// Update returns a handler that replaces a receipt and its full item list.
func Update(svc *receiptsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := receiptID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid receipt ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[Request](c)
		if input == nil {
			return err
		}
		payload, err := input.ToPayload()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid receipt", err, fiber.StatusBadRequest)
		}
		updated, err := svc.Update(c.UserContext(), id, payload)
		if err != nil {
			log.Errorf("Failed to update receipt %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to update receipt", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Receipt updated", updated)
	}
}

// Delete returns a handler that removes a receipt and its items.
func Delete(svc *receiptsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := receiptID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid receipt ID", err, fiber.StatusBadRequest)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete receipt", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Receipt deleted", nil)
	}
}

// List returns a handler that lists receipt summaries. Filters come from
// query parameters: from, to, stores, search, sort_by, desc, limit, offset.
func List(svc *receiptsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := filterFromQuery(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err, fiber.StatusBadRequest)
		}
		summaries, err := svc.List(c.UserContext(), filter)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list receipts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Receipts", summaries)
	}
}

// StoreNames returns a handler listing every distinct store name on record.
func StoreNames(svc *receiptsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		names, err := svc.DistinctStoreNames(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list store names", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Store names", names)
	}
}

// ItemNames returns a handler listing every distinct item name on record.
func ItemNames(svc *receiptsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		names, err := svc.DistinctItemNames(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list item names", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Item names", names)
	}
}

func receiptID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "receipt id must be positive")
	}
	return uint(id), nil
}

func filterFromQuery(c *fiber.Ctx) (dto.ReceiptFilter, error) {
	var filter dto.ReceiptFilter
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
	filter.Stores = common.CSVQuery(c, "stores")
	filter.ItemSearch = c.Query("search")
	filter.SortBy = c.Query("sort_by", dto.SortByDate)
	filter.SortDesc = c.QueryBool("desc", true)
	filter.Limit = c.QueryInt("limit", 50)
	filter.Offset = c.QueryInt("offset", 0)
	return filter, nil
}
