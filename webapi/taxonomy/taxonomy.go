package taxonomy

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	categorydomain "github.com/mhaefliger/grocery/pkg/domain/category"
	taxonomysvc "github.com/mhaefliger/grocery/pkg/service/taxonomy"
	"github.com/mhaefliger/grocery/webapi/common"
)

// CategoryRequest is the body for creating a category.
type CategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	ParentID *uint  `json:"parent_id"`
	Icon     string `json:"icon"`
	Color    string `json:"color" validate:"omitempty,hexcolor"`
}

// Routes registers HTTP routes for categories and stores.
//
// Routes:
//   - POST /categories : Create a category.
//   - GET  /categories : List categories, optionally only top-level ones.
//   - GET  /stores     : List known stores.
func Routes(app *fiber.App, svc *taxonomysvc.Service) {
	app.Post("/categories", CreateCategory(svc))
	app.Get("/categories", ListCategories(svc))
	app.Get("/stores", ListStores(svc))
}

// CreateCategory returns a handler that creates a category. Duplicate names
// surface as a conflict.
func CreateCategory(svc *taxonomysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CategoryRequest](c)
		if input == nil {
			return err // error response already written
		}
		created, err := svc.CreateCategory(c.UserContext(), categorydomain.Payload{
			Name:     input.Name,
			ParentID: input.ParentID,
			Icon:     input.Icon,
			Color:    input.Color,
		})
		if err != nil {
			log.Errorf("Failed to create category: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create category", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Category created", created)
	}
}

// ListCategories returns a handler listing categories. Pass top_level=true to
// restrict the result to categories without a parent.
func ListCategories(svc *taxonomysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		topLevelOnly := c.QueryBool("top_level", false)
		categories, err := svc.ListCategories(c.UserContext(), topLevelOnly)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list categories", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Categories", categories)
	}
}

// ListStores returns a handler listing every known store.
func ListStores(svc *taxonomysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stores, err := svc.ListStores(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list stores", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Stores", stores)
	}
}
