package handler

import (
	"strings"

	"cafe-inventory/internal/middleware"
	"cafe-inventory/internal/service"
	"cafe-inventory/pkg/flash"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ItemHandler struct {
	catalog service.CatalogService
	store   *session.Store
	log     zerolog.Logger
}

func NewItemHandler(catalog service.CatalogService, store *session.Store, log zerolog.Logger) *ItemHandler {
	return &ItemHandler{catalog: catalog, store: store, log: log}
}

// ListItems is the default view: active items plus the category and
// supplier pickers for the create form.
// GET /
func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.catalog.ListActiveItems()
	if err != nil {
		h.log.Error().Err(err).Msg("listing items failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	categories, err := h.catalog.ListCategories()
	if err != nil {
		h.log.Error().Err(err).Msg("listing categories failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	suppliers, err := h.catalog.ListSuppliers()
	if err != nil {
		h.log.Error().Err(err).Msg("listing suppliers failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	payload := fiber.Map{
		"items":      items,
		"categories": categories,
		"suppliers":  suppliers,
	}
	if user := middleware.CurrentUser(c); user != nil {
		payload["user"] = user
	}
	if msg, ok := flash.Pop(c, h.store); ok {
		payload["flash"] = msg
	}
	return c.JSON(payload)
}

// CreateItem registers a new catalogue item from the submitted form.
// POST /items/new
func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	input := &service.CreateItemInput{
		Name: strings.TrimSpace(c.FormValue("name")),
		Unit: strings.TrimSpace(c.FormValue("unit")),
	}

	var err error
	if input.Stock, err = formInt(c, "stock", 0); err != nil {
		return failRedirect(c, h.store, h.log, err)
	}
	if input.Threshold, err = formInt(c, "threshold", 0); err != nil {
		return failRedirect(c, h.store, h.log, err)
	}
	if input.CategoryID, err = formOptionalUUID(c, "category_id"); err != nil {
		return failRedirect(c, h.store, h.log, err)
	}
	if input.SupplierID, err = formOptionalUUID(c, "supplier_id"); err != nil {
		return failRedirect(c, h.store, h.log, err)
	}

	actorID := uuid.Nil
	if user := middleware.CurrentUser(c); user != nil {
		actorID = user.ID
	}

	if _, err := h.catalog.CreateItem(input, actorID); err != nil {
		return failRedirect(c, h.store, h.log, err)
	}

	_ = flash.Set(c, h.store, flash.CategorySuccess, "Item registered.")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// DeleteItem soft-deletes an item; its movement history survives.
// POST /items/:id/delete
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return failRedirect(c, h.store, h.log, service.ErrValidation)
	}

	if err := h.catalog.DeactivateItem(id); err != nil {
		return failRedirect(c, h.store, h.log, err)
	}

	_ = flash.Set(c, h.store, flash.CategorySuccess, "Item removed from the catalogue.")
	return c.Redirect("/", fiber.StatusSeeOther)
}
