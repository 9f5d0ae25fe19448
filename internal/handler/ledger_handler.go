package handler

import (
	"cafe-inventory/internal/middleware"
	"cafe-inventory/internal/service"
	"cafe-inventory/pkg/flash"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type LedgerHandler struct {
	ledger service.LedgerService
	store  *session.Store
	log    zerolog.Logger
}

func NewLedgerHandler(ledger service.LedgerService, store *session.Store, log zerolog.Logger) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, store: store, log: log}
}

// UpdateStock is the unified stock adjustment endpoint: an action field
// picks the direction, quantity is always submitted as a positive
// count, and the movement is attributed to the session's user.
// POST /items/update_stock
func (h *LedgerHandler) UpdateStock(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.FormValue("item_id"))
	if err != nil {
		return failRedirect(c, h.store, h.log, service.ErrValidation)
	}

	quantity, err := formInt(c, "quantity", 0)
	if err != nil {
		return failRedirect(c, h.store, h.log, err)
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		// The login gate guards this route; a nil user here means the
		// gate was bypassed, so deny all the same.
		return failRedirect(c, h.store, h.log, service.ErrUnauthenticated)
	}

	action := c.FormValue("action")
	if err := h.ledger.RecordAction(itemID, user.ID, action, quantity, c.FormValue("memo")); err != nil {
		return failRedirect(c, h.store, h.log, err)
	}

	verb := "Stock-in"
	if action == service.ActionOut {
		verb = "Stock-out"
	}
	_ = flash.Set(c, h.store, flash.CategorySuccess, verb+" recorded.")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// ListMovements is the admin-only, newest-first ledger projection.
// GET /movements
func (h *LedgerHandler) ListMovements(c *fiber.Ctx) error {
	movements, err := h.ledger.ListMovements()
	if err != nil {
		h.log.Error().Err(err).Msg("listing movements failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	payload := fiber.Map{"movements": movements}
	if msg, ok := flash.Pop(c, h.store); ok {
		payload["flash"] = msg
	}
	return c.JSON(payload)
}
