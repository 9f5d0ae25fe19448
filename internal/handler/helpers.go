package handler

import (
	"errors"
	"strconv"
	"strings"

	"cafe-inventory/internal/service"
	"cafe-inventory/pkg/flash"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// formInt parses an integer form field. An absent field falls back to
// def; anything non-numeric is a validation failure.
func formInt(c *fiber.Ctx, field string, def int) (int, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, service.ErrValidation
	}
	return n, nil
}

// formOptionalUUID parses an optional reference field. Empty means no
// reference (nil), not a zero id.
func formOptionalUUID(c *fiber.Ctx, field string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, service.ErrValidation
	}
	return &id, nil
}

// failRedirect maps a service error onto a flash message and a redirect
// to the listing view. Store-level failures get a generic message and a
// log line; everything in the taxonomy gets its own wording.
func failRedirect(c *fiber.Ctx, store *session.Store, log zerolog.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		_ = flash.Set(c, store, flash.CategoryWarning, "Please log in to continue.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	case errors.Is(err, service.ErrUnauthorized):
		_ = flash.Set(c, store, flash.CategoryError, "You do not have permission to do that.")
	case errors.Is(err, service.ErrValidation):
		_ = flash.Set(c, store, flash.CategoryError, err.Error())
	case errors.Is(err, service.ErrNotFound):
		_ = flash.Set(c, store, flash.CategoryError, "That item does not exist.")
	case errors.Is(err, service.ErrInvalidAction):
		_ = flash.Set(c, store, flash.CategoryError, "Unknown stock action.")
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		_ = flash.Set(c, store, flash.CategoryError, "The operation failed. Please try again.")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
