package handler

import (
	"errors"

	"cafe-inventory/internal/middleware"
	"cafe-inventory/internal/service"
	"cafe-inventory/pkg/flash"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	authService service.AuthService
	store       *session.Store
	log         zerolog.Logger
}

func NewAuthHandler(authService service.AuthService, store *session.Store, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, store: store, log: log}
}

// ShowLogin hands the login view its context. Rendering itself lives in
// the presentation layer; this just surfaces any pending flash message.
// GET /login
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	payload := fiber.Map{"view": "login"}
	if msg, ok := flash.Pop(c, h.store); ok {
		payload["flash"] = msg
	}
	return c.JSON(payload)
}

// Login authenticates the submitted form and establishes a fresh
// session.
// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := h.authService.Login(username, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Error().Err(err).Msg("login failed")
		}
		// One generic message for unknown user and wrong password alike.
		_ = flash.Set(c, h.store, flash.CategoryError, "Invalid username or password.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		h.log.Error().Err(err).Msg("session unavailable")
		_ = flash.Set(c, h.store, flash.CategoryError, "Something went wrong. Please try again.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	// Clear before set: drop any prior session state for this browser,
	// then issue a fresh session id.
	if err := sess.Reset(); err != nil {
		h.log.Error().Err(err).Msg("session reset failed")
		_ = flash.Set(c, h.store, flash.CategoryError, "Something went wrong. Please try again.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	sess.Set(middleware.SessionUserKey, user.ID.String())
	sess.Set("username", user.Username)
	sess.Set("role", user.Role)
	// Stage the flash on the regenerated session so it follows the new
	// session id, then persist everything in one save.
	flash.SetIn(sess, flash.CategorySuccess, "Welcome back, "+user.Username+".")
	if err := sess.Save(); err != nil {
		h.log.Error().Err(err).Msg("session save failed")
		_ = flash.Set(c, h.store, flash.CategoryError, "Something went wrong. Please try again.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout clears the session unconditionally.
// GET /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, err := h.store.Get(c); err == nil {
		_ = sess.Destroy()
	}
	_ = flash.Set(c, h.store, flash.CategoryInfo, "You have been logged out.")
	return c.Redirect("/login", fiber.StatusSeeOther)
}
