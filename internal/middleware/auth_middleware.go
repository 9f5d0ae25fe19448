package middleware

import (
	"cafe-inventory/internal/model"
	"cafe-inventory/internal/repository"
	"cafe-inventory/pkg/flash"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// SessionUserKey is the session entry holding the logged-in user's id.
const SessionUserKey = "user_id"

const localsUserKey = "current_user"

// ResolveUser runs before every request. It reads the session's user id
// and, when it still resolves to a user, attaches that user to the
// request context. A missing or stale id means the request proceeds
// anonymously; a failed lookup is never surfaced as an error.
func ResolveUser(store *session.Store, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Next()
		}

		raw, ok := sess.Get(SessionUserKey).(string)
		if !ok || raw == "" {
			return c.Next()
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Next()
		}

		user, err := userRepo.FindByID(id)
		if err != nil {
			// Stale session pointing at a deleted user: anonymous, not an error.
			return c.Next()
		}

		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the identity resolved for this request, or nil.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(localsUserKey).(*model.User)
	return user
}

// RequireLogin denies anonymous requests with a redirect to the login
// entry point.
func RequireLogin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			_ = flash.Set(c, store, flash.CategoryWarning, "Please log in to continue.")
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireRole implies RequireLogin and additionally demands an exact
// role match. Mismatches bounce back to the default listing view.
func RequireRole(store *session.Store, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			_ = flash.Set(c, store, flash.CategoryWarning, "Please log in to continue.")
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		if user.Role != role {
			_ = flash.Set(c, store, flash.CategoryError, "You do not have permission to do that.")
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
