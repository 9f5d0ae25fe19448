package flash

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Message categories, mirrored in the presentation layer's styling.
const (
	CategoryError   = "error"
	CategorySuccess = "success"
	CategoryInfo    = "info"
	CategoryWarning = "warning"
)

const (
	keyMessage  = "flash_message"
	keyCategory = "flash_category"
)

// Message is a one-shot status message carried in the session between
// a redirect and the next rendered view.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Set stores a flash message in the session, replacing any pending one.
func Set(c *fiber.Ctx, store *session.Store, category, text string) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	SetIn(sess, category, text)
	return sess.Save()
}

// SetIn stages a flash message on an already-loaded session without
// saving. The caller owns the Save; useful when the message must land
// in a session whose id is being regenerated in the same request.
func SetIn(sess *session.Session, category, text string) {
	sess.Set(keyMessage, text)
	sess.Set(keyCategory, category)
}

// Pop reads and clears the pending flash message, if any.
func Pop(c *fiber.Ctx, store *session.Store) (Message, bool) {
	sess, err := store.Get(c)
	if err != nil {
		return Message{}, false
	}
	text, ok := sess.Get(keyMessage).(string)
	if !ok || text == "" {
		return Message{}, false
	}
	category, _ := sess.Get(keyCategory).(string)
	sess.Delete(keyMessage)
	sess.Delete(keyCategory)
	if err := sess.Save(); err != nil {
		return Message{}, false
	}
	return Message{Category: category, Text: text}, true
}
