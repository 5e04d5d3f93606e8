package helper

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"ojtsystem_backend/internals/configs"
)

var sessionStore *session.Store

const (
	sessAccountID   = "account_id"
	sessAccountType = "account_type"
	sessFlash       = "flash_message"
	sessFlashType   = "flash_message_type"
)

func InitSessionStore() {
	sessionStore = session.New(session.Config{
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   configs.SessionSecure,
		CookieSameSite: "Lax",
	})
}

func Session(c *fiber.Ctx) *session.Session {
	sess, err := sessionStore.Get(c)
	if err != nil {
		log.Printf("[ERROR] session get: %v", err)
		return nil
	}
	return sess
}

func SignIn(c *fiber.Ctx, accountID, accountType string) {
	if sess := Session(c); sess != nil {
		sess.Set(sessAccountID, accountID)
		sess.Set(sessAccountType, accountType)
		_ = sess.Save()
	}
}

func SignOut(c *fiber.Ctx) {
	if sess := Session(c); sess != nil {
		sess.Delete(sessAccountID)
		sess.Delete(sessAccountType)
		_ = sess.Save()
	}
}

// CurrentAccount returns the signed-in account id and type, or empty strings.
func CurrentAccount(c *fiber.Ctx) (string, string) {
	sess := Session(c)
	if sess == nil {
		return "", ""
	}
	id, _ := sess.Get(sessAccountID).(string)
	typ, _ := sess.Get(sessAccountType).(string)
	return id, typ
}

func SetFlash(c *fiber.Ctx, message, messageType string) {
	if sess := Session(c); sess != nil {
		sess.Set(sessFlash, message)
		sess.Set(sessFlashType, messageType)
		_ = sess.Save()
	}
}

func PopFlash(c *fiber.Ctx) (string, string) {
	sess := Session(c)
	if sess == nil {
		return "", ""
	}
	msg, _ := sess.Get(sessFlash).(string)
	typ, _ := sess.Get(sessFlashType).(string)
	if msg != "" {
		sess.Delete(sessFlash)
		sess.Delete(sessFlashType)
		_ = sess.Save()
	}
	return msg, typ
}

// SessionSet stores an arbitrary value on the session (import summaries etc).
func SessionSet(c *fiber.Ctx, key string, v any) {
	if sess := Session(c); sess != nil {
		sess.Set(key, v)
		_ = sess.Save()
	}
}

func SessionPop(c *fiber.Ctx, key string) any {
	sess := Session(c)
	if sess == nil {
		return nil
	}
	v := sess.Get(key)
	if v != nil {
		sess.Delete(key)
		_ = sess.Save()
	}
	return v
}

// RedirectWithFlash is the non-AJAX half of every form endpoint.
func RedirectWithFlash(c *fiber.Ctx, location, message, messageType string) error {
	SetFlash(c, message, messageType)
	return c.Redirect(location, fiber.StatusSeeOther)
}
