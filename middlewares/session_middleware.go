package middleware

import (
	"time"

	"plantonize-web/models"
	"plantonize-web/repository"
	"plantonize-web/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionLocal   = "session"
	SessionIDLocal = "sid"
)

// RequireSession guards private pages. No valid session means a redirect
// to /login; the guarded handler never runs.
func RequireSession(sessions repository.SessionRepository, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cookieName)
		if sid == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		session, err := sessions.Find(c.Context(), sid)
		if err != nil || session == nil {
			ClearSessionCookie(c, cookieName)
			return c.Redirect("/login", fiber.StatusFound)
		}

		// Tokens with a readable exp are dropped proactively; opaque
		// tokens fail reactively at the first authenticated call.
		if utils.TokenExpired(session.Token) {
			_ = sessions.Delete(c.Context(), sid)
			ClearSessionCookie(c, cookieName)
			return c.Redirect("/login", fiber.StatusFound)
		}

		c.Locals(SessionLocal, session)
		c.Locals(SessionIDLocal, sid)
		return c.Next()
	}
}

// SessionFromCtx returns the session placed by RequireSession, or nil on
// public pages.
func SessionFromCtx(c *fiber.Ctx) *models.Session {
	session, _ := c.Locals(SessionLocal).(*models.Session)
	return session
}

func SessionIDFromCtx(c *fiber.Ctx) string {
	sid, _ := c.Locals(SessionIDLocal).(string)
	return sid
}

func NewSessionCookie(name, sid string, ttl time.Duration) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    sid,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	}
}

func ClearSessionCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
