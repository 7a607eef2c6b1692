package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/logger"
	"github.com/arfind/arfind_admin/models"
	"github.com/arfind/arfind_admin/utils"
)

const sessionContextKey = "session"

// SessionCookie describes the cookie carrying the session id.
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// LoadSession attaches the stored session referenced by the cookie, if any,
// to the request context. Requests without a valid session get an empty one.
func LoadSession(store utils.SessionStore, cookieName string, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := &models.Session{}

			if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
				stored, err := store.Get(c.Request().Context(), cookie.Value)
				switch {
				case err == nil:
					session = stored
				case !errors.Is(err, utils.ErrSessionNotFound):
					log.Error().Err(err).Msg("Failed to load session")
				}
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

// GetSession returns the session attached by LoadSession. It never returns nil.
func GetSession(c echo.Context) *models.Session {
	if s, ok := c.Get(sessionContextKey).(*models.Session); ok && s != nil {
		return s
	}
	return &models.Session{}
}

// WriteCookie issues the session cookie for id.
func (sc SessionCookie) WriteCookie(c echo.Context, id string) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sc.TTL.Seconds()),
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (sc SessionCookie) ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
