// middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireLogin redirects to the login page when the request carries no
// session token. Token validity is not checked here.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !GetSession(c).Authenticated() {
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}

// RequireAdmin sends non-admin employees to their own dashboard.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !GetSession(c).IsAdmin {
				return c.Redirect(http.StatusFound, "/dashboard2")
			}
			return next(c)
		}
	}
}

// RequireEmployee sends administrators to the admin dashboard.
func RequireEmployee() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if GetSession(c).IsAdmin {
				return c.Redirect(http.StatusFound, "/dashboard")
			}
			return next(c)
		}
	}
}
