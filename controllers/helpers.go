package controllers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/middleware"
	"github.com/arfind/arfind_admin/services"
	"github.com/arfind/arfind_admin/utils"
)

const requestTimeout = 15 * time.Second

func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), requestTimeout)
}

// render executes a page with the current session and the flash message
// carried in the mensaje query parameter.
func render(c echo.Context, status int, page string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["Session"] = middleware.GetSession(c)
	if _, set := data["Message"]; !set {
		if msg := c.QueryParam("mensaje"); msg != "" {
			data["Message"] = msg
		}
	}
	return c.Render(status, page, data)
}

// redirectWithMessage redirects to path, passing msg as a flash message.
func redirectWithMessage(c echo.Context, path, msg string) error {
	if msg != "" {
		path += "?mensaje=" + url.QueryEscape(msg)
	}
	return c.Redirect(http.StatusFound, path)
}

func sessionToken(c echo.Context) string {
	return middleware.GetSession(c).Token
}

// bindForm binds and validates a form. It returns the message to show when
// the submission is rejected, or "" when it is valid.
func bindForm(c echo.Context, form interface{}) string {
	if err := c.Bind(form); err != nil {
		return utils.MsgBadRequest
	}
	if err := c.Validate(form); err != nil {
		return utils.FormErrorMessage(err)
	}
	return ""
}

// failureMessage prefers the message returned by the API over fallback.
func failureMessage(res services.APIResult, fallback string) string {
	if msg := res.Message(); msg != "" {
		return msg
	}
	return fallback
}

// resolveImage uploads the imagen_file part when present and returns its
// public URL; otherwise it returns current unchanged.
func resolveImage(ctx context.Context, c echo.Context, images *services.ImageService, folder, current string) (string, error) {
	file, err := c.FormFile("imagen_file")
	if err != nil || file.Size == 0 {
		return current, nil
	}
	return images.UploadImage(ctx, file, folder)
}

func hasUpload(c echo.Context) bool {
	file, err := c.FormFile("imagen_file")
	return err == nil && file.Size > 0
}
