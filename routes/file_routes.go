package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/controllers"
)

// RegisterFileRoutes sets up the raw file upload route
func RegisterFileRoutes(g *echo.Group, deps Dependencies) {
	uploadController := controllers.NewUploadController(deps.Images, deps.Log)

	g.POST("/upload", uploadController.Upload)
}
