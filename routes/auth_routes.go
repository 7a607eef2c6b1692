package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/controllers"
)

// RegisterAuthRoutes sets up the public login and logout routes
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	e.GET("/", authController.ShowLogin)
	e.POST("/", authController.Login)
	e.GET("/logout", authController.Logout)
}
