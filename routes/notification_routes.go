package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/controllers"
)

// RegisterNotificationRoutes registers the notification type routes
func RegisterNotificationRoutes(g *echo.Group, deps Dependencies) {
	notificationController := controllers.NewNotificationController(deps.API, deps.Log)

	notificaciones := g.Group("/notificaciones")
	notificaciones.GET("", notificationController.List)
	notificaciones.GET("/agregar", notificationController.ShowCreate)
	notificaciones.POST("/agregar", notificationController.Create)
	notificaciones.GET("/editar/:id", notificationController.ShowEdit)
	notificaciones.POST("/editar/:id", notificationController.Update)
	notificaciones.POST("/eliminar/:id", notificationController.Delete)
}
