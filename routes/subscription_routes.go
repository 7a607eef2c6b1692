package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/controllers"
)

// RegisterSubscriptionRoutes sets up subscription plan management
func RegisterSubscriptionRoutes(g *echo.Group, deps Dependencies) {
	planController := controllers.NewPlanController(deps.API, deps.Images, deps.Log)

	planes := g.Group("/planes")
	planes.GET("", planController.List)
	planes.GET("/agregar", planController.ShowCreate)
	planes.POST("/agregar", planController.Create)
	planes.GET("/editar/:id", planController.ShowEdit)
	planes.POST("/editar/:id", planController.Update)
	planes.POST("/eliminar/:id", planController.Delete)
}
