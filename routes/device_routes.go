package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/controllers"
)

func RegisterDeviceRoutes(g *echo.Group, deps Dependencies) {
	deviceController := controllers.NewDeviceController(deps.API, deps.Log)

	g.GET("/dispositivos", deviceController.List)
	g.GET("/agregar_dispositivo", deviceController.ShowCreate)
	g.POST("/agregar_dispositivo", deviceController.Create)
	g.GET("/modificar_dispositivo/:id", deviceController.ShowEdit)
	g.POST("/modificar_dispositivo/:id", deviceController.Update)
	g.POST("/eliminar_dispositivo/:id", deviceController.Delete)
}
