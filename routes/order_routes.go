package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/controllers"
	"github.com/arfind/arfind_admin/repositories"
)

// RegisterOrderRoutes sets up order management backed by the document store
func RegisterOrderRoutes(g *echo.Group, deps Dependencies) {
	orderController := controllers.NewOrderController(repositories.NewOrderRepository(deps.Store), deps.Log)

	g.GET("/pedidos", orderController.List)
	g.GET("/pedidos/agregar", orderController.ShowCreate)
	g.POST("/pedidos/agregar", orderController.Create)
	g.GET("/modificar_pedido/:id", orderController.ShowEdit)
	g.POST("/modificar_pedido/:id", orderController.Update)
	g.POST("/eliminar_pedido/:id", orderController.Delete)
}
