package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/controllers"
)

func RegisterProductRoutes(g *echo.Group, deps Dependencies) {
	productController := controllers.NewProductController(deps.API, deps.Images, deps.Log)

	g.GET("/productos", productController.List)
	g.GET("/agregar_producto", productController.ShowCreate)
	g.POST("/agregar_producto", productController.Create)
	g.GET("/modificar_producto/:id", productController.ShowEdit)
	g.POST("/modificar_producto/:id", productController.Update)
	g.POST("/eliminar_producto/:id", productController.Delete)
}
