package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/controllers"
	"github.com/arfind/arfind_admin/middleware"
	"github.com/arfind/arfind_admin/repositories"
)

// RegisterAdminRoutes sets up the dashboards and employee management
func RegisterAdminRoutes(g *echo.Group, deps Dependencies) {
	dashboardController := controllers.NewDashboardController(repositories.NewStatsRepository(deps.Store), deps.Log)
	employeeController := controllers.NewEmployeeController(deps.API, deps.Log)

	g.GET("/dashboard", dashboardController.AdminDashboard, middleware.RequireAdmin())
	g.GET("/dashboard2", dashboardController.EmployeeDashboard, middleware.RequireEmployee())

	g.GET("/empleados", employeeController.List)
	g.GET("/empleados/agregar", employeeController.ShowCreate)
	g.POST("/empleados/agregar", employeeController.Create)
	g.GET("/empleados/editar/:id", employeeController.ShowEdit)
	g.POST("/empleados/editar/:id", employeeController.Update)
	g.POST("/empleados/eliminar/:id", employeeController.Delete)
}
