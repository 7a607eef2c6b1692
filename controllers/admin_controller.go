package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/logger"
	"github.com/arfind/arfind_admin/repositories"
)

const msgDashboardError = "Error al cargar el dashboard"

// DashboardController serves the landing pages after login
type DashboardController struct {
	stats *repositories.StatsRepository
	log   *logger.Logger
}

func NewDashboardController(stats *repositories.StatsRepository, log *logger.Logger) *DashboardController {
	return &DashboardController{stats: stats, log: log.Named("dashboard")}
}

// AdminDashboard shows device, plan, employee and order counters
func (dc *DashboardController) AdminDashboard(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	stats, err := dc.stats.AdminStats(ctx)
	if err != nil {
		dc.log.Error().Err(err).Msg("Failed to load admin dashboard")
		return c.String(http.StatusInternalServerError, msgDashboardError)
	}
	return render(c, http.StatusOK, "index", echo.Map{"Stats": stats})
}

// EmployeeDashboard shows order counters
func (dc *DashboardController) EmployeeDashboard(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	stats, err := dc.stats.EmployeeStats(ctx)
	if err != nil {
		dc.log.Error().Err(err).Msg("Failed to load employee dashboard")
		return c.String(http.StatusInternalServerError, msgDashboardError)
	}
	return render(c, http.StatusOK, "base", echo.Map{"Stats": stats})
}
