package repositories

import (
	"context"

	"github.com/arfind/arfind_admin/models"
)

// StatsRepository computes dashboard counters, one query per metric.
type StatsRepository struct {
	store     DocumentStore
	employees *EmployeeRepository
	orders    *OrderRepository
}

func NewStatsRepository(store DocumentStore) *StatsRepository {
	return &StatsRepository{
		store:     store,
		employees: NewEmployeeRepository(store),
		orders:    NewOrderRepository(store),
	}
}

func (r *StatsRepository) AdminStats(ctx context.Context) (*models.AdminDashboardStats, error) {
	var (
		stats models.AdminDashboardStats
		err   error
	)

	if stats.Dispositivos, err = r.store.Count(ctx, CollectionDevices); err != nil {
		return nil, err
	}
	if stats.Planes, err = r.store.Count(ctx, CollectionPlans); err != nil {
		return nil, err
	}
	if stats.Empleados, err = r.employees.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Administradores, err = r.employees.CountAdmins(ctx); err != nil {
		return nil, err
	}
	if stats.PedidosEntregados, err = r.orders.Count(ctx, models.OrderStatusDelivered); err != nil {
		return nil, err
	}
	if stats.PedidosNoEntregados, err = r.orders.Count(ctx, models.OrderStatusPending); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepository) EmployeeStats(ctx context.Context) (*models.EmployeeDashboardStats, error) {
	var (
		stats models.EmployeeDashboardStats
		err   error
	)

	if stats.PedidosTotales, err = r.orders.Count(ctx, ""); err != nil {
		return nil, err
	}
	if stats.PedidosEntregados, err = r.orders.Count(ctx, models.OrderStatusDelivered); err != nil {
		return nil, err
	}
	if stats.PedidosNoEntregados, err = r.orders.Count(ctx, models.OrderStatusPending); err != nil {
		return nil, err
	}
	return &stats, nil
}
