package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arfind/arfind_admin/models"
)

func TestMemoryStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id, err := store.Add(ctx, CollectionPlans, map[string]interface{}{"nombre": "Basico"})
	require.NoError(t, err)

	doc, err := store.Get(ctx, CollectionPlans, id)
	require.NoError(t, err)
	assert.Equal(t, "Basico", doc.Data["nombre"])

	require.NoError(t, store.Update(ctx, CollectionPlans, id, map[string]interface{}{"nombre": "Premium"}))
	doc, err = store.Get(ctx, CollectionPlans, id)
	require.NoError(t, err)
	assert.Equal(t, "Premium", doc.Data["nombre"])

	require.NoError(t, store.Delete(ctx, CollectionPlans, id))
	_, err = store.Get(ctx, CollectionPlans, id)
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.ErrorIs(t, store.Update(ctx, CollectionPlans, "missing", map[string]interface{}{"a": 1}), ErrNotFound)
}

func TestEmployeeRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Put(CollectionEmployees, "e1", map[string]interface{}{"nombre": "Ana", "email": "ana@arfind.mx", "is_admin": true})

	repo := NewEmployeeRepository(store)

	e, err := repo.FindByEmail(ctx, "ana@arfind.mx")
	require.NoError(t, err)
	assert.Equal(t, "e1", e.ID)
	assert.True(t, e.IsAdmin)

	_, err = repo.FindByEmail(ctx, "nadie@arfind.mx")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderRepository_CreateStampsTime(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewOrderRepository(store)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	id, err := repo.Create(ctx, models.Order{Titulo: "T", Status: models.OrderStatusPending, UserID: "u1"})
	require.NoError(t, err)

	o, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, fixed, o.CreatedAt)
	assert.Equal(t, models.OrderStatusPending, o.Status)
}

func TestStatsRepository(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Put(CollectionDevices, "d1", map[string]interface{}{})
	store.Put(CollectionDevices, "d2", map[string]interface{}{})
	store.Put(CollectionPlans, "p1", map[string]interface{}{})
	store.Put(CollectionEmployees, "e1", map[string]interface{}{"is_admin": true})
	store.Put(CollectionEmployees, "e2", map[string]interface{}{"is_admin": false})
	store.Put(CollectionEmployees, "e3", map[string]interface{}{"is_admin": false})
	store.Put(CollectionOrders, "o1", map[string]interface{}{"status": models.OrderStatusDelivered})
	store.Put(CollectionOrders, "o2", map[string]interface{}{"status": models.OrderStatusPending})
	store.Put(CollectionOrders, "o3", map[string]interface{}{"status": models.OrderStatusPending})

	repo := NewStatsRepository(store)

	admin, err := repo.AdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AdminDashboardStats{
		Dispositivos:        2,
		Planes:              1,
		Empleados:           3,
		Administradores:     1,
		PedidosEntregados:   1,
		PedidosNoEntregados: 2,
	}, *admin)

	emp, err := repo.EmployeeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, emp.PedidosTotales)
	assert.Equal(t, 1, emp.PedidosEntregados)
	assert.Equal(t, 2, emp.PedidosNoEntregados)
}
