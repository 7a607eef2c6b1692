package repositories

import (
	"context"
	"time"

	"github.com/arfind/arfind_admin/models"
)

type OrderRepository struct {
	store DocumentStore
	now   func() time.Time
}

func NewOrderRepository(store DocumentStore) *OrderRepository {
	return &OrderRepository{store: store, now: time.Now}
}

func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	docs, err := r.store.List(ctx, CollectionOrders)
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, models.OrderFromDocument(doc.ID, doc.Data))
	}
	return orders, nil
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*models.Order, error) {
	doc, err := r.store.Get(ctx, CollectionOrders, id)
	if err != nil {
		return nil, err
	}
	order := models.OrderFromDocument(doc.ID, doc.Data)
	return &order, nil
}

// Create stores a new order stamped with the current time.
func (r *OrderRepository) Create(ctx context.Context, order models.Order) (string, error) {
	fields := order.Fields()
	fields["createdAt"] = r.now()
	return r.store.Add(ctx, CollectionOrders, fields)
}

func (r *OrderRepository) Update(ctx context.Context, id string, order models.Order) error {
	return r.store.Update(ctx, CollectionOrders, id, order.Fields())
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, CollectionOrders, id)
}

// Count returns the number of orders, or only those in status when non-empty.
func (r *OrderRepository) Count(ctx context.Context, status string) (int, error) {
	if status == "" {
		return r.store.Count(ctx, CollectionOrders)
	}
	return r.store.Count(ctx, CollectionOrders, Where("status", status))
}
