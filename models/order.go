package models

import "time"

const (
	OrderStatusDelivered = "Entregado"
	OrderStatusPending   = "No Entregado"
)

// OrderStatuses lists the statuses an order can be in, in display order.
var OrderStatuses = []string{OrderStatusPending, OrderStatusDelivered}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Order is a document in the pedidos collection.
type Order struct {
	ID          string
	Titulo      string
	Descripcion string
	Items       string
	Status      string
	UserID      string
	CreatedAt   time.Time
}

// OrderFromDocument maps a pedidos document to an Order.
func OrderFromDocument(id string, data map[string]interface{}) Order {
	return Order{
		ID:          id,
		Titulo:      getStringFromInterface(data["titulo"]),
		Descripcion: getStringFromInterface(data["descripcion"]),
		Items:       getStringFromInterface(data["items"]),
		Status:      getStringFromInterface(data["status"]),
		UserID:      getStringFromInterface(data["userId"]),
		CreatedAt:   getTimeFromInterface(data["createdAt"]),
	}
}

// Fields returns the mutable order fields keyed by document field name.
func (o Order) Fields() map[string]interface{} {
	return map[string]interface{}{
		"titulo":      o.Titulo,
		"descripcion": o.Descripcion,
		"items":       o.Items,
		"status":      o.Status,
		"userId":      o.UserID,
	}
}

// Delivered reports whether the order has been delivered.
func (o Order) Delivered() bool {
	return o.Status == OrderStatusDelivered
}

// CreatedAtText formats the creation time for display.
func (o Order) CreatedAtText() string {
	return Timestamp{Time: o.CreatedAt}.String()
}
