package repositories

import (
	"context"
	"errors"
)

// Collection names in the document store.
const (
	CollectionEmployees         = "empleados"
	CollectionOrders            = "pedidos"
	CollectionDevices           = "dispositivos"
	CollectionPlans             = "planes"
	CollectionProducts          = "productos"
	CollectionNotificationTypes = "tipos_notificaciones"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Document is a stored document with its id.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Filter is an equality condition on a document field.
type Filter struct {
	Field string
	Value interface{}
}

// Where builds an equality filter.
func Where(field string, value interface{}) Filter {
	return Filter{Field: field, Value: value}
}

// DocumentStore is the subset of document database operations the panel uses.
type DocumentStore interface {
	List(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	Count(ctx context.Context, collection string, filters ...Filter) (int, error)
	Get(ctx context.Context, collection, id string) (*Document, error)
	Add(ctx context.Context, collection string, data map[string]interface{}) (string, error)
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
}
