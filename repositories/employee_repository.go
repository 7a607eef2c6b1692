package repositories

import (
	"context"

	"github.com/arfind/arfind_admin/models"
)

type EmployeeRepository struct {
	store DocumentStore
}

func NewEmployeeRepository(store DocumentStore) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

// FindByEmail returns the first employee registered with email.
func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	docs, err := r.store.List(ctx, CollectionEmployees, Where("email", email))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	employee := models.EmployeeFromDocument(docs[0].ID, docs[0].Data)
	return &employee, nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx, CollectionEmployees)
}

func (r *EmployeeRepository) CountAdmins(ctx context.Context) (int, error) {
	return r.store.Count(ctx, CollectionEmployees, Where("is_admin", true))
}
