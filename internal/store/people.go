package store

import (
	"context"
	"fmt"

	"hotel_reservation/internal/domain"
)

// CreateCustomer inserts a customer. A taken phone or email is ErrDuplicate
func (r *GormRepository) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	return classify(r.db.WithContext(ctx).Create(c).Error, "customer")
}

// FindCustomerByID returns the customer with the given id
func (r *GormRepository) FindCustomerByID(ctx context.Context, id uint) (domain.Customer, error) {
	return first[domain.Customer](ctx, r.db, fmt.Sprintf("customer %d", id), "id = ?", id)
}

// FindCustomerByPhone returns the customer registered under phone
func (r *GormRepository) FindCustomerByPhone(ctx context.Context, phone string) (domain.Customer, error) {
	return first[domain.Customer](ctx, r.db, "customer", "phone = ?", phone)
}

// FindCustomerByEmail returns the customer registered under email
func (r *GormRepository) FindCustomerByEmail(ctx context.Context, email string) (domain.Customer, error) {
	return first[domain.Customer](ctx, r.db, "customer", "email = ?", email)
}

// ListCustomers returns every customer ordered by id
func (r *GormRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.WithContext(ctx).Order("id").Find(&customers).Error
	return customers, classify(err, "customers")
}

// DeleteCustomer removes the customer row; ErrNotFound when no row matched.
func (r *GormRepository) DeleteCustomer(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Customer{}, id)
	if res.Error != nil {
		return classify(res.Error, "customer")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CreateManager inserts a manager. A taken phone or email is ErrDuplicate
func (r *GormRepository) CreateManager(ctx context.Context, m *domain.Manager) error {
	return classify(r.db.WithContext(ctx).Create(m).Error, "manager")
}

// FindManagerByID returns the manager with the given id
func (r *GormRepository) FindManagerByID(ctx context.Context, id uint) (domain.Manager, error) {
	return first[domain.Manager](ctx, r.db, fmt.Sprintf("manager %d", id), "id = ?", id)
}

// FindManagerByPhone returns the manager registered under phone
func (r *GormRepository) FindManagerByPhone(ctx context.Context, phone string) (domain.Manager, error) {
	return first[domain.Manager](ctx, r.db, "manager", "phone = ?", phone)
}

// FindManagerByEmail returns the manager registered under email
func (r *GormRepository) FindManagerByEmail(ctx context.Context, email string) (domain.Manager, error) {
	return first[domain.Manager](ctx, r.db, "manager", "email = ?", email)
}

// ListManagers returns every manager ordered by id
func (r *GormRepository) ListManagers(ctx context.Context) ([]domain.Manager, error) {
	var managers []domain.Manager
	err := r.db.WithContext(ctx).Order("id").Find(&managers).Error
	return managers, classify(err, "managers")
}

// CountManagers returns the number of managers
func (r *GormRepository) CountManagers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Manager{}).Count(&n).Error
	return n, classify(err, "managers")
}
