// Package store is the explicit data-access layer over the four record tables.
// Services depend on the Repository interface only; GormRepository is the
// relational implementation used by the application and its tests.
package store

import (
	"context"
	"errors"
	"fmt"

	"hotel_reservation/internal/db"
	"hotel_reservation/internal/domain"

	"gorm.io/gorm"
)

// Repository is the narrow persistence surface consumed by the services.
type Repository interface {
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	FindCustomerByID(ctx context.Context, id uint) (domain.Customer, error)
	FindCustomerByPhone(ctx context.Context, phone string) (domain.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error

	CreateManager(ctx context.Context, m *domain.Manager) error
	FindManagerByID(ctx context.Context, id uint) (domain.Manager, error)
	FindManagerByPhone(ctx context.Context, phone string) (domain.Manager, error)
	FindManagerByEmail(ctx context.Context, email string) (domain.Manager, error)
	ListManagers(ctx context.Context) ([]domain.Manager, error)
	CountManagers(ctx context.Context) (int64, error)

	CreateRoom(ctx context.Context, r *domain.Room) error
	FindRoomByID(ctx context.Context, id uint) (domain.Room, error)
	FindRoomByNumber(ctx context.Context, number string) (domain.Room, error)
	FindAvailableRoomByNumber(ctx context.Context, number string) (domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	ListAvailableRooms(ctx context.Context) ([]domain.Room, error)
	SetRoomAvailability(ctx context.Context, id uint, from, to bool) error

	InsertReservation(ctx context.Context, r *domain.Reservation) error
	FindReservation(ctx context.Context, id uint) (domain.Reservation, error)
	DeleteReservation(ctx context.Context, id uint) error
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	ListReservationsByCustomer(ctx context.Context, customerID uint) ([]domain.Reservation, error)
	CountReservationsByCustomer(ctx context.Context, customerID uint) (int64, error)

	// InTx runs fn against a transaction-scoped Repository. The transaction
	// commits when fn returns nil and rolls back on error or panic.
	InTx(ctx context.Context, fn func(tx Repository) error) error
}

// GormRepository implements Repository with GORM.
type GormRepository struct {
	db *gorm.DB
}

// New returns a GormRepository bound to the given handle.
func New(db *gorm.DB) *GormRepository { return &GormRepository{db: db} }

// InTx wraps fn in db.Transaction; nested calls reuse the open transaction.
func (r *GormRepository) InTx(ctx context.Context, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

// classify maps driver errors onto domain kinds. Only unique-constraint
// violations become ErrDuplicate; other failures pass through wrapped.
func classify(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	case db.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", what, domain.ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// first loads one row matching the query into dest.
func first[T any](ctx context.Context, g *gorm.DB, what string, query string, args ...any) (T, error) {
	var dest T
	err := g.WithContext(ctx).Where(query, args...).First(&dest).Error
	return dest, classify(err, what)
}
