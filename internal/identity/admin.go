package identity

import (
	"context"
	"fmt"

	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/store"

	"github.com/sirupsen/logrus"
)

// RegistrationSource supplies the first manager's details, typically from
// SUPER_MANAGER_* variables or an interactive prompt.
type RegistrationSource func(ctx context.Context) (Registration, error)

// EnsureBootstrapManager registers a first manager from source when the
// manager table is empty. It reports whether a manager was created and never
// calls source while any manager exists. When retry is set and the details are
// rejected with a user error, retry is given that error and source is asked
// again for as long as retry returns true. A nil retry makes the first
// rejection final.
func (s *Service) EnsureBootstrapManager(ctx context.Context, source RegistrationSource, retry func(error) bool) (bool, error) {
	n, err := s.repo.CountManagers(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	for {
		reg, err := source(ctx)
		if err != nil {
			return false, fmt.Errorf("super manager details: %w", err)
		}
		_, err = s.Register(ctx, domain.RoleManager, reg)
		if err == nil {
			break
		}
		if retry == nil || !domain.IsUserError(err) || !retry(err) {
			return false, err
		}
	}
	logrus.Info("Super manager created")
	return true, nil
}

// ListCustomers returns every registered customer.
func (s *Service) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

// ListManagers returns every registered manager.
func (s *Service) ListManagers(ctx context.Context) ([]domain.Manager, error) {
	return s.repo.ListManagers(ctx)
}

// DeleteCustomer removes a customer that holds no reservations. A customer
// with reservations is refused with ErrConflict so no reservation is left
// pointing at a missing customer.
func (s *Service) DeleteCustomer(ctx context.Context, id uint) error {
	err := s.repo.InTx(ctx, func(tx store.Repository) error {
		if _, err := tx.FindCustomerByID(ctx, id); err != nil {
			return err
		}
		n, err := tx.CountReservationsByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("customer %d has %d reservation(s), cancel them first: %w", id, n, domain.ErrConflict)
		}
		return tx.DeleteCustomer(ctx, id)
	})
	if err != nil {
		return err
	}
	logrus.WithField("customer_id", id).Info("Customer deleted")
	return nil
}
