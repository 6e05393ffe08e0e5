package store

import (
	"context"
	"fmt"

	"hotel_reservation/internal/domain"
)

// InsertReservation stores a new reservation and sets its id
func (r *GormRepository) InsertReservation(ctx context.Context, res *domain.Reservation) error {
	return classify(r.db.WithContext(ctx).Create(res).Error, "reservation")
}

// FindReservation returns the reservation with the given id
func (r *GormRepository) FindReservation(ctx context.Context, id uint) (domain.Reservation, error) {
	return first[domain.Reservation](ctx, r.db, fmt.Sprintf("reservation %d", id), "id = ?", id)
}

// DeleteReservation removes the reservation with the given id
func (r *GormRepository) DeleteReservation(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Reservation{}, id)
	if res.Error != nil {
		return classify(res.Error, fmt.Sprintf("reservation %d", id))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("reservation %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListReservations returns every reservation ordered by id
func (r *GormRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, classify(err, "reservations")
}

// ListReservationsByCustomer returns the reservations held by one customer
func (r *GormRepository) ListReservationsByCustomer(ctx context.Context, customerID uint) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("check_in").Find(&out).Error
	return out, classify(err, "reservations")
}

// CountReservationsByCustomer counts the reservations held by one customer
func (r *GormRepository) CountReservationsByCustomer(ctx context.Context, customerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Reservation{}).Where("customer_id = ?", customerID).Count(&n).Error
	return n, classify(err, "reservations")
}
