// Package booking binds a customer, a room and a stay into a priced
// reservation while keeping the room's availability flag consistent with the
// reservations that reference it.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/events"
	"hotel_reservation/internal/identity"
	"hotel_reservation/internal/lock"
	"hotel_reservation/internal/store"

	"github.com/sirupsen/logrus"
)

// RoomCache is invalidated whenever a booking or cancellation changes availability.
type RoomCache interface {
	Invalidate(ctx context.Context)
}

// ReservationView joins a reservation with its customer and room for display.
type ReservationView struct {
	Reservation domain.Reservation
	Customer    domain.Customer
	Room        domain.Room
}

// Engine books, lists and cancels reservations.
type Engine struct {
	repo      store.Repository
	identity  *identity.Service
	rooms     RoomCache
	locker    lock.Locker
	publisher events.Publisher
	now       func() time.Time
}

// NewEngine wires the engine. rooms, locker and publisher may be nil.
func NewEngine(repo store.Repository, ident *identity.Service, rooms RoomCache, locker lock.Locker, publisher events.Publisher) *Engine {
	if locker == nil {
		locker = lock.NewLocal()
	}
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Engine{repo: repo, identity: ident, rooms: rooms, locker: locker, publisher: publisher, now: time.Now}
}

// ParseStayDates parses both dates as YYYY-MM-DD and requires check-out to be
// strictly after check-in.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(domain.DateLayout, strings.TrimSpace(checkIn))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("check-in %q: %w", checkIn, domain.ErrInvalidDateFormat)
	}
	out, err := time.Parse(domain.DateLayout, strings.TrimSpace(checkOut))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("check-out %q: %w", checkOut, domain.ErrInvalidDateFormat)
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateRange
	}
	return in, out, nil
}

// Nights is the whole number of days between check-in and check-out.
func Nights(in, out time.Time) int {
	return int(out.Sub(in).Hours() / 24)
}

// TotalPrice is nights times the nightly price.
func TotalPrice(nights int, pricePerNight float64) float64 {
	return float64(nights) * pricePerNight
}

// roomKey names the lock guarding one room.
func roomKey(id uint) string { return fmt.Sprintf("room:%d", id) }

// Book reserves the room identified by roomNumber for the customer. The room
// must be in the available set. The reservation insert and the availability
// flip commit together or not at all.
func (e *Engine) Book(ctx context.Context, customerID uint, roomNumber, checkIn, checkOut string) (domain.Reservation, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	room, err := e.repo.FindAvailableRoomByNumber(ctx, roomNumber)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Reservation{}, fmt.Errorf("room %s: %w", roomNumber, domain.ErrRoomUnavailable)
	}
	if err != nil {
		return domain.Reservation{}, err
	}
	in, out, err := ParseStayDates(checkIn, checkOut)
	if err != nil {
		return domain.Reservation{}, err
	}

	release, err := e.locker.Lock(ctx, roomKey(room.ID))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("room %s: %w", roomNumber, errors.Join(domain.ErrRoomUnavailable, err))
	}
	defer release()

	nights := Nights(in, out)
	res := domain.Reservation{
		CustomerID: customerID,
		RoomID:     room.ID,
		CheckIn:    in,
		CheckOut:   out,
		TotalPrice: TotalPrice(nights, room.PricePerNight),
	}
	err = e.repo.InTx(ctx, func(tx store.Repository) error {
		if _, err := tx.FindCustomerByID(ctx, customerID); err != nil {
			return err
		}
		// Claim fails if another booking flipped the flag since the lookup.
		if err := tx.SetRoomAvailability(ctx, room.ID, true, false); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("room %s: %w", roomNumber, domain.ErrRoomUnavailable)
			}
			return err
		}
		return tx.InsertReservation(ctx, &res)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"room":        roomNumber,
			"error":       err.Error(),
		}).Error("Booking failed")
		return domain.Reservation{}, err
	}

	logrus.WithFields(logrus.Fields{
		"reservation_id": res.ID,
		"customer_id":    customerID,
		"room":           room.Number,
		"nights":         nights,
		"total":          res.TotalPrice,
	}).Info("Room booked")
	e.afterChange(ctx, events.ReservationBooked, res, room)
	return res, nil
}

// BookForCustomer resolves the customer by email, registering one with the
// details from newCustomer when none exists, and then books the room.
// newCustomer is only called when the email is unknown.
func (e *Engine) BookForCustomer(ctx context.Context, email string, newCustomer identity.RegistrationSource, roomNumber, checkIn, checkOut string) (domain.Reservation, domain.Identity, error) {
	customer, err := e.identity.FindCustomerByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		reg, srcErr := newCustomer(ctx)
		if srcErr != nil {
			return domain.Reservation{}, domain.Identity{}, srcErr
		}
		reg.Email = email
		customer, err = e.identity.Register(ctx, domain.RoleCustomer, reg)
	}
	if err != nil {
		return domain.Reservation{}, domain.Identity{}, err
	}
	res, err := e.Book(ctx, customer.ID, roomNumber, checkIn, checkOut)
	return res, customer, err
}

// ListAll returns every reservation with its customer and room. A reservation
// whose customer or room is missing yields ErrIntegrity.
func (e *Engine) ListAll(ctx context.Context) ([]ReservationView, error) {
	reservations, err := e.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}
	return e.views(ctx, reservations)
}

// ListForCustomer returns the reservations held by one customer.
func (e *Engine) ListForCustomer(ctx context.Context, customerID uint) ([]ReservationView, error) {
	reservations, err := e.repo.ListReservationsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return e.views(ctx, reservations)
}

// views resolves the customer and room of each reservation.
func (e *Engine) views(ctx context.Context, reservations []domain.Reservation) ([]ReservationView, error) {
	out := make([]ReservationView, 0, len(reservations))
	for _, r := range reservations {
		c, err := e.repo.FindCustomerByID(ctx, r.CustomerID)
		if err != nil {
			return nil, integrity(r.ID, err)
		}
		room, err := e.repo.FindRoomByID(ctx, r.RoomID)
		if err != nil {
			return nil, integrity(r.ID, err)
		}
		out = append(out, ReservationView{Reservation: r, Customer: c, Room: room})
	}
	return out, nil
}

// integrity turns a missing referenced row into ErrIntegrity.
func integrity(reservationID uint, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("reservation %d references %v: %w", reservationID, err, domain.ErrIntegrity)
	}
	return err
}

// Cancel deletes the reservation and makes its room available again, as one
// transaction. An unknown id is ErrNotFound.
func (e *Engine) Cancel(ctx context.Context, reservationID uint) error {
	res, err := e.repo.FindReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	release, err := e.locker.Lock(ctx, roomKey(res.RoomID))
	if err != nil {
		return err
	}
	defer release()

	var room domain.Room
	err = e.repo.InTx(ctx, func(tx store.Repository) error {
		if err := tx.DeleteReservation(ctx, reservationID); err != nil {
			return err
		}
		if err := tx.SetRoomAvailability(ctx, res.RoomID, false, true); err != nil {
			if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrRoomUnavailable) {
				return fmt.Errorf("room %d of reservation %d is missing or already available: %w", res.RoomID, reservationID, domain.ErrIntegrity)
			}
			return err
		}
		r, err := tx.FindRoomByID(ctx, res.RoomID)
		room = r
		return err
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"reservation_id": reservationID,
			"error":          err.Error(),
		}).Error("Cancellation failed")
		return err
	}
	logrus.WithFields(logrus.Fields{
		"reservation_id": reservationID,
		"room":           room.Number,
	}).Info("Reservation cancelled")
	e.afterChange(ctx, events.ReservationCancelled, res, room)
	return nil
}

// afterChange runs the post-commit side effects: cache invalidation and the event.
func (e *Engine) afterChange(ctx context.Context, kind string, res domain.Reservation, room domain.Room) {
	if e.rooms != nil {
		e.rooms.Invalidate(ctx)
	}
	ev := events.ReservationEvent{
		Type:          kind,
		ReservationID: res.ID,
		CustomerID:    res.CustomerID,
		RoomID:        room.ID,
		RoomNumber:    room.Number,
		CheckIn:       res.CheckIn.Format(domain.DateLayout),
		CheckOut:      res.CheckOut.Format(domain.DateLayout),
		TotalPrice:    res.TotalPrice,
		OccurredAt:    e.now().UTC().Format(time.RFC3339),
	}
	if err := e.publisher.Publish(ctx, ev); err != nil {
		logrus.WithFields(logrus.Fields{
			"type":           kind,
			"reservation_id": res.ID,
			"error":          err.Error(),
		}).Warn("Event publish failed")
	}
}
