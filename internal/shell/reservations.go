package shell

import (
	"context"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"hotel_reservation/internal/booking"
	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/identity"
	"hotel_reservation/internal/report"

	"github.com/sirupsen/logrus"
)

func (s *Shell) promptStay() (room, checkIn, checkOut string, err error) {
	if room, err = s.prompt("Room number: "); err != nil {
		return
	}
	if checkIn, err = s.prompt("Check-in date (YYYY-MM-DD): "); err != nil {
		return
	}
	checkOut, err = s.prompt("Check-out date (YYYY-MM-DD): ")
	return
}

func (s *Shell) printBooked(res domain.Reservation, room string) {
	s.printf("Room %s booked for %d night(s), reservation #%d. Total price: $%.2f\n",
		room, res.Nights(), res.ID, res.TotalPrice)
}

func (s *Shell) bookRoom(ctx context.Context, customer domain.Identity) error {
	room, in, out, err := s.promptStay()
	if err != nil {
		return err
	}
	res, err := s.engine.Book(ctx, customer.ID, room, in, out)
	if err != nil {
		return err
	}
	s.printBooked(res, room)
	return nil
}

func (s *Shell) bookForCustomer(ctx context.Context, _ domain.Identity) error {
	email, err := s.prompt("Customer email: ")
	if err != nil {
		return err
	}
	room, in, out, err := s.promptStay()
	if err != nil {
		return err
	}
	newCustomer := func(context.Context) (identity.Registration, error) {
		s.println("No customer with that email, registering a new one.")
		return s.promptRegistration(false)
	}
	res, who, err := s.engine.BookForCustomer(ctx, email, newCustomer, room, in, out)
	if err != nil {
		return err
	}
	s.printf("Booked for %s.\n", who.FullName())
	s.printBooked(res, room)
	return nil
}

func (s *Shell) showReservations(views []booking.ReservationView) {
	if len(views) == 0 {
		s.println("No reservations found.")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCustomer\tRoom\tCheck-in\tCheck-out\tNights\tTotal")
	for _, v := range views {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t$%.2f\n",
			v.Reservation.ID,
			v.Customer.FullName(),
			v.Room.Number,
			v.Reservation.CheckIn.Format(domain.DateLayout),
			v.Reservation.CheckOut.Format(domain.DateLayout),
			v.Reservation.Nights(),
			v.Reservation.TotalPrice)
	}
	w.Flush()
}

func (s *Shell) myReservations(ctx context.Context, customer domain.Identity) error {
	views, err := s.engine.ListForCustomer(ctx, customer.ID)
	if err != nil {
		return err
	}
	s.showReservations(views)
	return nil
}

func (s *Shell) allReservations(ctx context.Context, _ domain.Identity) error {
	views, err := s.engine.ListAll(ctx)
	if err != nil {
		return err
	}
	s.showReservations(views)
	return nil
}

func (s *Shell) cancelReservation(ctx context.Context, _ domain.Identity) error {
	id, err := s.promptID("Reservation ID: ")
	if err != nil {
		return err
	}
	if err := s.engine.Cancel(ctx, id); err != nil {
		return err
	}
	s.printf("Reservation #%d cancelled.\n", id)
	return nil
}

func (s *Shell) exportReservations(ctx context.Context, _ domain.Identity) error {
	views, err := s.engine.ListAll(ctx)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("reservations-%s.xlsx", s.now().Format("20060102-150405"))
	path := filepath.Join(s.opts.ReportDir, name)
	// A failed export is reported and the menu carries on.
	if err := report.WriteReservations(path, views); err != nil {
		logrus.WithFields(logrus.Fields{"path": path, "error": err.Error()}).Error("Reservation export failed")
		s.printf("Export failed: %v\n", err)
		return nil
	}
	s.printf("Exported %d reservation(s) to %s\n", len(views), path)
	return nil
}
