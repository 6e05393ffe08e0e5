package shell

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"hotel_reservation/internal/domain"
)

func (s *Shell) showRooms(rooms []domain.Room, withStatus bool) {
	if len(rooms) == 0 {
		s.println("No rooms to show.")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	if withStatus {
		fmt.Fprintln(w, "Room\tType\tPrice/night\tStatus")
	} else {
		fmt.Fprintln(w, "Room\tType\tPrice/night")
	}
	for _, r := range rooms {
		if withStatus {
			fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\n", r.Number, r.Type, r.PricePerNight, r.Status())
		} else {
			fmt.Fprintf(w, "%s\t%s\t$%.2f\n", r.Number, r.Type, r.PricePerNight)
		}
	}
	w.Flush()
}

func (s *Shell) viewAvailableRooms(ctx context.Context) error {
	rooms, err := s.rooms.ListAvailableRooms(ctx)
	if err != nil {
		return err
	}
	s.showRooms(rooms, false)
	return nil
}

func (s *Shell) viewAllRooms(ctx context.Context, _ domain.Identity) error {
	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return err
	}
	s.showRooms(rooms, true)
	return nil
}

func (s *Shell) addRoom(ctx context.Context, _ domain.Identity) error {
	number, err := s.prompt("Room number: ")
	if err != nil {
		return err
	}
	roomType, err := s.prompt("Room type: ")
	if err != nil {
		return err
	}
	raw, err := s.prompt("Price per night: ")
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%q is not a valid price: %w", raw, domain.ErrInvalidInput)
	}
	room, err := s.rooms.AddRoom(ctx, number, roomType, price)
	if err != nil {
		return err
	}
	s.printf("Room %s added at $%.2f per night.\n", room.Number, room.PricePerNight)
	return nil
}
