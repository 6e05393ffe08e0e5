package shell

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/middleware"
)

type menuItem struct {
	label  string
	action middleware.ManagerAction
}

func (s *Shell) managerItems() []menuItem {
	return []menuItem{
		{"Add room", s.addRoom},
		{"View all rooms", s.viewAllRooms},
		{"View all reservations", s.allReservations},
		{"Book for customer", s.bookForCustomer},
		{"Add manager", s.addManager},
		{"Cancel reservation", s.cancelReservation},
		{"View customers", s.viewCustomers},
		{"Delete customer", s.deleteCustomer},
		{"Export reservations", s.exportReservations},
	}
}

func (s *Shell) managerMenu(ctx context.Context) error {
	items := s.managerItems()
	logout := strconv.Itoa(len(items) + 1)
	for {
		s.println("\n=== Manager Menu ===")
		for i, it := range items {
			s.printf("%d. %s\n", i+1, it.label)
		}
		s.printf("%s. Logout\n", logout)
		choice, err := s.prompt("Choose an option: ")
		if err != nil {
			return err
		}
		if choice == logout {
			return nil
		}
		n, convErr := strconv.Atoi(choice)
		if convErr != nil || n < 1 || n > len(items) {
			s.println("Invalid option, try again.")
			continue
		}
		guarded := middleware.ManagerOnly(s.opts.JWTSecret, s.identity, items[n-1].action)
		if err := s.handle(guarded(ctx, s.session)); err != nil {
			return err
		}
	}
}

func (s *Shell) customerMenu(ctx context.Context, customer domain.Identity) error {
	for {
		s.println("\n=== Customer Menu ===")
		s.println("1. View available rooms")
		s.println("2. Book a room")
		s.println("3. My reservations")
		s.println("4. Logout")
		choice, err := s.prompt("Choose an option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = s.viewAvailableRooms(ctx)
		case "2":
			err = s.bookRoom(ctx, customer)
		case "3":
			err = s.myReservations(ctx, customer)
		case "4":
			return nil
		default:
			s.println("Invalid option, try again.")
		}
		if err = s.handle(err); err != nil {
			return err
		}
	}
}

func (s *Shell) addManager(ctx context.Context, _ domain.Identity) error {
	reg, err := s.promptRegistration(true)
	if err != nil {
		return err
	}
	who, err := s.identity.Register(ctx, domain.RoleManager, reg)
	if err != nil {
		return err
	}
	s.printf("Manager %s added.\n", who.FullName())
	return nil
}

func (s *Shell) viewCustomers(ctx context.Context, _ domain.Identity) error {
	customers, err := s.identity.ListCustomers(ctx)
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		s.println("No customers registered.")
		return nil
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tPhone\tEmail")
	for _, c := range customers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.FullName(), c.Phone, c.Email)
	}
	w.Flush()
	return nil
}

func (s *Shell) deleteCustomer(ctx context.Context, _ domain.Identity) error {
	id, err := s.promptID("Customer ID: ")
	if err != nil {
		return err
	}
	if err := s.identity.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	s.printf("Customer #%d deleted.\n", id)
	return nil
}
