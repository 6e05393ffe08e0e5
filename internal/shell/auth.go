package shell

import (
	"context"

	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/identity"
	"hotel_reservation/internal/middleware"
	"hotel_reservation/internal/utils"
)

func (s *Shell) promptRegistration(withEmail bool) (identity.Registration, error) {
	var reg identity.Registration
	var err error
	if reg.FirstName, err = s.prompt("First name: "); err != nil {
		return reg, err
	}
	if reg.LastName, err = s.prompt("Last name: "); err != nil {
		return reg, err
	}
	if reg.Phone, err = s.prompt("Phone number (10 digits): "); err != nil {
		return reg, err
	}
	if withEmail {
		if reg.Email, err = s.prompt("Email: "); err != nil {
			return reg, err
		}
	}
	reg.Secret, err = s.promptSecret("Password: ")
	return reg, err
}

// PromptSuperManager asks for the first manager's details on the console.
func (s *Shell) PromptSuperManager(context.Context) (identity.Registration, error) {
	s.println("No manager account exists yet. Create the super manager.")
	return s.promptRegistration(true)
}

// RetryRegistration reports a rejected registration and asks for new details.
func (s *Shell) RetryRegistration(err error) bool {
	s.printf("Error: %v\n", err)
	s.println("Please enter the details again.")
	return true
}

func (s *Shell) registerCustomer(ctx context.Context) error {
	reg, err := s.promptRegistration(true)
	if err != nil {
		return err
	}
	who, err := s.identity.Register(ctx, domain.RoleCustomer, reg)
	if err != nil {
		return err
	}
	s.printf("Registration successful. Welcome, %s!\n", who.FullName())
	return nil
}

func (s *Shell) login(ctx context.Context, role domain.Role) error {
	phone, err := s.prompt("Phone number: ")
	if err != nil {
		return err
	}
	secret, err := s.promptSecret("Password: ")
	if err != nil {
		return err
	}
	who, err := s.identity.Login(ctx, role, phone, secret)
	if err != nil {
		return err
	}
	token, err := utils.GenerateJWT(who.ID, string(role), s.opts.JWTSecret, s.opts.SessionTTL)
	if err != nil {
		return err
	}
	s.session = middleware.Session{Token: token}
	defer func() { s.session = middleware.Session{} }()

	s.printf("Welcome, %s!\n", who.FullName())
	if role == domain.RoleManager {
		return s.managerMenu(ctx)
	}
	return s.customerMenu(ctx, who)
}
