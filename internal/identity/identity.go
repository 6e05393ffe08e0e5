// Package identity registers and authenticates customers and managers and
// carries the manager-side customer administration.
package identity

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/store"
	"hotel_reservation/internal/utils"

	"github.com/sirupsen/logrus"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)
)

// Registration is the input of Register.
type Registration struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Secret    string
}

// Service implements registration, login and customer administration.
type Service struct {
	repo       store.Repository
	bcryptCost int
	dummyHash  string
}

// NewService returns a Service hashing secrets with the given bcrypt cost.
func NewService(repo store.Repository, bcryptCost int) *Service {
	s := &Service{repo: repo, bcryptCost: bcryptCost}
	// Unknown phones are checked against this hash so both login failures cost the same.
	s.dummyHash, _ = utils.HashSecret("unknown-account", bcryptCost)
	return s
}

func (r Registration) normalize() Registration {
	return Registration{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Phone:     strings.TrimSpace(r.Phone),
		Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		Secret:    r.Secret,
	}
}

func (r Registration) validate() error {
	switch {
	case r.FirstName == "" || r.LastName == "":
		return fmt.Errorf("first and last name are required: %w", domain.ErrInvalidInput)
	case !phonePattern.MatchString(r.Phone):
		return fmt.Errorf("phone number must be 10 digits: %w", domain.ErrInvalidInput)
	case !emailPattern.MatchString(r.Email):
		return fmt.Errorf("email %q is not valid: %w", r.Email, domain.ErrInvalidInput)
	case strings.TrimSpace(r.Secret) == "":
		return fmt.Errorf("password cannot be empty: %w", domain.ErrInvalidInput)
	}
	return nil
}

// Register persists a new customer or manager. Phone and email must be unused
// within the role's table, otherwise ErrDuplicate names the colliding field.
func (s *Service) Register(ctx context.Context, role domain.Role, reg Registration) (domain.Identity, error) {
	reg = reg.normalize()
	if err := reg.validate(); err != nil {
		return domain.Identity{}, err
	}
	if err := s.checkUnused(ctx, role, reg); err != nil {
		return domain.Identity{}, err
	}
	hash, err := utils.HashSecret(reg.Secret, s.bcryptCost)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("hash secret: %w", err)
	}
	person := domain.Person{
		FirstName:  reg.FirstName,
		LastName:   reg.LastName,
		Phone:      reg.Phone,
		Email:      reg.Email,
		SecretHash: hash,
	}
	switch role {
	case domain.RoleCustomer:
		c := &domain.Customer{Person: person}
		err = s.repo.CreateCustomer(ctx, c)
		person = c.Person
	case domain.RoleManager:
		m := &domain.Manager{Person: person}
		err = s.repo.CreateManager(ctx, m)
		person = m.Person
	default:
		return domain.Identity{}, fmt.Errorf("role %q: %w", role, domain.ErrInvalidInput)
	}
	if err != nil {
		return domain.Identity{}, err
	}
	logrus.WithFields(logrus.Fields{
		"role": role,
		"id":   person.ID,
	}).Info("Identity registered")
	return domain.Identity{Role: role, Person: person}, nil
}

func (s *Service) checkUnused(ctx context.Context, role domain.Role, reg Registration) error {
	if _, err := s.find(ctx, role, "phone", reg.Phone); err == nil {
		return fmt.Errorf("phone number %s: %w", reg.Phone, domain.ErrDuplicate)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if _, err := s.find(ctx, role, "email", reg.Email); err == nil {
		return fmt.Errorf("email %s: %w", reg.Email, domain.ErrDuplicate)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// find looks a person of the role up by phone or email.
func (s *Service) find(ctx context.Context, role domain.Role, by, value string) (domain.Person, error) {
	switch role {
	case domain.RoleCustomer:
		var c domain.Customer
		var err error
		if by == "phone" {
			c, err = s.repo.FindCustomerByPhone(ctx, value)
		} else {
			c, err = s.repo.FindCustomerByEmail(ctx, value)
		}
		return c.Person, err
	case domain.RoleManager:
		var m domain.Manager
		var err error
		if by == "phone" {
			m, err = s.repo.FindManagerByPhone(ctx, value)
		} else {
			m, err = s.repo.FindManagerByEmail(ctx, value)
		}
		return m.Person, err
	}
	return domain.Person{}, fmt.Errorf("role %q: %w", role, domain.ErrInvalidInput)
}

// Login matches phone and secret exactly. Every mismatch yields
// ErrInvalidCredentials without saying which field was wrong.
func (s *Service) Login(ctx context.Context, role domain.Role, phone, secret string) (domain.Identity, error) {
	person, err := s.find(ctx, role, "phone", strings.TrimSpace(phone))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrInvalidInput) {
			return domain.Identity{}, err
		}
		utils.VerifySecret(s.dummyHash, secret)
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	if !utils.VerifySecret(person.SecretHash, secret) {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	return domain.Identity{Role: role, Person: person}, nil
}

// FindManager returns the manager with the given id.
func (s *Service) FindManager(ctx context.Context, id uint) (domain.Identity, error) {
	m, err := s.repo.FindManagerByID(ctx, id)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{Role: domain.RoleManager, Person: m.Person}, nil
}

// FindCustomerByEmail returns the customer registered under email.
func (s *Service) FindCustomerByEmail(ctx context.Context, email string) (domain.Identity, error) {
	c, err := s.repo.FindCustomerByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{Role: domain.RoleCustomer, Person: c.Person}, nil
}
