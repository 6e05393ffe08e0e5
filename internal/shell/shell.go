// Package shell is the interactive text menu in front of the identity,
// inventory and booking services.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"hotel_reservation/internal/booking"
	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/identity"
	"hotel_reservation/internal/inventory"
	"hotel_reservation/internal/middleware"

	"golang.org/x/term"
)

// Options carries the session and export settings.
type Options struct {
	JWTSecret  string
	SessionTTL time.Duration
	ReportDir  string
}

// Shell reads menu choices from in and writes prompts and results to out.
type Shell struct {
	in         *bufio.Reader
	out        io.Writer
	readSecret func() (string, error)

	identity *identity.Service
	rooms    *inventory.Service
	engine   *booking.Engine
	opts     Options

	session middleware.Session
	now     func() time.Time
}

// New returns a Shell. Secrets are read without echo when in is a terminal.
func New(in io.Reader, out io.Writer, ident *identity.Service, rooms *inventory.Service, engine *booking.Engine, opts Options) *Shell {
	s := &Shell{
		in:       bufio.NewReader(in),
		out:      out,
		identity: ident,
		rooms:    rooms,
		engine:   engine,
		opts:     opts,
		now:      time.Now,
	}
	s.readSecret = s.readLine
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.readSecret = func() (string, error) {
			b, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(s.out)
			return string(b), err
		}
	}
	return s
}

// Run shows the top menu until the user exits or input ends. It returns the
// first error that is not a user error.
func (s *Shell) Run(ctx context.Context) error {
	err := s.topMenu(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Shell) topMenu(ctx context.Context) error {
	for {
		s.println("\n=== Hotel Reservation ===")
		s.println("1. Customer login")
		s.println("2. Customer registration")
		s.println("3. Manager login")
		s.println("4. Exit")
		choice, err := s.prompt("Choose an option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = s.login(ctx, domain.RoleCustomer)
		case "2":
			err = s.registerCustomer(ctx)
		case "3":
			err = s.login(ctx, domain.RoleManager)
		case "4":
			s.println("Goodbye!")
			return nil
		default:
			s.println("Invalid option, try again.")
		}
		if err = s.handle(err); err != nil {
			return err
		}
	}
}

// handle prints user errors and swallows them; anything else is returned.
func (s *Shell) handle(err error) error {
	if err == nil || !domain.IsUserError(err) {
		return err
	}
	s.printf("Error: %v\n", err)
	return nil
}

func (s *Shell) println(a ...any) { fmt.Fprintln(s.out, a...) }

func (s *Shell) printf(format string, a ...any) { fmt.Fprintf(s.out, format, a...) }

func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompt asks until a non-empty answer is given.
func (s *Shell) prompt(label string) (string, error) {
	for {
		s.printf("%s", label)
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
		s.println("Input cannot be empty.")
	}
}

func (s *Shell) promptSecret(label string) (string, error) {
	for {
		s.printf("%s", label)
		secret, err := s.readSecret()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(secret) != "" {
			return secret, nil
		}
		s.println("Input cannot be empty.")
	}
}

func (s *Shell) promptID(label string) (uint, error) {
	raw, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid id: %w", raw, domain.ErrInvalidInput)
	}
	return uint(id), nil
}
