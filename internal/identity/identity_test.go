package identity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/identity"
	"hotel_reservation/internal/store"
	"hotel_reservation/internal/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T) (*identity.Service, *store.GormRepository) {
	repo := storetest.Repository(t)
	return identity.NewService(repo, bcrypt.MinCost), repo
}

func ada() identity.Registration {
	return identity.Registration{
		FirstName: "Ada", LastName: "Lovelace", Phone: "5550000001", Email: "Ada@Example.com", Secret: "engine",
	}
}

func TestRegisterHashesSecret(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	id, err := svc.Register(ctx, domain.RoleCustomer, ada())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, id.Role)
	assert.Equal(t, "ada@example.com", id.Email)

	stored, err := repo.FindCustomerByID(ctx, id.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "engine", stored.SecretHash)
}

func TestRegisterDuplicateLeavesExistingUntouched(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	first, err := svc.Register(ctx, domain.RoleCustomer, ada())
	require.NoError(t, err)

	samePhone := ada()
	samePhone.Email = "other@example.com"
	samePhone.FirstName = "Eve"
	_, err = svc.Register(ctx, domain.RoleCustomer, samePhone)
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "phone")

	sameEmail := ada()
	sameEmail.Phone = "5550000002"
	_, err = svc.Register(ctx, domain.RoleCustomer, sameEmail)
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "email")

	stored, err := repo.FindCustomerByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.FirstName)
	customers, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	cases := map[string]func(r *identity.Registration){
		"short phone":  func(r *identity.Registration) { r.Phone = "12345" },
		"letters":      func(r *identity.Registration) { r.Phone = "555000000a" },
		"bad email":    func(r *identity.Registration) { r.Email = "ada.example.com" },
		"empty name":   func(r *identity.Registration) { r.FirstName = "  " },
		"empty secret": func(r *identity.Registration) { r.Secret = " " },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			reg := ada()
			mutate(&reg)
			_, err := svc.Register(ctx, domain.RoleCustomer, reg)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Register(ctx, domain.RoleCustomer, ada())
	require.NoError(t, err)

	got, err := svc.Login(ctx, domain.RoleCustomer, "5550000001", "engine")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)

	_, wrongSecret := svc.Login(ctx, domain.RoleCustomer, "5550000001", "nope")
	_, unknownPhone := svc.Login(ctx, domain.RoleCustomer, "5559999999", "engine")
	require.ErrorIs(t, wrongSecret, domain.ErrInvalidCredentials)
	require.ErrorIs(t, unknownPhone, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongSecret.Error(), unknownPhone.Error())

	// customers cannot log in as managers
	_, err = svc.Login(ctx, domain.RoleManager, "5550000001", "engine")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestEnsureBootstrapManager(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	calls := 0
	source := func(context.Context) (identity.Registration, error) {
		calls++
		return ada(), nil
	}
	created, err := svc.EnsureBootstrapManager(ctx, source, nil)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureBootstrapManager(ctx, source, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, calls)

	managers, err := svc.ListManagers(ctx)
	require.NoError(t, err)
	assert.Len(t, managers, 1)
}

func TestEnsureBootstrapManagerSourceError(t *testing.T) {
	svc, _ := newService(t)
	boom := errors.New("stdin closed")
	_, err := svc.EnsureBootstrapManager(context.Background(), func(context.Context) (identity.Registration, error) {
		return identity.Registration{}, boom
	}, func(error) bool { return true })
	assert.ErrorIs(t, err, boom)
}

func TestDeleteCustomer(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	c, err := svc.Register(ctx, domain.RoleCustomer, ada())
	require.NoError(t, err)

	in := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	res := &domain.Reservation{CustomerID: c.ID, RoomID: 1, CheckIn: in, CheckOut: in.AddDate(0, 0, 1), TotalPrice: 50}
	require.NoError(t, repo.InsertReservation(ctx, res))

	assert.ErrorIs(t, svc.DeleteCustomer(ctx, c.ID), domain.ErrConflict)

	require.NoError(t, repo.DeleteReservation(ctx, res.ID))
	require.NoError(t, svc.DeleteCustomer(ctx, c.ID))
	assert.ErrorIs(t, svc.DeleteCustomer(ctx, c.ID), domain.ErrNotFound)
}

func TestEnsureBootstrapManagerRetriesInvalidDetails(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	bad := ada()
	bad.Phone = "12345"
	attempts := []identity.Registration{bad, ada()}
	source := func(context.Context) (identity.Registration, error) {
		reg := attempts[0]
		attempts = attempts[1:]
		return reg, nil
	}
	var rejected []error
	created, err := svc.EnsureBootstrapManager(ctx, source, func(err error) bool {
		rejected = append(rejected, err)
		return true
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, attempts)
	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0], domain.ErrInvalidInput)

	managers, err := svc.ListManagers(ctx)
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, "5550000001", managers[0].Phone)
}

func TestEnsureBootstrapManagerWithoutRetryFailsOnce(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	calls := 0
	_, err := svc.EnsureBootstrapManager(ctx, func(context.Context) (identity.Registration, error) {
		calls++
		bad := ada()
		bad.Email = "no-at-sign"
		return bad, nil
	}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, calls)
}
