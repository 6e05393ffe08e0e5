package middleware_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/middleware"
	"hotel_reservation/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

type managers map[uint]domain.Identity

func (m managers) FindManager(_ context.Context, id uint) (domain.Identity, error) {
	if who, ok := m[id]; ok {
		return who, nil
	}
	return domain.Identity{}, domain.ErrNotFound
}

func token(t *testing.T, id uint, role domain.Role, ttl time.Duration) middleware.Session {
	t.Helper()
	tok, err := utils.GenerateJWT(id, string(role), secret, ttl)
	require.NoError(t, err)
	return middleware.Session{Token: tok}
}

func TestManagerOnly(t *testing.T) {
	ctx := context.Background()
	boss := domain.Identity{Role: domain.RoleManager, Person: domain.Person{ID: 1, FirstName: "Ada"}}
	known := managers{1: boss}

	var ran []uint
	guarded := middleware.ManagerOnly(secret, known, func(_ context.Context, m domain.Identity) error {
		ran = append(ran, m.ID)
		return nil
	})

	require.NoError(t, guarded(ctx, token(t, 1, domain.RoleManager, time.Minute)))
	assert.Equal(t, []uint{1}, ran)

	denied := map[string]middleware.Session{
		"no session":      {},
		"customer role":   token(t, 1, domain.RoleCustomer, time.Minute),
		"expired":         token(t, 1, domain.RoleManager, -time.Minute),
		"deleted manager": token(t, 2, domain.RoleManager, time.Minute),
		"garbage":         {Token: "not-a-token"},
	}
	for name, s := range denied {
		t.Run(name, func(t *testing.T) {
			err := guarded(ctx, s)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
			assert.True(t, domain.IsUserError(err))
		})
	}
	assert.Len(t, ran, 1)
}

type brokenStore struct{}

func (brokenStore) FindManager(context.Context, uint) (domain.Identity, error) {
	return domain.Identity{}, errors.New("connection reset")
}

func TestManagerOnlyStoreFailure(t *testing.T) {
	guarded := middleware.ManagerOnly(secret, brokenStore{}, func(context.Context, domain.Identity) error {
		t.Fatal("action must not run")
		return nil
	})
	err := guarded(context.Background(), token(t, 1, domain.RoleManager, time.Minute))
	require.Error(t, err)
	assert.False(t, domain.IsUserError(err))
}
