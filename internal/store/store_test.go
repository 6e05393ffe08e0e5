package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/store"
	"hotel_reservation/internal/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customer(phone, email string) *domain.Customer {
	return &domain.Customer{Person: domain.Person{
		FirstName: "Ada", LastName: "Lovelace", Phone: phone, Email: email, SecretHash: "x",
	}}
}

func TestCreateCustomerDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	repo := storetest.Repository(t)

	require.NoError(t, repo.CreateCustomer(ctx, customer("5550000001", "ada@example.com")))
	err := repo.CreateCustomer(ctx, customer("5550000001", "other@example.com"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	err = repo.CreateCustomer(ctx, customer("5550000002", "ada@example.com"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSameContactAllowedAcrossRoles(t *testing.T) {
	ctx := context.Background()
	repo := storetest.Repository(t)

	require.NoError(t, repo.CreateCustomer(ctx, customer("5550000001", "ada@example.com")))
	m := &domain.Manager{Person: customer("5550000001", "ada@example.com").Person}
	require.NoError(t, repo.CreateManager(ctx, m))

	n, err := repo.CountManagers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestFindMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := storetest.Repository(t)

	_, err := repo.FindCustomerByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.FindRoomByNumber(ctx, "101")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteReservation(ctx, 7), domain.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteCustomer(ctx, 7), domain.ErrNotFound)
}

func TestRoomAvailability(t *testing.T) {
	ctx := context.Background()
	repo := storetest.Repository(t)

	room := &domain.Room{Number: "101", Type: "single", PricePerNight: 50, IsAvailable: true}
	require.NoError(t, repo.CreateRoom(ctx, room))
	assert.ErrorIs(t, repo.CreateRoom(ctx, &domain.Room{Number: "101", Type: "double", PricePerNight: 80, IsAvailable: true}), domain.ErrDuplicate)

	got, err := repo.FindAvailableRoomByNumber(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, room.ID, got.ID)

	require.NoError(t, repo.SetRoomAvailability(ctx, room.ID, true, false))
	assert.ErrorIs(t, repo.SetRoomAvailability(ctx, room.ID, true, false), domain.ErrRoomUnavailable)
	assert.ErrorIs(t, repo.SetRoomAvailability(ctx, 999, true, false), domain.ErrNotFound)

	_, err = repo.FindAvailableRoomByNumber(ctx, "101")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	available, err := repo.ListAvailableRooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, available)
	all, err := repo.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Booked", all[0].Status())
}

func TestInTxRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := storetest.Repository(t)

	room := &domain.Room{Number: "201", Type: "double", PricePerNight: 80, IsAvailable: true}
	require.NoError(t, repo.CreateRoom(ctx, room))

	boom := errors.New("boom")
	err := repo.InTx(ctx, func(tx store.Repository) error {
		if err := tx.SetRoomAvailability(ctx, room.ID, true, false); err != nil {
			return err
		}
		in := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		if err := tx.InsertReservation(ctx, &domain.Reservation{
			CustomerID: 1, RoomID: room.ID, CheckIn: in, CheckOut: in.AddDate(0, 0, 2), TotalPrice: 160,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.FindRoomByID(ctx, room.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
	reservations, err := repo.ListReservations(ctx)
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestReservationsByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := storetest.Repository(t)

	in := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, cid := range []uint{1, 2, 1} {
		require.NoError(t, repo.InsertReservation(ctx, &domain.Reservation{
			CustomerID: cid, RoomID: 1, CheckIn: in, CheckOut: in.AddDate(0, 0, 1), TotalPrice: 10,
		}))
	}
	n, err := repo.CountReservationsByCustomer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	list, err := repo.ListReservationsByCustomer(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Nights())
}
