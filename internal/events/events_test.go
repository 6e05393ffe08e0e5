package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationEventPayload(t *testing.T) {
	b, err := json.Marshal(ReservationEvent{
		Type:          ReservationBooked,
		ReservationID: 1,
		CustomerID:    2,
		RoomID:        3,
		RoomNumber:    "101",
		CheckIn:       "2024-01-10",
		CheckOut:      "2024-01-13",
		TotalPrice:    150,
		OccurredAt:    "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "reservation.booked",
		"reservation_id": 1,
		"customer_id": 2,
		"room_id": 3,
		"room_number": "101",
		"check_in": "2024-01-10",
		"check_out": "2024-01-13",
		"total_price": 150,
		"occurred_at": "2024-01-01T00:00:00Z"
	}`, string(b))
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), ReservationEvent{Type: ReservationCancelled}))
	assert.NoError(t, p.Close())
}

func TestDialAMQPRejectsBadURL(t *testing.T) {
	_, err := DialAMQP("not-a-url", "hotel.reservations")
	assert.Error(t, err)
}
