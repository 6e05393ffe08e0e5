package domain

import "time"

// DateLayout is the accepted form of check-in and check-out dates
const DateLayout = "2006-01-02"

// Reservation Model
type Reservation struct {
	ID         uint      `gorm:"primaryKey"`     // Primary key
	CustomerID uint      `gorm:"index;not null"` // Customer holding the booking
	RoomID     uint      `gorm:"index;not null"` // Booked room
	CheckIn    time.Time `gorm:"not null"`       // First night, midnight UTC
	CheckOut   time.Time `gorm:"not null"`       // Departure day, exclusive
	TotalPrice float64   `gorm:"not null"`       // Nights times nightly price at booking time
	CreatedAt  time.Time `gorm:"autoCreateTime"` // Booking timestamp
}

// Nights is the number of nights covered by the reservation
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}
