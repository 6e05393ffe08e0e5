package domain

// Room Model
type Room struct {
	ID            uint    `gorm:"primaryKey"`                   // Primary key
	Number        string  `gorm:"size:32;uniqueIndex;not null"` // Unique room number
	Type          string  `gorm:"not null"`                     // Free-text category, e.g. single, double
	PricePerNight float64 `gorm:"not null"`                     // Nightly price
	IsAvailable   bool    `gorm:"not null;default:true"`        // False while a reservation holds the room
}

// Status is the display label derived from the availability flag
func (r Room) Status() string {
	if r.IsAvailable {
		return "Available"
	}
	return "Booked"
}
