package domain

import "errors"

// Error kinds shared by the services. Callers classify with errors.Is; wrapped
// errors carry the offending field or identifier in their message.
var (
	// ErrDuplicate is a unique-constraint violation on phone, email or room number.
	ErrDuplicate = errors.New("already exists")
	// ErrInvalidCredentials is the single outcome of any login mismatch.
	ErrInvalidCredentials = errors.New("invalid login credentials")
	// ErrInvalidDateFormat is returned for dates not in YYYY-MM-DD form.
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	// ErrInvalidDateRange is returned when check-out is not after check-in.
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	// ErrRoomUnavailable is returned when the room is not in the available set.
	ErrRoomUnavailable = errors.New("room is not available")
	// ErrNotFound is returned for absent reservations, customers, managers and rooms.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for malformed registration or room fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict is returned when a customer still has reservations and cannot be deleted.
	ErrConflict = errors.New("conflict")
	// ErrIntegrity means a reservation references a missing customer or room.
	ErrIntegrity = errors.New("integrity violation")
)

// IsUserError reports whether err is an input-shaped failure that the shell
// reports and recovers from. Integrity and persistence failures are not.
func IsUserError(err error) bool {
	for _, kind := range []error{
		ErrDuplicate, ErrInvalidCredentials, ErrInvalidDateFormat, ErrInvalidDateRange,
		ErrRoomUnavailable, ErrNotFound, ErrInvalidInput, ErrConflict,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
