package store

import (
	"context"
	"fmt"

	"hotel_reservation/internal/domain"
)

// CreateRoom inserts a room. A taken room number is ErrDuplicate
func (r *GormRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	return classify(r.db.WithContext(ctx).Create(room).Error, "room "+room.Number)
}

// FindRoomByID returns the room with the given id
func (r *GormRepository) FindRoomByID(ctx context.Context, id uint) (domain.Room, error) {
	return first[domain.Room](ctx, r.db, fmt.Sprintf("room %d", id), "id = ?", id)
}

// FindRoomByNumber returns the room with the given number
func (r *GormRepository) FindRoomByNumber(ctx context.Context, number string) (domain.Room, error) {
	return first[domain.Room](ctx, r.db, "room "+number, "number = ?", number)
}

// FindAvailableRoomByNumber looks the number up among available rooms only.
func (r *GormRepository) FindAvailableRoomByNumber(ctx context.Context, number string) (domain.Room, error) {
	return first[domain.Room](ctx, r.db, "room "+number, "number = ? AND is_available = ?", number, true)
}

// ListRooms returns every room ordered by number
func (r *GormRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.WithContext(ctx).Order("number").Find(&rooms).Error
	return rooms, classify(err, "rooms")
}

// ListAvailableRooms returns the available rooms ordered by number
func (r *GormRepository) ListAvailableRooms(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.WithContext(ctx).Where("is_available = ?", true).Order("number").Find(&rooms).Error
	return rooms, classify(err, "rooms")
}

// SetRoomAvailability flips the flag only when it currently equals from, so two
// callers can never both claim the same room. A missing room is ErrNotFound and
// a room whose flag already differs is ErrRoomUnavailable.
func (r *GormRepository) SetRoomAvailability(ctx context.Context, id uint, from, to bool) error {
	res := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("id = ? AND is_available = ?", id, from).
		Update("is_available", to)
	if res.Error != nil {
		return classify(res.Error, fmt.Sprintf("room %d", id))
	}
	if res.RowsAffected == 1 {
		return nil
	}
	if _, err := r.FindRoomByID(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("room %d: %w", id, domain.ErrRoomUnavailable)
}
