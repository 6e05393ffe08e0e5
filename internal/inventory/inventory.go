// Package inventory maintains the room catalogue.
package inventory

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"hotel_reservation/internal/domain"
	"hotel_reservation/internal/store"
	"hotel_reservation/internal/utils"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache keys for the two room listings
const (
	allRoomsKey       = "rooms:all"
	availableRoomsKey = "rooms:available"
)

// Service adds and lists rooms. Listings are read through an optional redis cache.
type Service struct {
	repo  store.Repository
	cache *utils.Cache[[]domain.Room]
}

// NewService returns a Service; rdb may be nil to disable caching.
func NewService(repo store.Repository, rdb *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{repo: repo, cache: utils.NewCache[[]domain.Room](rdb, cacheTTL)}
}

// AddRoom creates an available room. The number must be unique.
func (s *Service) AddRoom(ctx context.Context, number, roomType string, pricePerNight float64) (domain.Room, error) {
	number, roomType = strings.TrimSpace(number), strings.TrimSpace(roomType)
	if number == "" || roomType == "" {
		return domain.Room{}, fmt.Errorf("room number and type are required: %w", domain.ErrInvalidInput)
	}
	if math.IsNaN(pricePerNight) || math.IsInf(pricePerNight, 0) || pricePerNight <= 0 {
		return domain.Room{}, fmt.Errorf("price per night must be a positive number: %w", domain.ErrInvalidInput)
	}
	room := domain.Room{Number: number, Type: roomType, PricePerNight: pricePerNight, IsAvailable: true}
	if err := s.repo.CreateRoom(ctx, &room); err != nil {
		return domain.Room{}, err
	}
	s.Invalidate(ctx)
	logrus.WithFields(logrus.Fields{
		"room":  room.Number,
		"type":  room.Type,
		"price": room.PricePerNight,
	}).Info("Room added")
	return room, nil
}

// ListRooms returns every room ordered by number.
func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.cached(ctx, allRoomsKey, s.repo.ListRooms)
}

// ListAvailableRooms returns only rooms whose availability flag is set.
func (s *Service) ListAvailableRooms(ctx context.Context) ([]domain.Room, error) {
	return s.cached(ctx, availableRoomsKey, s.repo.ListAvailableRooms)
}

// Invalidate drops both cached listings. Called after any availability change.
func (s *Service) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, allRoomsKey, availableRoomsKey); err != nil {
		logrus.WithField("error", err.Error()).Warn("Room cache invalidation failed")
	}
}

func (s *Service) cached(ctx context.Context, key string, load func(context.Context) ([]domain.Room, error)) ([]domain.Room, error) {
	rooms, found, err := s.cache.Get(ctx, key)
	if err == nil && found {
		return rooms, nil
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Room cache read failed")
	}
	rooms, err = load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, rooms); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Room cache write failed")
	}
	return rooms, nil
}
