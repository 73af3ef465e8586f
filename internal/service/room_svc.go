package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Nicoladla/drivent-booking/internal/domain"
	"github.com/Nicoladla/drivent-booking/internal/repository"
)

// RoomSvc answers "how full is this room". Read-only.
type RoomSvc struct {
	rooms    *repository.RoomRepo
	bookings *repository.BookingRepo
}

func NewRoomSvc(rooms *repository.RoomRepo, bookings *repository.BookingRepo) *RoomSvc {
	return &RoomSvc{rooms: rooms, bookings: bookings}
}

// Occupancy returns the room together with its current occupant count.
// Vacancy is Capacity minus the count; zero vacancy means the room is full.
func (s *RoomSvc) Occupancy(ctx context.Context, roomID uint) (*domain.Room, int, error) {
	room, err := s.rooms.ByID(ctx, roomID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, fmt.Errorf("room %d: %w", roomID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, 0, err
	}
	occupants, err := s.bookings.OccupantsOf(ctx, roomID)
	if err != nil {
		return nil, 0, err
	}
	return room, len(occupants), nil
}
