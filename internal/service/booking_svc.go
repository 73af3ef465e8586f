package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Nicoladla/drivent-booking/internal/domain"
	"github.com/Nicoladla/drivent-booking/internal/repository"
	"github.com/Nicoladla/drivent-booking/pkg/mq"
)

// roomLocks hands out one mutex per room so the vacancy check and the
// following write cannot interleave for the same room within this process.
type roomLocks struct {
	mu sync.Mutex
	m  map[uint]*sync.Mutex
}

func (l *roomLocks) forRoom(roomID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.m == nil {
		l.m = make(map[uint]*sync.Mutex)
	}
	if _, ok := l.m[roomID]; !ok {
		l.m[roomID] = &sync.Mutex{}
	}
	return l.m[roomID]
}

// BookingSvc orchestrates room occupancy, eligibility and the booking
// store. It owns every business rule: a user holds at most one booking,
// a room never exceeds its capacity, and only owners may move bookings.
type BookingSvc struct {
	bookings    *repository.BookingRepo
	rooms       *RoomSvc
	eligibility *EligibilitySvc
	pub         *mq.Publisher // optional; nil disables event publishing
	locks       roomLocks
}

func NewBookingSvc(bookings *repository.BookingRepo, rooms *RoomSvc, eligibility *EligibilitySvc, pub *mq.Publisher) *BookingSvc {
	return &BookingSvc{bookings: bookings, rooms: rooms, eligibility: eligibility, pub: pub}
}

// Get returns the user's current booking.
func (s *BookingSvc) Get(ctx context.Context, userID uint) (*domain.Booking, error) {
	b, err := s.bookings.ByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %d has no booking: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Create books the room for the user. Checks run in order: room exists,
// room has vacancy, user is eligible, user holds no other booking. The
// write is the single final step, so a failed check mutates nothing.
func (s *BookingSvc) Create(ctx context.Context, userID, roomID uint) (*domain.Booking, error) {
	mu := s.locks.forRoom(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, occupants, err := s.rooms.Occupancy(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if occupants >= room.Capacity {
		return nil, fmt.Errorf("room %d is full: %w", roomID, domain.ErrForbidden)
	}

	if err := s.eligibility.Check(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.bookings.ByUser(ctx, userID); err == nil {
		return nil, fmt.Errorf("user %d already has a booking: %w", userID, domain.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	b := &domain.Booking{UserID: userID, RoomID: roomID}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	s.publish(ctx, "booking.created", b)
	return b, nil
}

// ChangeRoom moves an existing booking to another room. The booking must
// belong to the caller; a missing booking is reported as ErrForbidden so
// the response does not reveal whether the id exists. When the target is
// the caller's current room, their own seat does not count against the
// room's capacity.
func (s *BookingSvc) ChangeRoom(ctx context.Context, bookingID, userID, roomID uint) (*domain.Booking, error) {
	mu := s.locks.forRoom(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, occupants, err := s.rooms.Occupancy(ctx, roomID)
	if err != nil {
		return nil, err
	}

	current, err := s.bookings.ByID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("booking %d: %w", bookingID, domain.ErrForbidden)
	}
	if err != nil {
		return nil, err
	}
	if current.UserID != userID {
		return nil, fmt.Errorf("booking %d does not belong to user %d: %w", bookingID, userID, domain.ErrForbidden)
	}

	if current.RoomID == roomID {
		occupants--
	}
	if occupants >= room.Capacity {
		return nil, fmt.Errorf("room %d is full: %w", roomID, domain.ErrForbidden)
	}

	updated, err := s.bookings.UpdateRoom(ctx, bookingID, roomID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking.updated", updated)
	return updated, nil
}

// publish is best effort; booking state is already committed.
func (s *BookingSvc) publish(ctx context.Context, key string, b *domain.Booking) {
	if s.pub == nil {
		return
	}
	_ = s.pub.PublishJSON(ctx, key, map[string]any{
		"event_id":   uuid.NewString(),
		"booking_id": b.ID,
		"user_id":    b.UserID,
		"room_id":    b.RoomID,
	})
}
