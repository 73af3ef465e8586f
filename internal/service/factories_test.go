package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Nicoladla/drivent-booking/internal/domain"
	"github.com/Nicoladla/drivent-booking/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// a single connection so every query sees the same in-memory database
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := repository.NewBookingRepo(gdb).Migrate(); err != nil {
		t.Fatalf("migrate bookings: %v", err)
	}
	if err := repository.NewRoomRepo(gdb).Migrate(); err != nil {
		t.Fatalf("migrate rooms: %v", err)
	}
	if err := repository.NewHotelRepo(gdb).Migrate(); err != nil {
		t.Fatalf("migrate hotels: %v", err)
	}
	if err := repository.NewTicketRepo(gdb).Migrate(); err != nil {
		t.Fatalf("migrate tickets: %v", err)
	}
	return gdb
}

func newBookingSvc(gdb *gorm.DB) *BookingSvc {
	bookings := repository.NewBookingRepo(gdb)
	rooms := NewRoomSvc(repository.NewRoomRepo(gdb), bookings)
	eligibility := NewEligibilitySvc(repository.NewTicketRepo(gdb))
	return NewBookingSvc(bookings, rooms, eligibility, nil)
}

var seq int

func createUser(t *testing.T, gdb *gorm.DB) *domain.User {
	t.Helper()
	seq++
	u := &domain.User{Email: fmt.Sprintf("guest%d@example.com", seq), Name: fmt.Sprintf("Guest %d", seq)}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createEnrollment(t *testing.T, gdb *gorm.DB, userID uint) *domain.Enrollment {
	t.Helper()
	e := &domain.Enrollment{UserID: userID}
	if err := gdb.Create(e).Error; err != nil {
		t.Fatalf("create enrollment: %v", err)
	}
	return e
}

func createTicketType(t *testing.T, gdb *gorm.DB, isRemote, includesHotel bool) *domain.TicketType {
	t.Helper()
	tt := &domain.TicketType{Name: "Standard", Price: 25000, IsRemote: isRemote, IncludesHotel: includesHotel}
	if err := gdb.Create(tt).Error; err != nil {
		t.Fatalf("create ticket type: %v", err)
	}
	return tt
}

func createTicket(t *testing.T, gdb *gorm.DB, enrollmentID, typeID uint, status domain.TicketStatus) *domain.Ticket {
	t.Helper()
	tk := &domain.Ticket{EnrollmentID: enrollmentID, TicketTypeID: typeID, Status: status}
	if err := gdb.Create(tk).Error; err != nil {
		t.Fatalf("create ticket: %v", err)
	}
	return tk
}

func createRoom(t *testing.T, gdb *gorm.DB, capacity int) *domain.Room {
	t.Helper()
	h := &domain.Hotel{Name: "Driven Resort", Image: "https://example.com/resort.png"}
	if err := gdb.Create(h).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}
	r := &domain.Room{HotelID: h.ID, Name: "101", Capacity: capacity}
	if err := gdb.Create(r).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	return r
}

func createBooking(t *testing.T, gdb *gorm.DB, userID, roomID uint) *domain.Booking {
	t.Helper()
	b := &domain.Booking{UserID: userID, RoomID: roomID}
	if err := gdb.Create(b).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}

// createPaidGuest makes a user who passes every eligibility check: enrolled,
// with a paid, in-person, hotel-including ticket.
func createPaidGuest(t *testing.T, gdb *gorm.DB) *domain.User {
	t.Helper()
	u := createUser(t, gdb)
	e := createEnrollment(t, gdb, u.ID)
	tt := createTicketType(t, gdb, false, true)
	createTicket(t, gdb, e.ID, tt.ID, domain.TicketPaid)
	return u
}
