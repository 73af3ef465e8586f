package domain

import "time"

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

// User is an identity reference only; accounts are created by the auth
// flow, which lives outside this service.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"uniqueIndex" json:"email"`
	Name      string `json:"name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Hotel struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Rooms     []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Room capacity is immutable as far as this service is concerned.
type Room struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	HotelID   uint   `gorm:"index" json:"hotelId"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Enrollment is a user's registration for the event; one per user.
type Enrollment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"uniqueIndex" json:"userId"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketType struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Ticket struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	EnrollmentID uint         `gorm:"index" json:"enrollmentId"`
	TicketTypeID uint         `gorm:"index" json:"ticketTypeId"`
	TicketType   TicketType   `json:"ticketType"`
	Status       TicketStatus `gorm:"index" json:"status"` // RESERVED|PAID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Booking assigns one user to one room. At most one booking exists per
// user; the booking service enforces that, not the database.
type Booking struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"index" json:"userId"`
	RoomID    uint `gorm:"index" json:"roomId"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProcessedEvent records already-consumed MQ events so redeliveries are
// no-ops.
type ProcessedEvent struct {
	ID          string `gorm:"primaryKey"` // event unique id from the producer
	EventKey    string `gorm:"index"`      // e.g. payment.paid
	ProcessedAt time.Time
}
