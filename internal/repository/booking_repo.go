package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nicoladla/drivent-booking/internal/domain"
)

// BookingRepo is a pure data-access boundary; every business rule about
// bookings lives in the service layer.
type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Booking{})
}

func (r *BookingRepo) ByUser(ctx context.Context, userID uint) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) ByID(ctx context.Context, id uint) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepo) UpdateRoom(ctx context.Context, bookingID, roomID uint) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Begin()
	if err := tx.First(&b, "id = ?", bookingID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	b.RoomID = roomID
	if err := tx.Save(&b).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	return &b, tx.Commit().Error
}

// OccupantsOf returns every booking currently holding a seat in the room.
func (r *BookingRepo) OccupantsOf(ctx context.Context, roomID uint) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := r.db.WithContext(ctx).Find(&out, "room_id = ?", roomID).Error; err != nil {
		return nil, err
	}
	return out, nil
}
