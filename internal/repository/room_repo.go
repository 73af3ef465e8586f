package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nicoladla/drivent-booking/internal/domain"
)

type RoomRepo struct{ db *gorm.DB }

func NewRoomRepo(db *gorm.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

func (r *RoomRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Room{})
}

func (r *RoomRepo) ByID(ctx context.Context, id uint) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}
