package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nicoladla/drivent-booking/internal/domain"
)

type HotelRepo struct{ db *gorm.DB }

func NewHotelRepo(db *gorm.DB) *HotelRepo {
	return &HotelRepo{db: db}
}

func (r *HotelRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Hotel{})
}

func (r *HotelRepo) List(ctx context.Context) ([]domain.Hotel, error) {
	var out []domain.Hotel
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HotelRepo) ByID(ctx context.Context, id uint) (*domain.Hotel, error) {
	var h domain.Hotel
	if err := r.db.WithContext(ctx).Preload("Rooms").First(&h, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}
