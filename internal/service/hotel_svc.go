package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Nicoladla/drivent-booking/internal/domain"
	"github.com/Nicoladla/drivent-booking/internal/repository"
)

type HotelSvc struct {
	hotels *repository.HotelRepo
}

func NewHotelSvc(hotels *repository.HotelRepo) *HotelSvc {
	return &HotelSvc{hotels: hotels}
}

func (s *HotelSvc) List(ctx context.Context) ([]domain.Hotel, error) {
	return s.hotels.List(ctx)
}

func (s *HotelSvc) Get(ctx context.Context, hotelID uint) (*domain.Hotel, error) {
	h, err := s.hotels.ByID(ctx, hotelID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("hotel %d: %w", hotelID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}
