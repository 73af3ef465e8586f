package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Nicoladla/drivent-booking/internal/domain"
)

type TicketRepo struct{ db *gorm.DB }

func NewTicketRepo(db *gorm.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

func (r *TicketRepo) Migrate() error {
	return r.db.AutoMigrate(
		&domain.User{},
		&domain.Enrollment{},
		&domain.TicketType{},
		&domain.Ticket{},
		&domain.ProcessedEvent{},
	)
}

func (r *TicketRepo) EnrollmentByUser(ctx context.Context, userID uint) (*domain.Enrollment, error) {
	var e domain.Enrollment
	if err := r.db.WithContext(ctx).First(&e, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *TicketRepo) ByEnrollment(ctx context.Context, enrollmentID uint) (*domain.Ticket, error) {
	var t domain.Ticket
	if err := r.db.WithContext(ctx).Preload("TicketType").First(&t, "enrollment_id = ?", enrollmentID).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// MarkPaidIfNotProcessed flips the ticket to PAID unless the event was
// consumed before; redeliveries then return the current ticket untouched.
func (r *TicketRepo) MarkPaidIfNotProcessed(ctx context.Context, ticketID uint, eventID, eventKey string) (*domain.Ticket, error) {
	var t domain.Ticket
	tx := r.db.WithContext(ctx).Begin()

	var seen int64
	if err := tx.Model(&domain.ProcessedEvent{}).Where("id = ?", eventID).Count(&seen).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if seen > 0 {
		if err := tx.First(&t, "id = ?", ticketID).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		return &t, tx.Commit().Error
	}

	if err := tx.First(&t, "id = ?", ticketID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if t.Status != domain.TicketPaid {
		t.Status = domain.TicketPaid
		if err := tx.Save(&t).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	rec := domain.ProcessedEvent{ID: eventID, EventKey: eventKey, ProcessedAt: time.Now().UTC()}
	if err := tx.Create(&rec).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	return &t, tx.Commit().Error
}
