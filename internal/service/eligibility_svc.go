package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Nicoladla/drivent-booking/internal/domain"
	"github.com/Nicoladla/drivent-booking/internal/repository"
)

// EligibilitySvc decides whether a user's enrollment and ticket qualify
// for a hotel booking.
type EligibilitySvc struct {
	tickets *repository.TicketRepo
}

func NewEligibilitySvc(tickets *repository.TicketRepo) *EligibilitySvc {
	return &EligibilitySvc{tickets: tickets}
}

// Check fails with ErrForbidden on the first violated condition: missing
// enrollment, missing ticket, unpaid ticket, remote ticket, or a ticket
// type without hotel accommodation.
func (s *EligibilitySvc) Check(ctx context.Context, userID uint) error {
	enrollment, err := s.tickets.EnrollmentByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("user %d has no enrollment: %w", userID, domain.ErrForbidden)
	}
	if err != nil {
		return err
	}

	ticket, err := s.tickets.ByEnrollment(ctx, enrollment.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("enrollment %d has no ticket: %w", enrollment.ID, domain.ErrForbidden)
	}
	if err != nil {
		return err
	}

	switch {
	case ticket.Status == domain.TicketReserved:
		return fmt.Errorf("ticket %d is not paid: %w", ticket.ID, domain.ErrForbidden)
	case ticket.TicketType.IsRemote:
		return fmt.Errorf("ticket %d is for remote attendance: %w", ticket.ID, domain.ErrForbidden)
	case !ticket.TicketType.IncludesHotel:
		return fmt.Errorf("ticket %d does not include hotel: %w", ticket.ID, domain.ErrForbidden)
	}
	return nil
}
