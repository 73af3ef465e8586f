package consumer

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Nicoladla/drivent-booking/internal/repository"
	"github.com/Nicoladla/drivent-booking/pkg/mq"
)

// PaymentPaid is the payload published by the payments side when a
// ticket purchase settles.
type PaymentPaid struct {
	Event   string `json:"event"`   // "payment.paid"
	Version int    `json:"version"` // 1
	Data    struct {
		EventID  string `json:"event_id"`
		TicketID uint   `json:"ticket_id"`
		Amount   int64  `json:"amount"`
	} `json:"data"`
}

// PaymentConsumer flips tickets from RESERVED to PAID as payment events
// arrive, so the eligibility check sees them as paid.
type PaymentConsumer struct {
	tickets *repository.TicketRepo
	cons    *mq.Consumer
}

func NewPaymentConsumer(tickets *repository.TicketRepo, cons *mq.Consumer) *PaymentConsumer {
	return &PaymentConsumer{tickets: tickets, cons: cons}
}

func (pc *PaymentConsumer) Run(ctx context.Context) error {
	msgs, err := pc.cons.Deliveries(ctx)
	if err != nil {
		return err
	}
	go func() {
		for d := range msgs {
			switch d.RoutingKey {
			case "payment.paid":
				var evt PaymentPaid
				if err := json.Unmarshal(d.Body, &evt); err != nil {
					log.Printf("[consumer] unmarshal error: %v", err)
					_ = d.Nack(false, false)
					continue
				}
				if evt.Data.TicketID == 0 || evt.Data.EventID == "" {
					log.Printf("[consumer] invalid payment.paid payload")
					_ = d.Ack(false)
					continue
				}
				if _, err := pc.tickets.MarkPaidIfNotProcessed(ctx, evt.Data.TicketID, evt.Data.EventID, "payment.paid"); err != nil {
					log.Printf("[consumer] mark paid error: %v", err)
					_ = d.Nack(false, true)
					continue
				}
				_ = d.Ack(false)
			default:
				// ignore others
				_ = d.Ack(false)
			}
		}
	}()
	return nil
}
