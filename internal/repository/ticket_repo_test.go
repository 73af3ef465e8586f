package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Nicoladla/drivent-booking/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := NewTicketRepo(gdb).Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestMarkPaidIfNotProcessed(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTicketRepo(gdb)

	tt := domain.TicketType{Name: "Standard", Price: 25000, IncludesHotel: true}
	if err := gdb.Create(&tt).Error; err != nil {
		t.Fatalf("create ticket type: %v", err)
	}
	tk := domain.Ticket{EnrollmentID: 1, TicketTypeID: tt.ID, Status: domain.TicketReserved}
	if err := gdb.Create(&tk).Error; err != nil {
		t.Fatalf("create ticket: %v", err)
	}

	got, err := repo.MarkPaidIfNotProcessed(context.Background(), tk.ID, "evt-1", "payment.paid")
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if got.Status != domain.TicketPaid {
		t.Fatalf("status %s, want PAID", got.Status)
	}

	// redelivery of the same event is a no-op
	if _, err := repo.MarkPaidIfNotProcessed(context.Background(), tk.ID, "evt-1", "payment.paid"); err != nil {
		t.Fatalf("redelivery: %v", err)
	}

	var processed int64
	if err := gdb.Model(&domain.ProcessedEvent{}).Count(&processed).Error; err != nil {
		t.Fatalf("count processed: %v", err)
	}
	if processed != 1 {
		t.Fatalf("processed events %d, want 1", processed)
	}
}

func TestMarkPaidUnknownTicket(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTicketRepo(gdb)

	if _, err := repo.MarkPaidIfNotProcessed(context.Background(), 42, "evt-2", "payment.paid"); err == nil {
		t.Fatal("expected error for unknown ticket")
	}
}
