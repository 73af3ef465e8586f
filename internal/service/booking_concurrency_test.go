package service

import (
	"context"
	"sync"
	"testing"

	"github.com/Nicoladla/drivent-booking/internal/domain"
)

// TestConcurrentCreateDoesNotOversell fires 100 eligible guests at a room
// with 5 beds; the per-room lock must let exactly 5 through.
func TestConcurrentCreateDoesNotOversell(t *testing.T) {
	gdb := newTestDB(t)
	svc := newBookingSvc(gdb)
	room := createRoom(t, gdb, 5)

	guests := make([]uint, 100)
	for i := range guests {
		guests[i] = createPaidGuest(t, gdb).ID
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	success, failure := 0, 0

	for _, userID := range guests {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := svc.Create(context.Background(), userID, room.ID)
			mu.Lock()
			if err == nil {
				success++
			} else {
				failure++
			}
			mu.Unlock()
		}(userID)
	}
	wg.Wait()

	if success != 5 {
		t.Errorf("expected exactly 5 successful bookings, got %d", success)
	}
	if failure != 95 {
		t.Errorf("expected exactly 95 rejections, got %d", failure)
	}

	var occupants int64
	if err := gdb.Model(&domain.Booking{}).Where("room_id = ?", room.ID).Count(&occupants).Error; err != nil {
		t.Fatalf("count occupants: %v", err)
	}
	if occupants != 5 {
		t.Errorf("room holds %d bookings, want 5", occupants)
	}
}
