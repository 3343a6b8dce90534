package moderation

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduleFires(t *testing.T) {
	b := NewBanScheduler()
	defer b.Stop()

	done := make(chan struct{})
	b.Schedule("guild1", "user1", 10*time.Millisecond, func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled unban did not fire")
	}

	if b.Pending() != 0 {
		t.Errorf("Pending() after firing = %d, want 0", b.Pending())
	}
}

func TestCancel(t *testing.T) {
	b := NewBanScheduler()
	defer b.Stop()

	var fired int32
	b.Schedule("guild1", "user1", 20*time.Millisecond, func() {
		atomic.StoreInt32(&fired, 1)
	})

	if !b.Cancel("guild1", "user1") {
		t.Error("Cancel() should return true for a pending timer")
	}
	if b.Cancel("guild1", "user1") {
		t.Error("Cancel() second call should return false")
	}

	time.Sleep(50 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 0 {
		t.Error("cancelled unban should not fire")
	}
}

func TestScheduleReplaces(t *testing.T) {
	b := NewBanScheduler()
	defer b.Stop()

	var first, second int32
	b.Schedule("guild1", "user1", 10*time.Millisecond, func() {
		atomic.StoreInt32(&first, 1)
	})
	b.Schedule("guild1", "user1", 30*time.Millisecond, func() {
		atomic.StoreInt32(&second, 1)
	})

	if b.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1 after replacement", b.Pending())
	}

	time.Sleep(100 * time.Millisecond)

	if atomic.LoadInt32(&first) != 0 {
		t.Error("replaced timer should not fire")
	}
	if atomic.LoadInt32(&second) != 1 {
		t.Error("replacement timer should fire")
	}
}

func TestSchedulerKeysAreIndependent(t *testing.T) {
	b := NewBanScheduler()
	defer b.Stop()

	b.Schedule("guild1", "user1", time.Minute, func() {})
	b.Schedule("guild1", "user2", time.Minute, func() {})
	b.Schedule("guild2", "user1", time.Minute, func() {})

	if b.Pending() != 3 {
		t.Errorf("Pending() = %d, want 3", b.Pending())
	}

	b.Cancel("guild1", "user1")
	if b.Pending() != 2 {
		t.Errorf("Pending() after cancel = %d, want 2", b.Pending())
	}
}

func TestStop(t *testing.T) {
	b := NewBanScheduler()

	var fired int32
	b.Schedule("guild1", "user1", 20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	b.Schedule("guild1", "user2", 20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})

	b.Stop()

	time.Sleep(50 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 0 {
		t.Error("timers should not fire after Stop")
	}
	if b.Pending() != 0 {
		t.Errorf("Pending() after Stop = %d, want 0", b.Pending())
	}
}
