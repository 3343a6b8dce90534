package tickets

import (
	"sync"
	"testing"
)

func TestNextNumber(t *testing.T) {
	r := NewRegistry()

	if n := r.NextNumber("guild1"); n != 1 {
		t.Errorf("NextNumber() first = %d, want 1", n)
	}
	if n := r.NextNumber("guild1"); n != 2 {
		t.Errorf("NextNumber() second = %d, want 2", n)
	}

	// Counters are per guild
	if n := r.NextNumber("guild2"); n != 1 {
		t.Errorf("NextNumber() other guild = %d, want 1", n)
	}
}

func TestNumbersNeverReused(t *testing.T) {
	r := NewRegistry()

	n1 := r.NextNumber("guild1")
	r.Create("guild1", "chan1", "user1", n1)
	r.Close("chan1", "mod1")
	r.Remove("chan1")

	if n := r.NextNumber("guild1"); n != 2 {
		t.Errorf("NextNumber() after close+remove = %d, want 2", n)
	}
}

func TestCreateAndGet(t *testing.T) {
	r := NewRegistry()

	created := r.Create("guild1", "chan1", "user1", 1)
	if created.Status != StatusOpenUnclaimed {
		t.Errorf("Create() status = %s, want %s", created.Status, StatusOpenUnclaimed)
	}
	if created.Claimer != "" {
		t.Errorf("Create() claimer = %q, want empty", created.Claimer)
	}

	got, ok := r.Get("chan1")
	if !ok {
		t.Fatal("Get() should find created ticket")
	}
	if got.Owner != "user1" || got.Number != 1 {
		t.Errorf("Get() = %+v, want owner user1 number 1", got)
	}

	if _, ok := r.Get("unknown"); ok {
		t.Error("Get() for unknown channel should return false")
	}
}

func TestClaimFirstWins(t *testing.T) {
	r := NewRegistry()
	r.Create("guild1", "chan1", "user1", 1)

	if !r.Claim("chan1", "staffA") {
		t.Error("first Claim() should succeed")
	}
	if r.Claim("chan1", "staffB") {
		t.Error("second Claim() should fail")
	}

	got, _ := r.Get("chan1")
	if got.Claimer != "staffA" {
		t.Errorf("claimer = %s, want staffA (no overwrite)", got.Claimer)
	}
	if got.Status != StatusOpenClaimed {
		t.Errorf("status = %s, want %s", got.Status, StatusOpenClaimed)
	}
}

func TestClaimInvalidStates(t *testing.T) {
	r := NewRegistry()

	if r.Claim("unknown", "staffA") {
		t.Error("Claim() on unknown channel should fail")
	}

	r.Create("guild1", "chan1", "user1", 1)
	r.Close("chan1", "mod1")
	if r.Claim("chan1", "staffA") {
		t.Error("Claim() on closed ticket should fail")
	}
}

func TestCloseIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Create("guild1", "chan1", "user1", 1)
	r.Claim("chan1", "staffA")

	closed, ok := r.Close("chan1", "mod1")
	if !ok {
		t.Fatal("first Close() should succeed")
	}
	if closed.Status != StatusClosed || closed.ClosedBy != "mod1" {
		t.Errorf("Close() = %+v, want closed by mod1", closed)
	}

	if _, ok := r.Close("chan1", "mod2"); ok {
		t.Error("second Close() should be a no-op returning false")
	}

	got, _ := r.Get("chan1")
	if got.ClosedBy != "mod1" || got.Claimer != "staffA" {
		t.Error("second Close() must not change closedBy or claimer")
	}

	if _, ok := r.Close("unknown", "mod1"); ok {
		t.Error("Close() on unknown channel should return false")
	}
}

func TestCloseWithoutClaim(t *testing.T) {
	r := NewRegistry()
	r.Create("guild1", "chan1", "user1", 1)

	closed, ok := r.Close("chan1", "user1")
	if !ok {
		t.Fatal("Close() on unclaimed ticket should succeed")
	}
	if closed.Claimer != "" {
		t.Errorf("claimer = %q, want empty for unclaimed close", closed.Claimer)
	}
}

func TestRemove(t *testing.T) {
	r := NewRegistry()
	r.Create("guild1", "chan1", "user1", 1)

	if !r.Remove("chan1") {
		t.Error("Remove() should return true for tracked channel")
	}
	if r.Remove("chan1") {
		t.Error("Remove() second call should return false")
	}
	if _, ok := r.Get("chan1"); ok {
		t.Error("Get() should not find removed ticket")
	}
}

func TestListByStatus(t *testing.T) {
	r := NewRegistry()
	r.Create("guild1", "chan2", "user2", 2)
	r.Create("guild1", "chan1", "user1", 1)
	r.Create("guild1", "chan3", "user3", 3)
	r.Create("guild2", "chan4", "user4", 1)
	r.Claim("chan3", "staffA")

	open := r.ListByStatus("guild1", StatusOpenUnclaimed)
	if len(open) != 2 {
		t.Fatalf("ListByStatus(unclaimed) = %d entries, want 2", len(open))
	}
	if open[0].Number != 1 || open[1].Number != 2 {
		t.Errorf("ListByStatus() numbers = [%d %d], want ordered [1 2]", open[0].Number, open[1].Number)
	}

	claimed := r.ListByStatus("guild1", StatusOpenClaimed)
	if len(claimed) != 1 || claimed[0].ChannelID != "chan3" {
		t.Errorf("ListByStatus(claimed) = %+v, want only chan3", claimed)
	}
}

func TestCounts(t *testing.T) {
	r := NewRegistry()
	r.Create("guild1", "chan1", "user1", 1)
	r.Create("guild1", "chan2", "user2", 2)
	r.Create("guild1", "chan3", "user3", 3)
	r.Claim("chan2", "staffA")
	r.Close("chan3", "mod1")

	unclaimed, claimed, closed := r.Counts("guild1")
	if unclaimed != 1 || claimed != 1 || closed != 1 {
		t.Errorf("Counts() = (%d, %d, %d), want (1, 1, 1)", unclaimed, claimed, closed)
	}
}

func TestConcurrentClaims(t *testing.T) {
	r := NewRegistry()
	r.Create("guild1", "chan1", "user1", 1)

	const goroutines = 50
	results := make(chan bool, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			results <- r.Claim("chan1", "staff")
		}(i)
	}
	wg.Wait()
	close(results)

	wins := 0
	for won := range results {
		if won {
			wins++
		}
	}
	if wins != 1 {
		t.Errorf("concurrent Claim() wins = %d, want exactly 1", wins)
	}

	got, _ := r.Get("chan1")
	if got.Status != StatusOpenClaimed {
		t.Errorf("status after concurrent claims = %s, want %s", got.Status, StatusOpenClaimed)
	}
}

func TestConcurrentNextNumber(t *testing.T) {
	r := NewRegistry()

	const goroutines = 100
	numbers := make(chan int, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			numbers <- r.NextNumber("guild1")
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[int]bool)
	for n := range numbers {
		if n < 1 || n > goroutines {
			t.Errorf("NextNumber() = %d, out of range [1, %d]", n, goroutines)
		}
		if seen[n] {
			t.Errorf("NextNumber() returned duplicate %d", n)
		}
		seen[n] = true
	}
}

func TestConcurrentClose(t *testing.T) {
	r := NewRegistry()
	r.Create("guild1", "chan1", "user1", 1)

	const goroutines = 50
	results := make(chan bool, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, ok := r.Close("chan1", "mod")
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	if wins != 1 {
		t.Errorf("concurrent Close() transitions = %d, want exactly 1", wins)
	}
}
