// Package ident tests for monotonic id generation.
package ident

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/poyhsiao/notekeep/internal/models"
)

// TestNext_usesClockMilliseconds verifies ids come from the clock.
func TestNext_usesClockMilliseconds(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := NewGeneratorWithClock(func() time.Time { return at })

	if got := g.Next(); got != models.ID(at.UnixMilli()) {
		t.Errorf("Next() = %d, want %d", got, at.UnixMilli())
	}
}

// TestNext_sameMillisecondBumps verifies same-tick ids stay distinct and
// strictly increasing.
func TestNext_sameMillisecondBumps(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := NewGeneratorWithClock(func() time.Time { return at })

	prev := g.Next()
	for i := 0; i < 10; i++ {
		next := g.Next()
		if next <= prev {
			t.Fatalf("Next() = %d after %d, want strictly increasing", next, prev)
		}
		prev = next
	}
}

// TestNext_clockStepBackwards verifies a backwards clock never repeats ids.
func TestNext_clockStepBackwards(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := NewGeneratorWithClock(func() time.Time { return at })

	first := g.Next()
	at = at.Add(-time.Hour)
	second := g.Next()

	if second <= first {
		t.Errorf("Next() after clock step = %d, want > %d", second, first)
	}
}

// TestNext_concurrent verifies uniqueness under concurrent allocation.
func TestNext_concurrent(t *testing.T) {
	g := NewGenerator()

	const workers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	idsCh := make(chan models.ID, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				idsCh <- g.Next()
			}
		}()
	}
	wg.Wait()
	close(idsCh)

	var ids []models.ID
	for id := range idsCh {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] {
			t.Fatalf("duplicate id %d", ids[i])
		}
	}
}

// TestNewClientID verifies client ids are non-empty and unique.
func TestNewClientID(t *testing.T) {
	a, b := NewClientID(), NewClientID()
	if a == "" || b == "" {
		t.Fatal("NewClientID() returned empty string")
	}
	if a == b {
		t.Error("NewClientID() returned duplicates")
	}
}
