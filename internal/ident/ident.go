// Package ident provides identifier generation for notes and todos.
//
// Note and todo ids live in the millisecond-timestamp space so they sort in
// creation order, but two creations in the same millisecond get distinct,
// strictly increasing ids via a monotonic tiebreak.
package ident

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/poyhsiao/notekeep/internal/models"
)

// Generator issues unique, monotonically increasing ids.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewGenerator creates a Generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock creates a Generator with an injected clock, for tests.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next returns the next id. If the clock has not advanced past the last
// issued id (same-millisecond creation, or a clock step backwards), the id
// is bumped by one millisecond instead.
func (g *Generator) Next() models.ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return models.ID(ms)
}

// NewClientID generates an opaque client identifier for sync.
func NewClientID() string {
	return uuid.New().String()
}
