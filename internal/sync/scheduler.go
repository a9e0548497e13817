package sync

import (
	"context"
	"sync"
	"time"

	"github.com/poyhsiao/notekeep/internal/logging"
)

// DefaultInterval is how often the scheduler pushes a snapshot.
const DefaultInterval = 5 * time.Minute

// Scheduler runs periodic background pushes. Pushes are idempotent and
// independent of user-triggered mutations; a mutation during an in-flight
// push simply lands in the next snapshot.
type Scheduler struct {
	engine   *Engine
	interval time.Duration

	stopCh    chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewScheduler creates a Scheduler. A non-positive interval uses the
// default.
func NewScheduler(engine *Engine, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		engine:   engine,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start starts the background push loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.loop(ctx)

	logging.Info("Background sync scheduler started",
		map[string]interface{}{"interval": s.interval.String()})
}

// Stop stops the scheduler and waits for the loop to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()

	logging.Info("Background sync scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if s.engine.Status() == StatusSyncing {
				logging.Debug("Push already in progress, skipping")
				continue
			}

			pushCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			if _, err := s.engine.Push(pushCtx); err != nil {
				logging.Warn("Periodic push failed; will retry next interval",
					map[string]interface{}{"error": err.Error()})
			}
			cancel()
		}
	}
}
