package repository

import (
	"context"
	"sync"
	"time"

	bookingerrors "cemdon/internal/bookings/errors"
	"cemdon/pkg/model"
)

type memoryEntry struct {
	state     model.BookingState
	expiresAt time.Time
}

type MemoryDraftRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewMemoryDraftRepository starts a cleanup goroutine when cleanupInterval
// is positive. Call Stop to end it.
func NewMemoryDraftRepository(ttl, cleanupInterval time.Duration, now func() time.Time) *MemoryDraftRepository {
	if now == nil {
		now = time.Now
	}
	r := &MemoryDraftRepository{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     now,
		stopCh:  make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go r.cleanupLoop(cleanupInterval)
	}
	return r
}

func (r *MemoryDraftRepository) Get(ctx context.Context, sessionID string) (*model.BookingState, error) {
	r.mu.RLock()
	entry, ok := r.entries[sessionID]
	r.mu.RUnlock()

	if !ok || !r.now().Before(entry.expiresAt) {
		return nil, bookingerrors.ErrSessionNotFound
	}
	state := entry.state
	return &state, nil
}

func (r *MemoryDraftRepository) Save(ctx context.Context, state *model.BookingState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[state.SessionID] = memoryEntry{
		state:     *state,
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

func (r *MemoryDraftRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
	return nil
}

func (r *MemoryDraftRepository) Ping(ctx context.Context) error {
	return nil
}

// Len reports stored entries, expired ones included until the next sweep.
func (r *MemoryDraftRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Sweep drops expired entries and returns how many were removed.
func (r *MemoryDraftRepository) Sweep() int {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.entries {
		if !now.Before(entry.expiresAt) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

func (r *MemoryDraftRepository) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
}

func (r *MemoryDraftRepository) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Sweep()
		case <-r.stopCh:
			return
		}
	}
}
