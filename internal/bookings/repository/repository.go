package repository

import (
	"context"
	"time"

	"cemdon/pkg/config"
	"cemdon/pkg/model"
)

// DraftRepository keeps booking session state. Entries expire ttl after
// their last Save; an expired or missing entry yields
// bookingerrors.ErrSessionNotFound.
type DraftRepository interface {
	Get(ctx context.Context, sessionID string) (*model.BookingState, error)
	Save(ctx context.Context, state *model.BookingState) error
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}

// Stopper is implemented by stores that own background goroutines.
type Stopper interface {
	Stop()
}

// New builds the store selected by cfg.SessionStore. Clients must already
// be connected through cfg.SetStoreClient.
func New(cfg *config.Config) DraftRepository {
	switch cfg.SessionStore {
	case config.StoreRedis:
		return NewRedisDraftRepository(cfg.Client.Redis, cfg.SessionTTL, cfg.WriteTimeout)
	case config.StoreMongo:
		return NewMongoDraftRepository(cfg)
	default:
		return NewMemoryDraftRepository(cfg.SessionTTL, cfg.SessionCleanupInterval, time.Now)
	}
}

// withTimeout caps ctx at timeout while keeping an earlier caller deadline.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}
