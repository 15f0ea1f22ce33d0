package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingerrors "cemdon/internal/bookings/errors"
	"cemdon/pkg/model"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "cemdon:booking:session:"

type redisDraftRepository struct {
	client  redis.Cmdable
	ttl     time.Duration
	timeout time.Duration
}

func NewRedisDraftRepository(client redis.Cmdable, ttl, timeout time.Duration) DraftRepository {
	return &redisDraftRepository{client: client, ttl: ttl, timeout: timeout}
}

func redisKey(sessionID string) string {
	return redisKeyPrefix + sessionID
}

func (r *redisDraftRepository) Get(ctx context.Context, sessionID string) (*model.BookingState, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.client.Get(ctx, redisKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, bookingerrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}

	var state model.BookingState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}
	return &state, nil
}

func (r *redisDraftRepository) Save(ctx context.Context, state *model.BookingState) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", state.SessionID, err)
	}
	if err := r.client.Set(ctx, redisKey(state.SessionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", state.SessionID, err)
	}
	return nil
}

func (r *redisDraftRepository) Delete(ctx context.Context, sessionID string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.client.Del(ctx, redisKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}

func (r *redisDraftRepository) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	return r.client.Ping(ctx).Err()
}
