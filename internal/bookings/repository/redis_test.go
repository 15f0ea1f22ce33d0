package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingerrors "cemdon/internal/bookings/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
)

func newRedisRepo(t *testing.T, ttl time.Duration) (DraftRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDraftRepository(client, ttl, time.Second), mr
}

func TestRedisDraftRepository_SaveGet(t *testing.T) {
	repo, mr := newRedisRepo(t, 30*time.Minute)
	ctx := context.Background()

	want := newState("s-1")
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !mr.Exists(redisKeyPrefix + "s-1") {
		t.Fatalf("expected key %q in redis", redisKeyPrefix+"s-1")
	}
	if ttl := mr.TTL(redisKeyPrefix + "s-1"); ttl != 30*time.Minute {
		t.Errorf("TTL = %v, want 30m", ttl)
	}

	got, err := repo.Get(ctx, "s-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}
}

func TestRedisDraftRepository_Expiry(t *testing.T) {
	repo, mr := newRedisRepo(t, 30*time.Minute)
	ctx := context.Background()

	_ = repo.Save(ctx, newState("s-1"))
	mr.FastForward(29 * time.Minute)
	if _, err := repo.Get(ctx, "s-1"); err != nil {
		t.Fatalf("Get() before TTL error = %v", err)
	}

	_ = repo.Save(ctx, newState("s-1"))
	mr.FastForward(29 * time.Minute)
	if _, err := repo.Get(ctx, "s-1"); err != nil {
		t.Fatalf("Get() after refresh error = %v", err)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := repo.Get(ctx, "s-1"); !errors.Is(err, bookingerrors.ErrSessionNotFound) {
		t.Errorf("Get() after TTL error = %v, want ErrSessionNotFound", err)
	}
}

func TestRedisDraftRepository_Delete(t *testing.T) {
	repo, mr := newRedisRepo(t, time.Minute)
	ctx := context.Background()

	_ = repo.Save(ctx, newState("s-1"))
	if err := repo.Delete(ctx, "s-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if mr.Exists(redisKeyPrefix + "s-1") {
		t.Error("key still present after Delete()")
	}
}

func TestRedisDraftRepository_CorruptValue(t *testing.T) {
	repo, mr := newRedisRepo(t, time.Minute)
	if err := mr.Set(redisKeyPrefix+"bad", "{not json"); err != nil {
		t.Fatal(err)
	}

	_, err := repo.Get(context.Background(), "bad")
	if err == nil || errors.Is(err, bookingerrors.ErrSessionNotFound) {
		t.Errorf("Get() error = %v, want a decode error", err)
	}
}

func TestRedisDraftRepository_PingAndOutage(t *testing.T) {
	repo, mr := newRedisRepo(t, time.Minute)
	ctx := context.Background()

	if err := repo.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	mr.Close()
	if err := repo.Ping(ctx); err == nil {
		t.Error("Ping() should fail once redis is gone")
	}
	if _, err := repo.Get(ctx, "s-1"); err == nil || errors.Is(err, bookingerrors.ErrSessionNotFound) {
		t.Errorf("Get() during outage error = %v, want a connection error", err)
	}
}
