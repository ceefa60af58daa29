// Package cache holds the short-lived key stores shared by HTTP middleware.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// InMemoryIdempotencyStore keeps claimed request keys in a map.
// It is suitable for single-instance deployments and tests.
type InMemoryIdempotencyStore struct {
	mu        sync.RWMutex
	entries   map[string]time.Time
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryIdempotencyStore creates a store and starts a goroutine that
// drops expired keys. Call Close to stop it.
func NewInMemoryIdempotencyStore() *InMemoryIdempotencyStore {
	store := &InMemoryIdempotencyStore{
		entries:  make(map[string]time.Time),
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop(5 * time.Minute)

	return store
}

// Claim records key for ttl. It returns false when the key is already
// claimed and has not expired.
func (s *InMemoryIdempotencyStore) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if expiresAt, ok := s.entries[key]; ok && now.Before(expiresAt) {
		return false, nil
	}
	s.entries[key] = now.Add(ttl)
	return true, nil
}

// Release forgets key so the request can be retried
func (s *InMemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemoryIdempotencyStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *InMemoryIdempotencyStore) cleanupLoop(every time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemoryIdempotencyStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, expiresAt := range s.entries {
		if now.After(expiresAt) {
			delete(s.entries, key)
		}
	}
}

// Size returns the number of stored keys, expired ones included
func (s *InMemoryIdempotencyStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

const defaultIdempotencyPrefix = "pos:idempotency:"

// RedisIdempotencyStore shares claimed keys between server instances
type RedisIdempotencyStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisIdempotencyStore creates a store on an existing Redis client.
// An empty keyPrefix selects "pos:idempotency:".
func NewRedisIdempotencyStore(client *redis.Client, keyPrefix string) *RedisIdempotencyStore {
	if keyPrefix == "" {
		keyPrefix = defaultIdempotencyPrefix
	}
	return &RedisIdempotencyStore{client: client, keyPrefix: keyPrefix}
}

// Claim sets key with SETNX so only one instance wins
func (s *RedisIdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim idempotency key: %w", err)
	}
	return ok, nil
}

// Release deletes key so the request can be retried
func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}
