package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// TokenBlacklist answers whether an access token was revoked before it
// expired. Revocations are written by the session issuer, which shares the
// Redis key layout documented on RedisTokenBlacklist.
type TokenBlacklist interface {
	// IsBlacklisted checks if a token's JTI is in the blacklist
	IsBlacklisted(ctx context.Context, jti string) (bool, error)

	// IsUserTokenInvalidated checks if a user's tokens have been invalidated
	// Returns true if tokens issued before the invalidation timestamp should be rejected
	IsUserTokenInvalidated(ctx context.Context, userID string, tokenIssuedAt time.Time) (bool, error)
}

// RedisTokenBlacklist implements TokenBlacklist using Redis. It reads
//
//	pos:token:blacklist:jti:<jti>      present while the token is revoked
//	pos:token:blacklist:user:<userID>  unix seconds; older tokens are rejected
//
// and never writes them.
type RedisTokenBlacklist struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisTokenBlacklist connects to Redis and returns a token blacklist
func NewRedisTokenBlacklist(ctx context.Context, cfg config.RedisConfig) (*RedisTokenBlacklist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis for token blacklist: %w", err)
	}

	return NewRedisTokenBlacklistWithClient(client), nil
}

// NewRedisTokenBlacklistWithClient creates a token blacklist with an existing Redis client
func NewRedisTokenBlacklistWithClient(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{
		client:    client,
		keyPrefix: "pos:token:blacklist:",
	}
}

// jtiKey returns the Redis key for a JTI
func (b *RedisTokenBlacklist) jtiKey(jti string) string {
	return b.keyPrefix + "jti:" + jti
}

// userKey returns the Redis key for user token invalidation
func (b *RedisTokenBlacklist) userKey(userID string) string {
	return b.keyPrefix + "user:" + userID
}

// IsBlacklisted checks if a token's JTI is in the blacklist
func (b *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	key := b.jtiKey(jti)

	exists, err := b.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}

	return exists > 0, nil
}

// IsUserTokenInvalidated checks if a token was issued before the user's invalidation timestamp
func (b *RedisTokenBlacklist) IsUserTokenInvalidated(ctx context.Context, userID string, tokenIssuedAt time.Time) (bool, error) {
	key := b.userKey(userID)

	invalidationTimeStr, err := b.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check user token invalidation: %w", err)
	}

	invalidationTime, err := strconv.ParseInt(invalidationTimeStr, 10, 64)
	if err != nil {
		return false, fmt.Errorf("failed to parse invalidation timestamp: %w", err)
	}

	return tokenIssuedAt.Unix() <= invalidationTime, nil
}

// Client returns the Redis connection, so other components can share it
func (b *RedisTokenBlacklist) Client() *redis.Client {
	return b.client
}

// Close closes the Redis client
func (b *RedisTokenBlacklist) Close() error {
	return b.client.Close()
}

// Ensure RedisTokenBlacklist implements TokenBlacklist
var _ TokenBlacklist = (*RedisTokenBlacklist)(nil)
