package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "identcore:revoked:"

type cmdable interface {
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Exists(context.Context, ...string) *redis.IntCmd
}

// RedisRevocationStore shares the revocation set between server replicas.
// Each entry expires in redis together with its token, so no compaction is
// needed.
type RedisRevocationStore struct {
	client cmdable
	now    func() time.Time
}

func NewRedisRevocationStore(client *redis.Client, now func() time.Time) *RedisRevocationStore {
	return newRedisRevocationStore(client, now)
}

func newRedisRevocationStore(client cmdable, now func() time.Time) *RedisRevocationStore {
	if now == nil {
		now = time.Now
	}
	return &RedisRevocationStore{client: client, now: now}
}

func (s *RedisRevocationStore) Add(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKey(token), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisRevocationStore) Contains(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

// revokedKey hashes the token so keys stay short and tokens are not stored
// in clear.
func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedKeyPrefix + hex.EncodeToString(sum[:])
}
