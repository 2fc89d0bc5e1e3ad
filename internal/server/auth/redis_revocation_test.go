package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRedis struct {
	mu   sync.Mutex
	ttls map[string]time.Duration
	err  error
}

func newMockRedis() *mockRedis {
	return &mockRedis{ttls: make(map[string]time.Duration)}
}

func (m *mockRedis) Set(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return redis.NewStatusResult("", m.err)
	}
	m.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (m *mockRedis) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return redis.NewIntResult(0, m.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := m.ttls[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisRevocationStore_AddSetsTTL(t *testing.T) {
	clock := newClock()
	client := newMockRedis()
	s := newRedisRevocationStore(client, clock.Now)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "tok", clock.Now().Add(90*time.Second)))

	assert.Equal(t, 90*time.Second, client.ttls[revokedKey("tok")])

	ok, err := s.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Contains(ctx, "other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisRevocationStore_SkipsExpired(t *testing.T) {
	clock := newClock()
	client := newMockRedis()
	s := newRedisRevocationStore(client, clock.Now)

	require.NoError(t, s.Add(context.Background(), "tok", clock.Now().Add(-time.Second)))
	assert.Empty(t, client.ttls)
}

func TestRedisRevocationStore_Errors(t *testing.T) {
	clock := newClock()
	client := newMockRedis()
	client.err = errors.New("connection refused")
	s := newRedisRevocationStore(client, clock.Now)
	ctx := context.Background()

	assert.Error(t, s.Add(ctx, "tok", clock.Now().Add(time.Hour)))

	_, err := s.Contains(ctx, "tok")
	assert.ErrorContains(t, err, "connection refused")
}

func TestRevokedKey(t *testing.T) {
	k := revokedKey("abc")
	assert.Contains(t, k, revokedKeyPrefix)
	assert.Len(t, k, len(revokedKeyPrefix)+64)
	assert.Equal(t, k, revokedKey("abc"))
	assert.NotEqual(t, k, revokedKey("abd"))
}

func TestIssuer_WithRedisStore(t *testing.T) {
	clock := newClock()
	iss := NewIssuer([]byte("k"), newRedisRevocationStore(newMockRedis(), clock.Now), clock.Now)
	ctx := context.Background()

	tok, err := iss.Issue("alice", time.Hour)
	require.NoError(t, err)
	require.NoError(t, iss.Revoke(ctx, tok))

	_, err = iss.Verify(ctx, tok)
	assert.Error(t, err)
}
