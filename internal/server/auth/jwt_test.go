package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/identcore/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func TestIssueAndVerify_Success(t *testing.T) {
	clock := newClock()
	iss := NewIssuer([]byte("super-secret"), NewMemoryRevocationStore(), clock.Now)

	tok, err := iss.Issue("alice", time.Hour)
	require.NoError(t, err)

	subject, err := iss.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestIssue_DeterministicForFixedClock(t *testing.T) {
	clock := newClock()
	iss := NewIssuer([]byte("k"), nil, clock.Now)

	t1, err := iss.Issue("alice", time.Hour)
	require.NoError(t, err)
	t2, err := iss.Issue("alice", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, t1, t2)

	clock.Advance(time.Second)
	t3, err := iss.Issue("alice", time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, t1, t3)
}

func TestIssue_DiffersWithinOneSecond(t *testing.T) {
	clock := newClock()
	store := NewMemoryRevocationStore()
	iss := NewIssuer([]byte("k"), store, clock.Now)
	ctx := context.Background()

	first, err := iss.Issue("alice", time.Hour)
	require.NoError(t, err)
	require.NoError(t, iss.Revoke(ctx, first))

	clock.Advance(300 * time.Millisecond)
	second, err := iss.Issue("alice", time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	subject, err := iss.Verify(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	clock := newClock()
	iss := NewIssuer([]byte("k"), nil, clock.Now)
	ctx := context.Background()

	tok, err := iss.Issue("alice", time.Minute)
	require.NoError(t, err)

	clock.Advance(time.Minute - time.Millisecond)
	_, err = iss.Verify(ctx, tok)
	require.NoError(t, err)

	clock.Advance(time.Millisecond)
	_, err = iss.Verify(ctx, tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_Expired(t *testing.T) {
	clock := newClock()
	iss := NewIssuer([]byte("secret"), NewMemoryRevocationStore(), clock.Now)

	tok, err := iss.Issue("u1", time.Minute)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)

	_, err = iss.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	clock := newClock()
	tok, err := NewIssuer([]byte("right-secret"), nil, clock.Now).Issue("u2", time.Hour)
	require.NoError(t, err)

	_, err = NewIssuer([]byte("wrong-secret"), nil, clock.Now).Verify(context.Background(), tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	iss := NewIssuer([]byte("k"), nil, nil)

	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := iss.Verify(context.Background(), tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken, tok)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	clock := newClock()
	iss := NewIssuer([]byte("k"), nil, clock.Now)

	tok, err := iss.Issue("alice", time.Hour)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	other, err := iss.Issue("mallory", time.Hour)
	require.NoError(t, err)
	forged := strings.Join([]string{parts[0], strings.Split(other, ".")[1], parts[2]}, ".")

	_, err = iss.Verify(context.Background(), forged)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestRevoke(t *testing.T) {
	clock := newClock()
	store := NewMemoryRevocationStore()
	iss := NewIssuer([]byte("k"), store, clock.Now)
	ctx := context.Background()

	tok, err := iss.Issue("alice", time.Hour)
	require.NoError(t, err)

	require.NoError(t, iss.Revoke(ctx, tok))
	assert.Equal(t, 1, store.Len())

	_, err = iss.Verify(ctx, tok)
	assert.ErrorIs(t, err, common.ErrTokenRevoked)
}

func TestRevoke_ExpiredTokenIsNoop(t *testing.T) {
	clock := newClock()
	store := NewMemoryRevocationStore()
	iss := NewIssuer([]byte("k"), store, clock.Now)

	tok, err := iss.Issue("alice", time.Minute)
	require.NoError(t, err)
	clock.Advance(time.Hour)

	require.NoError(t, iss.Revoke(context.Background(), tok))
	assert.Equal(t, 0, store.Len())
}

func TestRevoke_RejectsForeignToken(t *testing.T) {
	clock := newClock()
	tok, err := NewIssuer([]byte("a"), nil, clock.Now).Issue("alice", time.Hour)
	require.NoError(t, err)

	err = NewIssuer([]byte("b"), NewMemoryRevocationStore(), clock.Now).Revoke(context.Background(), tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

type failingStore struct{}

func (failingStore) Add(context.Context, string, time.Time) error { return errors.New("down") }
func (failingStore) Contains(context.Context, string) (bool, error) {
	return false, errors.New("down")
}

func TestVerify_StoreErrorIsNotATokenError(t *testing.T) {
	clock := newClock()
	iss := NewIssuer([]byte("k"), failingStore{}, clock.Now)

	tok, err := iss.Issue("alice", time.Hour)
	require.NoError(t, err)

	_, err = iss.Verify(context.Background(), tok)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrInvalidToken)
	assert.NotErrorIs(t, err, common.ErrTokenRevoked)
}
