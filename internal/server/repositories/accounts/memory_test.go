package accounts

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/identcore/internal/common"
	"github.com/dmitrijs2005/identcore/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r *MemoryRepository, a models.Account) *models.Account {
	t.Helper()
	a.CreatedAt, a.UpdatedAt = created, created
	got, err := r.Insert(context.Background(), &a)
	require.NoError(t, err)
	return got
}

func TestMemoryRepository_InsertAndFind(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	alice := seed(t, r, models.Account{Username: "alice", Email: "a@b.com", Phone: "+100", SessionToken: "tok"})
	require.NotEmpty(t, alice.ID)

	for _, id := range []string{"alice", "a@b.com", "+100"} {
		got, err := r.FindByAnyIdentifier(ctx, id)
		require.NoError(t, err, id)
		assert.Equal(t, alice.ID, got.ID)
	}

	got, err := r.FindByToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	got, err = r.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	_, err = r.FindByAnyIdentifier(ctx, "nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.FindByToken(ctx, "")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_IdentifierPrecedence(t *testing.T) {
	r := NewMemoryRepository()

	byEmail := seed(t, r, models.Account{Username: "first", Email: "shared@b.com"})
	byPhone := seed(t, r, models.Account{Username: "second", Phone: "+200"})
	byName := seed(t, r, models.Account{Username: "carol"})

	got, err := r.FindByAnyIdentifier(context.Background(), "+200", "shared@b.com", "carol")
	require.NoError(t, err)
	assert.Equal(t, byName.ID, got.ID)

	got, err = r.FindByAnyIdentifier(context.Background(), "+200", "shared@b.com")
	require.NoError(t, err)
	assert.Equal(t, byEmail.ID, got.ID)

	got, err = r.FindByAnyIdentifier(context.Background(), "+200")
	require.NoError(t, err)
	assert.Equal(t, byPhone.ID, got.ID)
}

func TestMemoryRepository_InsertConflict(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r, models.Account{Username: "alice", Email: "a@b.com"})

	_, err := r.Insert(context.Background(), &models.Account{Username: "alice"})
	assert.ErrorIs(t, err, common.ErrorConflict)

	_, err = r.Insert(context.Background(), &models.Account{Username: "bob", Email: "a@b.com"})
	assert.ErrorIs(t, err, common.ErrorConflict)

	// absent optional contacts never collide
	_, err = r.Insert(context.Background(), &models.Account{Username: "carol"})
	assert.NoError(t, err)
	_, err = r.Insert(context.Background(), &models.Account{Username: "dave"})
	assert.NoError(t, err)
}

func TestMemoryRepository_ConcurrentInsertSameUsername(t *testing.T) {
	r := NewMemoryRepository()

	var ok, conflict atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := r.Insert(context.Background(), &models.Account{Username: "race", Email: fmt.Sprintf("u%d@b.com", i)})
			if err == nil {
				ok.Add(1)
			} else if assert.ErrorIs(t, err, common.ErrorConflict) {
				conflict.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(19), conflict.Load())
}

func TestMemoryRepository_MergeUpdate(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	alice := seed(t, r, models.Account{Username: "alice", Firstname: "A", SessionToken: "tok"})
	seed(t, r, models.Account{Username: "bob", Email: "bob@b.com"})

	later := created.Add(time.Hour)
	got, err := r.MergeUpdate(ctx, "tok", map[string]any{"firstname": "Jane", "updated_at": later})
	require.NoError(t, err)

	want := alice.Clone()
	want.Firstname = "Jane"
	want.UpdatedAt = later
	assert.Equal(t, want, got)

	_, err = r.MergeUpdate(ctx, "tok", map[string]any{"email": "bob@b.com", "updated_at": later})
	assert.ErrorIs(t, err, common.ErrorConflict)

	stored, err := r.FindByToken(ctx, "tok")
	require.NoError(t, err)
	assert.Empty(t, stored.Email)

	_, err = r.MergeUpdate(ctx, "missing", map[string]any{"firstname": "X"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_Sessions(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	alice := seed(t, r, models.Account{Username: "alice", IPAddress: "10.0.0.1"})

	login := created.Add(time.Minute)
	got, err := r.SetSession(ctx, alice.ID, models.SessionUpdate{Token: "t1", SourceIP: "10.0.0.2", LastLogin: login, UpdatedAt: login})
	require.NoError(t, err)
	assert.Equal(t, "t1", got.SessionToken)
	assert.Equal(t, "10.0.0.2", got.IPAddress)
	require.NotNil(t, got.LastLogin)
	assert.Equal(t, login, *got.LastLogin)

	got, err = r.SetSession(ctx, alice.ID, models.SessionUpdate{Token: "t2", LastLogin: login, UpdatedAt: login})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2", got.IPAddress)

	require.NoError(t, r.ClearSession(ctx, "t2", login))
	_, err = r.FindByToken(ctx, "t2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, r.ClearSession(ctx, "t2", login), common.ErrorNotFound)

	_, err = r.SetSession(ctx, "nope", models.SessionUpdate{})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	r := NewMemoryRepository()
	alice := seed(t, r, models.Account{Username: "alice", Providers: []string{"email"}})

	alice.Providers[0] = "mutated"

	got, err := r.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"email"}, got.Providers)
}
