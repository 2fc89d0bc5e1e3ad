package accounts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/identcore/internal/common"
	"github.com/dmitrijs2005/identcore/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps accounts in process memory. Uniqueness is checked
// under the same lock as the write, like a store-side unique index.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]*models.Account)}
}

func (r *MemoryRepository) FindByAnyIdentifier(_ context.Context, values ...string) (*models.Account, error) {
	values = nonEmpty(values)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		best     *models.Account
		bestRank = -1
	)
	for _, a := range r.accounts {
		rank := identifierRank(a, values)
		if rank == -1 {
			continue
		}
		if best == nil || rank < bestRank {
			best, bestRank = a, rank
		}
	}
	if best == nil {
		return nil, common.ErrorNotFound
	}
	return best.Clone(), nil
}

func (r *MemoryRepository) FindByUsername(_ context.Context, username string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accounts {
		if a.Username == username {
			return a.Clone(), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) FindByToken(_ context.Context, token string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if a := r.byToken(token); a != nil {
		return a.Clone(), nil
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) Insert(_ context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(account, ""); err != nil {
		return nil, err
	}

	stored := account.Clone()
	stored.ID = uuid.NewString()
	r.accounts[stored.ID] = stored

	return stored.Clone(), nil
}

func (r *MemoryRepository) MergeUpdate(_ context.Context, token string, fields map[string]any) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.byToken(token)
	if current == nil {
		return nil, common.ErrorNotFound
	}

	next := current.Clone()
	next.Apply(fields)
	if err := r.checkUnique(next, next.ID); err != nil {
		return nil, err
	}
	r.accounts[next.ID] = next

	return next.Clone(), nil
}

func (r *MemoryRepository) SetSession(_ context.Context, id string, update models.SessionUpdate) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	a.SessionToken = update.Token
	if update.SourceIP != "" {
		a.IPAddress = update.SourceIP
	}
	login := update.LastLogin
	a.LastLogin = &login
	a.UpdatedAt = update.UpdatedAt

	return a.Clone(), nil
}

func (r *MemoryRepository) ClearSession(_ context.Context, token string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := r.byToken(token)
	if a == nil {
		return common.ErrorNotFound
	}
	a.SessionToken = ""
	a.UpdatedAt = at
	return nil
}

// byToken requires r.mu to be held.
func (r *MemoryRepository) byToken(token string) *models.Account {
	if token == "" {
		return nil
	}
	for _, a := range r.accounts {
		if a.SessionToken == token {
			return a
		}
	}
	return nil
}

// checkUnique requires r.mu to be held. skipID excludes the record being
// updated.
func (r *MemoryRepository) checkUnique(candidate *models.Account, skipID string) error {
	for id, a := range r.accounts {
		if id == skipID {
			continue
		}
		switch {
		case a.Username == candidate.Username:
			return fmt.Errorf("%w: username", common.ErrorConflict)
		case candidate.Email != "" && a.Email == candidate.Email:
			return fmt.Errorf("%w: email", common.ErrorConflict)
		case candidate.Phone != "" && a.Phone == candidate.Phone:
			return fmt.Errorf("%w: phone", common.ErrorConflict)
		}
	}
	return nil
}
