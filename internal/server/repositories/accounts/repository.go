// Package accounts stores identity records. Every backend reports a missing
// record as common.ErrorNotFound and a uniqueness violation on username,
// email or phone as common.ErrorConflict.
package accounts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/identcore/internal/server/models"
)

type Repository interface {
	// FindByAnyIdentifier returns an account whose username, email or phone
	// equals one of values. When several accounts match, one matching on
	// username wins over email, and email over phone. Empty values are ignored.
	FindByAnyIdentifier(ctx context.Context, values ...string) (*models.Account, error)
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	FindByToken(ctx context.Context, token string) (*models.Account, error)

	// Insert stores a new account and returns it with the store-assigned id.
	Insert(ctx context.Context, account *models.Account) (*models.Account, error)

	// MergeUpdate replaces the given top-level fields of the account holding
	// token in one atomic operation and returns the updated record. fields
	// must come from models.CoerceUpdate and carry updated_at.
	MergeUpdate(ctx context.Context, token string, fields map[string]any) (*models.Account, error)

	// SetSession records a sign-in on the account with the given id.
	SetSession(ctx context.Context, id string, update models.SessionUpdate) (*models.Account, error)

	// ClearSession removes token from the account holding it.
	ClearSession(ctx context.Context, token string, at time.Time) error
}

// identifierRank orders a match for FindByAnyIdentifier; lower is preferred.
// It returns -1 when a matches none of values.
func identifierRank(a *models.Account, values []string) int {
	best := -1
	for _, v := range values {
		if v == "" {
			continue
		}
		switch v {
		case a.Username:
			return 0
		case a.Email:
			if best == -1 || best > 1 {
				best = 1
			}
		case a.Phone:
			if best == -1 {
				best = 2
			}
		}
	}
	return best
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
