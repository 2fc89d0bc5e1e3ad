package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/identcore/internal/server/config"
	"github.com/dmitrijs2005/identcore/internal/server/repositories/accounts"
)

// RepositoryManager owns a storage connection and vends the repositories
// built on it.
type RepositoryManager interface {
	// RunMigrations brings the store schema (tables or indexes) up to date.
	RunMigrations(ctx context.Context) error
	Accounts() accounts.Repository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// New opens the storage backend named by cfg.StorageBackend.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendPostgres:
		m, err := OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return m, nil
	case config.StorageBackendMongo:
		m, err := OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
		if err != nil {
			return nil, err
		}
		return m, nil
	case config.StorageBackendMemory:
		return NewInMemoryRepositoryManager(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
