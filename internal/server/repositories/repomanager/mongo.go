package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/identcore/internal/server/repositories/accounts"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoRepositoryManager vends repositories backed by one MongoDB collection.
type MongoRepositoryManager struct {
	client   *mongo.Client
	coll     *mongo.Collection
	accounts *accounts.MongoRepository
}

func OpenMongo(ctx context.Context, uri, database, collection string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	coll := client.Database(database).Collection(collection)
	return &MongoRepositoryManager{
		client:   client,
		coll:     coll,
		accounts: accounts.NewMongoRepository(coll),
	}, nil
}

func (m *MongoRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

// RunMigrations creates the unique and lookup indexes; existing indexes
// with the same definition are left alone.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	if _, err := m.coll.Indexes().CreateMany(ctx, accounts.Indexes()); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
