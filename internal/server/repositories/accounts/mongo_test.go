package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/identcore/internal/common"
	"github.com/dmitrijs2005/identcore/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type fakeCollection struct {
	inserted []any
	filters  []any
	updates  []any

	findDocs  []any
	one       any
	err       error
	matched   int64
	insertErr error
}

func (f *fakeCollection) InsertOne(_ context.Context, doc any, _ ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, doc)
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeCollection) FindOne(_ context.Context, filter any, _ ...options.Lister[options.FindOneOptions]) *mongo.SingleResult {
	f.filters = append(f.filters, filter)
	return mongo.NewSingleResultFromDocument(f.one, f.err, nil)
}

func (f *fakeCollection) Find(_ context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	var fo options.FindOptions
	for _, o := range opts {
		for _, set := range o.List() {
			if err := set(&fo); err != nil {
				return nil, err
			}
		}
	}
	docs := f.findDocs
	if fo.Limit != nil && *fo.Limit > 0 && int(*fo.Limit) < len(docs) {
		docs = docs[:*fo.Limit]
	}
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

func (f *fakeCollection) FindOneAndUpdate(_ context.Context, filter any, update any, _ ...options.Lister[options.FindOneAndUpdateOptions]) *mongo.SingleResult {
	f.filters = append(f.filters, filter)
	f.updates = append(f.updates, update)
	return mongo.NewSingleResultFromDocument(f.one, f.err, nil)
}

func (f *fakeCollection) UpdateOne(_ context.Context, filter any, update any, _ ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error) {
	f.filters = append(f.filters, filter)
	f.updates = append(f.updates, update)
	if f.err != nil {
		return nil, f.err
	}
	return &mongo.UpdateResult{MatchedCount: f.matched}, nil
}

func storedDoc(id bson.ObjectID, username, email string) bson.M {
	return bson.M{
		"_id":           id,
		"username":      username,
		"email":         email,
		"providers":     bson.A{"email"},
		"ip_address":    "10.0.0.1",
		"url":           "https://a.example",
		"is_verified":   int32(0),
		"session_token": "tok",
		"created_at":    bson.NewDateTimeFromTime(created),
		"updated_at":    bson.NewDateTimeFromTime(created),
	}
}

func TestIdentifierFilter(t *testing.T) {
	assert.Nil(t, identifierFilter([]string{"", ""}))

	f := identifierFilter([]string{"alice", "", "a@b.com"})
	in := bson.M{"$in": []string{"alice", "a@b.com"}}
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"username": in},
		bson.M{"email": in},
		bson.M{"phone": in},
	}}, f)
}

func TestAccountDocument_OmitsAbsentOptionals(t *testing.T) {
	id := bson.NewObjectID()
	doc := accountDocument(id, &models.Account{
		Username: "bob", Providers: []string{"google"}, IPAddress: "ip", URL: "u",
		CreatedAt: created, UpdatedAt: created,
	})

	keys := make([]string, 0, len(doc))
	for _, e := range doc {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"_id", "username", "providers", "ip_address", "url", "is_verified", "created_at", "updated_at"}, keys)
	assert.Equal(t, id, doc[0].Value)
}

func TestSessionUpdate(t *testing.T) {
	u := models.SessionUpdate{Token: "t", LastLogin: created, UpdatedAt: created}

	set := sessionUpdate(u)["$set"].(bson.M)
	assert.NotContains(t, set, "ip_address")

	u.SourceIP = "10.1.1.1"
	set = sessionUpdate(u)["$set"].(bson.M)
	assert.Equal(t, "10.1.1.1", set["ip_address"])
	assert.Equal(t, "t", set["session_token"])
}

func TestIndexes(t *testing.T) {
	idx := Indexes()
	require.Len(t, idx, 4)
	assert.Equal(t, bson.D{{Key: "username", Value: 1}}, idx[0].Keys)
}

func TestMongoRepository_FindByAnyIdentifier_Precedence(t *testing.T) {
	emailOwner, nameOwner := bson.NewObjectID(), bson.NewObjectID()
	coll := &fakeCollection{findDocs: []any{
		storedDoc(emailOwner, "other", "alice@b.com"),
		storedDoc(nameOwner, "alice", "x@b.com"),
	}}
	repo := &MongoRepository{coll: coll}

	got, err := repo.FindByAnyIdentifier(context.Background(), "alice", "alice@b.com")
	require.NoError(t, err)
	assert.Equal(t, nameOwner.Hex(), got.ID)
}

func TestMongoRepository_FindByAnyIdentifier_UsernameMatchAfterOthers(t *testing.T) {
	nameOwner := bson.NewObjectID()
	coll := &fakeCollection{findDocs: []any{
		storedDoc(bson.NewObjectID(), "one", "a1@b.com"),
		storedDoc(bson.NewObjectID(), "two", "a2@b.com"),
		storedDoc(bson.NewObjectID(), "three", "a3@b.com"),
		storedDoc(nameOwner, "alice", "x@b.com"),
	}}
	repo := &MongoRepository{coll: coll}

	got, err := repo.FindByAnyIdentifier(context.Background(), "alice", "a1@b.com", "a2@b.com", "a3@b.com")
	require.NoError(t, err)
	assert.Equal(t, nameOwner.Hex(), got.ID)
}

func TestMongoRepository_FindByAnyIdentifier_None(t *testing.T) {
	repo := &MongoRepository{coll: &fakeCollection{}}

	_, err := repo.FindByAnyIdentifier(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.FindByAnyIdentifier(context.Background())
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMongoRepository_FindByToken(t *testing.T) {
	id := bson.NewObjectID()
	coll := &fakeCollection{one: storedDoc(id, "alice", "a@b.com")}
	repo := &MongoRepository{coll: coll}

	got, err := repo.FindByToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), got.ID)
	assert.Equal(t, bson.M{"session_token": "tok"}, coll.filters[0])

	coll.err = mongo.ErrNoDocuments
	_, err = repo.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMongoRepository_Insert(t *testing.T) {
	coll := &fakeCollection{}
	repo := &MongoRepository{coll: coll}

	got, err := repo.Insert(context.Background(), &models.Account{Username: "alice", CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)
	require.Len(t, coll.inserted, 1)

	doc := coll.inserted[0].(bson.D)
	assert.Equal(t, got.ID, doc[0].Value.(bson.ObjectID).Hex())
}

func TestMongoRepository_InsertDuplicate(t *testing.T) {
	coll := &fakeCollection{insertErr: mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}}
	repo := &MongoRepository{coll: coll}

	_, err := repo.Insert(context.Background(), &models.Account{Username: "alice"})
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestMongoRepository_MergeUpdate(t *testing.T) {
	id := bson.NewObjectID()
	coll := &fakeCollection{one: storedDoc(id, "alice", "a@b.com")}
	repo := &MongoRepository{coll: coll}
	now := created.Add(time.Hour)

	_, err := repo.MergeUpdate(context.Background(), "tok", map[string]any{"firstname": "Jane", "updated_at": now})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"session_token": "tok"}, coll.filters[0])
	assert.Equal(t, bson.M{"$set": bson.M{"firstname": "Jane", "updated_at": now}}, coll.updates[0])

	_, err = repo.MergeUpdate(context.Background(), "", map[string]any{"firstname": "x"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMongoRepository_SetSession_BadID(t *testing.T) {
	repo := &MongoRepository{coll: &fakeCollection{}}

	_, err := repo.SetSession(context.Background(), "not-hex", models.SessionUpdate{})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMongoRepository_ClearSession(t *testing.T) {
	coll := &fakeCollection{matched: 1}
	repo := &MongoRepository{coll: coll}

	require.NoError(t, repo.ClearSession(context.Background(), "tok", created))
	assert.Equal(t, bson.M{
		"$unset": bson.M{"session_token": ""},
		"$set":   bson.M{"updated_at": created},
	}, coll.updates[0])

	coll.matched = 0
	assert.ErrorIs(t, repo.ClearSession(context.Background(), "tok", created), common.ErrorNotFound)

	coll.err = errors.New("network")
	assert.ErrorContains(t, repo.ClearSession(context.Background(), "tok", created), "network")
}
