package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/identcore/internal/common"
	"github.com/dmitrijs2005/identcore/internal/server/document"
	"github.com/dmitrijs2005/identcore/internal/server/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// collection is the part of *mongo.Collection the repository uses.
type collection interface {
	InsertOne(ctx context.Context, doc any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
	FindOneAndUpdate(ctx context.Context, filter any, update any, opts ...options.Lister[options.FindOneAndUpdateOptions]) *mongo.SingleResult
	UpdateOne(ctx context.Context, filter any, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error)
}

// MongoRepository stores each account as one document. Absent optional
// values are omitted so the partial unique indexes on email and phone only
// cover accounts that have them.
type MongoRepository struct {
	coll collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

// Indexes returns the index set the collection needs.
func Indexes() []mongo.IndexModel {
	present := func(field string) bson.M {
		return bson.M{field: bson.M{"$type": "string"}}
	}
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: models.FieldUsername, Value: 1}},
			Options: options.Index().SetName("username_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: models.FieldEmail, Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true).SetPartialFilterExpression(present(models.FieldEmail)),
		},
		{
			Keys:    bson.D{{Key: models.FieldPhone, Value: 1}},
			Options: options.Index().SetName("phone_unique").SetUnique(true).SetPartialFilterExpression(present(models.FieldPhone)),
		},
		{
			Keys:    bson.D{{Key: models.FieldSessionToken, Value: 1}},
			Options: options.Index().SetName("session_token").SetPartialFilterExpression(present(models.FieldSessionToken)),
		},
	}
}

func (r *MongoRepository) FindByAnyIdentifier(ctx context.Context, values ...string) (*models.Account, error) {
	filter := identifierFilter(values)
	if filter == nil {
		return nil, common.ErrorNotFound
	}

	// each value can match a different document on each field, so the
	// result is unbounded by field count and ranked below
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}

	values = nonEmpty(values)
	var (
		best     *models.Account
		bestRank = -1
	)
	for _, doc := range docs {
		a, err := document.ToAccount(doc)
		if err != nil {
			return nil, err
		}
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
	return best, nil
}

func (r *MongoRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{models.FieldUsername: username})
}

func (r *MongoRepository) FindByToken(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, common.ErrorNotFound
	}
	return r.findOne(ctx, bson.M{models.FieldSessionToken: token})
}

func (r *MongoRepository) Insert(ctx context.Context, account *models.Account) (*models.Account, error) {
	id := bson.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, accountDocument(id, account)); err != nil {
		return nil, mapMongoError(err)
	}

	out := account.Clone()
	out.ID = id.Hex()
	return out, nil
}

func (r *MongoRepository) MergeUpdate(ctx context.Context, token string, fields map[string]any) (*models.Account, error) {
	if token == "" || len(fields) == 0 {
		return nil, common.ErrorNotFound
	}
	update := bson.M{"$set": bson.M(fields)}
	return r.findOneAndUpdate(ctx, bson.M{models.FieldSessionToken: token}, update)
}

func (r *MongoRepository) SetSession(ctx context.Context, id string, update models.SessionUpdate) (*models.Account, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": oid}, sessionUpdate(update))
}

func (r *MongoRepository) ClearSession(ctx context.Context, token string, at time.Time) error {
	if token == "" {
		return common.ErrorNotFound
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{models.FieldSessionToken: token},
		bson.M{
			"$unset": bson.M{models.FieldSessionToken: ""},
			"$set":   bson.M{models.FieldUpdatedAt: at},
		})
	if err != nil {
		return mapMongoError(err)
	}
	if res.MatchedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Account, error) {
	var doc bson.M
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapMongoError(err)
	}
	return document.ToAccount(doc)
}

func (r *MongoRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.Account, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bson.M
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, mapMongoError(err)
	}
	return document.ToAccount(doc)
}

func identifierFilter(values []string) bson.M {
	values = nonEmpty(values)
	if len(values) == 0 {
		return nil
	}
	in := bson.M{"$in": values}
	return bson.M{"$or": bson.A{
		bson.M{models.FieldUsername: in},
		bson.M{models.FieldEmail: in},
		bson.M{models.FieldPhone: in},
	}}
}

func accountDocument(id bson.ObjectID, a *models.Account) bson.D {
	doc := bson.D{
		{Key: "_id", Value: id},
		{Key: models.FieldUsername, Value: a.Username},
	}
	optional := func(key, value string) {
		if value != "" {
			doc = append(doc, bson.E{Key: key, Value: value})
		}
	}
	optional(models.FieldEmail, a.Email)
	optional(models.FieldPhone, a.Phone)
	optional(models.FieldPasswordHash, a.PasswordHash)

	providers := a.Providers
	if providers == nil {
		providers = []string{}
	}
	doc = append(doc,
		bson.E{Key: models.FieldProviders, Value: providers},
		bson.E{Key: models.FieldIPAddress, Value: a.IPAddress},
		bson.E{Key: models.FieldURL, Value: a.URL},
		bson.E{Key: models.FieldIsVerified, Value: a.IsVerified},
	)
	optional(models.FieldAvatar, a.Avatar)
	optional(models.FieldFirstname, a.Firstname)
	optional(models.FieldLastname, a.Lastname)
	if a.Metadata != nil {
		doc = append(doc, bson.E{Key: models.FieldMetadata, Value: a.Metadata})
	}
	optional(models.FieldSessionToken, a.SessionToken)
	if a.LastLogin != nil {
		doc = append(doc, bson.E{Key: models.FieldLastLogin, Value: *a.LastLogin})
	}
	doc = append(doc,
		bson.E{Key: models.FieldCreatedAt, Value: a.CreatedAt},
		bson.E{Key: models.FieldUpdatedAt, Value: a.UpdatedAt},
	)
	return doc
}

func sessionUpdate(u models.SessionUpdate) bson.M {
	set := bson.M{
		models.FieldSessionToken: u.Token,
		models.FieldLastLogin:    u.LastLogin,
		models.FieldUpdatedAt:    u.UpdatedAt,
	}
	if u.SourceIP != "" {
		set[models.FieldIPAddress] = u.SourceIP
	}
	return bson.M{"$set": set}
}

func mapMongoError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return common.ErrorNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", common.ErrorConflict, err)
	}
	return fmt.Errorf("mongo error: %w", err)
}
