package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/auralabs/aura-backend/internal/models"
)

const usersCollection = "users"

// MongoRepository stores one document per user in the users collection,
// keyed by profile.email. Saves are ReplaceOne upserts of the full record.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(usersCollection)}
}

// EnsureIndexes configures the unique email index. Called on startup from
// main after Mongo has connected.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "profile.email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_profile_email"),
	}
	_, err := r.col.Indexes().CreateOne(ctx, model)
	return err
}

func (r *MongoRepository) Load(ctx context.Context, email string) (*models.UserRecord, error) {
	var rec models.UserRecord
	err := r.col.FindOne(ctx, bson.M{"profile.email": email}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *MongoRepository) Save(ctx context.Context, rec *models.UserRecord) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"profile.email": rec.Profile.Email}, rec, opts)
	return err
}

func (r *MongoRepository) Exists(ctx context.Context, email string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"profile.email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
