package profile

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is a MongoDB-backed profile store for the hosted placement
// service, where multiple instances share one profile collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	URI        string // connection string, default "mongodb://localhost:27017"
	Database   string // default "overlaykit"
	Collection string // default "profiles"
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		cfg.URI = "mongodb://localhost:27017"
	}
	if cfg.Database == "" {
		cfg.Database = "overlaykit"
	}
	if cfg.Collection == "" {
		cfg.Collection = "profiles"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Get retrieves a profile by id.
func (s *MongoStore) Get(ctx context.Context, id string) (*Profile, error) {
	var p Profile
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile %s: %w", id, err)
	}
	return &p, nil
}

// Put stores a profile, overwriting any existing one with the same id.
func (s *MongoStore) Put(ctx context.Context, p *Profile) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, opts); err != nil {
		return fmt.Errorf("store profile %s: %w", p.ID, err)
	}
	return nil
}

// Delete removes a profile.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all stored profiles.
func (s *MongoStore) List(ctx context.Context) ([]*Profile, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []*Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
