package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists collections in a MongoDB database. Document ids are
// plain strings mirrored into "_id" so upserts by id replace wholesale.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{db: client.Database(dbName)}
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	id, _ := doc["id"].(string)
	if id == "" {
		id = uuid.NewString()
	}

	stored := make(Document, len(doc)+2)
	for k, v := range doc {
		stored[k] = v
	}
	stored["id"] = id
	stored["_id"] = id

	_, err := s.db.Collection(collection).ReplaceOne(ctx,
		bson.M{"_id": id}, stored, options.Replace().SetUpsert(true))
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id, nil
}

func (s *MongoStore) GetByID(ctx context.Context, collection, id string) (Document, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return cleanDocument(doc), nil
}

func (s *MongoStore) ListAll(ctx context.Context, collection string) ([]Document, error) {
	return s.find(ctx, collection, bson.M{})
}

func (s *MongoStore) ListWhere(ctx context.Context, collection, fieldPath string, value any) ([]Document, error) {
	return s.find(ctx, collection, bson.M{fieldPath: value})
}

func (s *MongoStore) find(ctx context.Context, collection string, filter bson.M) ([]Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var docs []Document
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode from %s: %w", collection, err)
		}
		docs = append(docs, cleanDocument(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return docs, nil
}

// cleanDocument drops the storage-internal key and materializes dates.
func cleanDocument(doc bson.M) Document {
	out := NormalizeDates(doc)
	delete(out, "_id")
	return out
}
