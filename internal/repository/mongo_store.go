package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"excel-mock-interviewer/internal/interview"
	"excel-mock-interviewer/internal/model"
)

// MongoSessionStore is the durable backend: one document per session in the
// "sessions" collection, replaced in full on every save.
type MongoSessionStore struct {
	collection *mongo.Collection
}

func NewMongoSessionStore(db *mongo.Database) *MongoSessionStore {
	return &MongoSessionStore{
		collection: db.Collection("sessions"),
	}
}

func (s *MongoSessionStore) Save(ctx context.Context, session *model.Session) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": session.ID}, session, opts)
	if err != nil {
		return fmt.Errorf("%w: save session %s: %v", interview.ErrUpstream, session.ID, err)
	}
	return nil
}

func (s *MongoSessionStore) Load(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", interview.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load session %s: %v", interview.ErrUpstream, id, err)
	}
	return &session, nil
}

func (s *MongoSessionStore) Count(ctx context.Context) (int64, error) {
	n, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%w: count sessions: %v", interview.ErrUpstream, err)
	}
	return n, nil
}
