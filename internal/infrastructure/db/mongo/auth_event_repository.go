package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vendly/auction-api/internal/core/ports"
)

const eventCollection = "auth_events"

type MongoAuthEventRepository struct {
	coll *mongo.Collection
}

func NewAuthEventRepository(db *mongo.Database) *MongoAuthEventRepository {
	return &MongoAuthEventRepository{coll: db.Collection(eventCollection)}
}

type mongoAuthEvent struct {
	Type      string    `bson:"type"`
	Subject   string    `bson:"subject"`
	UserID    string    `bson:"user_id,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *MongoAuthEventRepository) Insert(ctx context.Context, event ports.AuthEventInput) error {
	doc := mongoAuthEvent{
		Type:      event.Type,
		Subject:   event.Subject,
		UserID:    event.UserID,
		CreatedAt: event.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
