package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vendly/auction-api/internal/core/domain"
)

const profileCollection = "client_profiles"

type MongoClientProfileRepository struct {
	coll *mongo.Collection
}

func NewClientProfileRepository(db *mongo.Database) *MongoClientProfileRepository {
	return &MongoClientProfileRepository{coll: db.Collection(profileCollection)}
}

type mongoClientProfile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id"`
	CompanyName *string            `bson:"company_name"`
	Status      string             `bson:"status"`
}

func (r *MongoClientProfileRepository) Create(ctx context.Context, profile *domain.ClientProfile) error {
	userID, err := primitive.ObjectIDFromHex(profile.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", profile.UserID, err)
	}

	doc := mongoClientProfile{
		UserID:      userID,
		CompanyName: profile.CompanyName,
		Status:      string(profile.Status),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert client profile: %w", err)
	}
	return nil
}
