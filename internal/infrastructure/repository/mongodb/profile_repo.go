package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoProfileRepository struct {
	collection *mongo.Collection
}

func NewMongoProfileRepository(collection *mongo.Collection) *MongoProfileRepository {
	return &MongoProfileRepository{collection: collection}
}

func (r *MongoProfileRepository) CreateProfile(ctx context.Context, profile *entity.BusinessProfile) error {
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

func (r *MongoProfileRepository) GetProfileByID(ctx context.Context, id string) (*entity.BusinessProfile, error) {
	var profile entity.BusinessProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("profile %s: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &profile, nil
}

func (r *MongoProfileRepository) GetProfileByUser(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	var profile entity.BusinessProfile
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("profile for user %s: %w", userID, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile replaces the stored profile document and returns the result.
func (r *MongoProfileRepository) UpdateProfile(ctx context.Context, profile *entity.BusinessProfile) (*entity.BusinessProfile, error) {
	profile.UpdatedAt = time.Now()
	filter := bson.M{"_id": profile.ID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": profile})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("profile %s: %w", profile.ID, apperror.ErrNotFound)
	}
	var updated entity.BusinessProfile
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
