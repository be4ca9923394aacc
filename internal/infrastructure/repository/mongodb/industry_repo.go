package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoIndustryRepository struct {
	collection *mongo.Collection
}

func NewMongoIndustryRepository(collection *mongo.Collection) *MongoIndustryRepository {
	return &MongoIndustryRepository{collection: collection}
}

// UpsertIndustry inserts or replaces the taxonomy entry keyed by name.
func (r *MongoIndustryRepository) UpsertIndustry(ctx context.Context, industry *entity.Industry) error {
	industry.UpdatedAt = time.Now()
	if industry.CreatedAt.IsZero() {
		industry.CreatedAt = industry.UpdatedAt
	}
	filter := bson.M{"name": industry.Name}
	update := bson.M{"$set": industry}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *MongoIndustryRepository) GetIndustries(ctx context.Context) ([]entity.Industry, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var industries []entity.Industry
	if err := cursor.All(ctx, &industries); err != nil {
		return nil, err
	}
	return industries, nil
}

func (r *MongoIndustryRepository) GetIndustryByName(ctx context.Context, name string) (*entity.Industry, error) {
	var industry entity.Industry
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&industry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("industry %s: %w", name, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &industry, nil
}
