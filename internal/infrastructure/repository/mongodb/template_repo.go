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

type MongoTemplateRepository struct {
	collection *mongo.Collection
}

func NewMongoTemplateRepository(collection *mongo.Collection) *MongoTemplateRepository {
	return &MongoTemplateRepository{collection: collection}
}

// UpsertTemplate inserts or replaces the catalog entry keyed by ID.
func (r *MongoTemplateRepository) UpsertTemplate(ctx context.Context, template *entity.Template) error {
	template.UpdatedAt = time.Now()
	if template.CreatedAt.IsZero() {
		template.CreatedAt = template.UpdatedAt
	}
	filter := bson.M{"_id": template.ID}
	update := bson.M{"$set": template}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *MongoTemplateRepository) GetTemplates(ctx context.Context) ([]entity.Template, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var templates []entity.Template
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *MongoTemplateRepository) GetTemplateByID(ctx context.Context, id string) (*entity.Template, error) {
	var template entity.Template
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("template %s: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &template, nil
}

func (r *MongoTemplateRepository) GetTemplatesByCategory(ctx context.Context, category entity.TemplateCategory) ([]entity.Template, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var templates []entity.Template
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}
