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

type MongoPostRepository struct {
	collection *mongo.Collection
}

func NewMongoPostRepository(collection *mongo.Collection) *MongoPostRepository {
	return &MongoPostRepository{collection: collection}
}

func (r *MongoPostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*entity.Post, error) {
	var post entity.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("post %s: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &post, nil
}

// GetPostsByUser retrieves every post owned by a user, newest first.
func (r *MongoPostRepository) GetPostsByUser(ctx context.Context, userID string) ([]entity.Post, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var posts []entity.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetScheduledPosts retrieves a user's scheduled posts ordered by scheduled date.
func (r *MongoPostRepository) GetScheduledPosts(ctx context.Context, userID string) ([]entity.Post, error) {
	filter := bson.M{"user_id": userID, "status": entity.PostStatusScheduled}
	opts := options.Find().SetSort(bson.M{"scheduled_date": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var posts []entity.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost replaces the stored post document and returns the result.
func (r *MongoPostRepository) UpdatePost(ctx context.Context, post *entity.Post) (*entity.Post, error) {
	post.UpdatedAt = time.Now()
	filter := bson.M{"_id": post.ID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": post})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("post %s: %w", post.ID, apperror.ErrNotFound)
	}
	var updated entity.Post
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoPostRepository) DeletePost(ctx context.Context, id string) error {
	count, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if count.DeletedCount == 0 {
		return fmt.Errorf("post %s: %w", id, apperror.ErrNotFound)
	}
	return nil
}
