package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout  = 10 * time.Second
	maxConnectTries = 3
)

// MongoDBClient wraps the driver client with lifecycle helpers.
type MongoDBClient struct {
	Client *mongo.Client
}

// NewMongoDBClient connects to MongoDB with a bounded retry. After the last
// failed attempt the error is returned so the caller can proceed degraded on
// the flat-file store.
func NewMongoDBClient(uri string) (*MongoDBClient, error) {
	var lastErr error
	for attempt := 1; attempt <= maxConnectTries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
			if err == nil {
				cancel()
				return &MongoDBClient{Client: client}, nil
			}
			_ = client.Disconnect(ctx)
		}
		cancel()
		lastErr = err
		log.Printf("[WARN] mongodb connect attempt %d/%d failed: %v", attempt, maxConnectTries, err)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to mongodb after %d attempts: %w", maxConnectTries, lastErr)
}

// Disconnect closes the underlying driver client.
func (c *MongoDBClient) Disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := c.Client.Disconnect(ctx); err != nil {
		log.Printf("[WARN] mongodb disconnect: %v", err)
	}
}
