package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoOptions describes how to reach the route database
type MongoOptions struct {
	URI         string
	Database    string
	Username    string
	Password    string
	OpTimeout   time.Duration
	MaxPoolSize uint64
}

// NewMongoClient connects to MongoDB and pings the primary
func NewMongoClient(ctx context.Context, opts MongoOptions) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(opts.URI).
		SetAppName("ferry-schedule-service").
		SetReadPreference(readpref.PrimaryPreferred())

	if opts.OpTimeout > 0 {
		clientOptions.SetTimeout(opts.OpTimeout)
	}
	if opts.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(opts.MaxPoolSize)
	}
	if opts.Username != "" && opts.Password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: opts.Username,
			Password: opts.Password,
		})
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return client, nil
}

// GetDatabase returns the route database named in opts
func GetDatabase(client *mongo.Client, opts MongoOptions) *mongo.Database {
	return client.Database(opts.Database)
}
