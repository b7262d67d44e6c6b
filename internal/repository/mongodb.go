// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-optimized MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client          *mongo.Client
	Database        *mongo.Database
	Boxes           *mongo.Collection
	Recommendations *mongo.Collection
	Logs            *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:          client,
		Database:        db,
		Boxes:           db.Collection("boxes"),
		Recommendations: db.Collection("recommendations"),
		Logs:            db.Collection("logs"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates necessary indexes for collections.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Boxes: active flag is the hot filter for catalog reads.
	activeIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"active": 1},
		Options: options.Index().SetUnique(false),
	}
	if _, err := m.Boxes.Indexes().CreateOne(ctx, activeIndex); err != nil {
		return err
	}

	boxNameIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"name": 1},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Boxes.Indexes().CreateOne(ctx, boxNameIndex)

	// Recommendations are upserted by order, one document per order.
	orderIDIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"order_id": 1},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Recommendations.Indexes().CreateOne(ctx, orderIDIndex); err != nil {
		return err
	}

	// Logs TTL index is managed by SetLogsTTL; only the query index here.
	requestIDIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"request_id": 1},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Logs.Indexes().CreateOne(ctx, requestIDIndex)

	return nil
}

// SetLogsTTL updates the TTL index for logs collection.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	// Drop the existing TTL index if present; TTL options cannot be changed in place.
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	ttlSeconds := int32(ttlDays * 24 * 60 * 60)
	ttlIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"timestamp": 1},
		Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
	}
	_, err := m.Logs.Indexes().CreateOne(ctx, ttlIndex)
	if err != nil {
		errMsg := err.Error()
		if errMsg == "index already exists" || errMsg == "IndexOptionsConflict" {
			return nil
		}
	}
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
