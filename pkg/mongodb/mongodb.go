// Package mongodb connects to the document store shared by the repositories.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"travel-planner/pkg/log"
)

const (
	connectTimeout = 10 * time.Second

	// Collection names.
	CollectionExpenses     = "expenses"
	CollectionItinerary    = "itinerary_items"
	CollectionPackingItems = "packing_items"
	CollectionChatMessages = "chat_messages"
)

var ErrURIRequired = errors.New("mongodb: uri is required")

// Config selects the deployment and database.
type Config struct {
	URI      string
	Database string
}

// Connect dials MongoDB with the stable server API and pings the primary.
func Connect(ctx context.Context, cfg Config, l log.Logger) (*mongo.Database, error) {
	if cfg.URI == "" {
		return nil, ErrURIRequired
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	l.Infof(ctx, "mongodb.Connect: connected to database %s", cfg.Database)
	return client.Database(cfg.Database), nil
}

// Ping reports whether the primary is reachable.
func Ping(ctx context.Context, db *mongo.Database) error {
	return db.Client().Ping(ctx, readpref.Primary())
}

// Disconnect closes the client behind db.
func Disconnect(ctx context.Context, db *mongo.Database, l log.Logger) {
	if db == nil {
		return
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		l.Errorf(ctx, "mongodb.Disconnect: %v", err)
		return
	}
	l.Infof(ctx, "mongodb.Disconnect: disconnected")
}
