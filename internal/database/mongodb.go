package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aziendachimica/website/backend/content-api/internal/config"
	"github.com/aziendachimica/website/backend/content-api/internal/store"
	"github.com/aziendachimica/website/backend/content-api/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoURL is the cause reported when DATABASE_URL is not configured.
var ErrNoURL = errors.New("DATABASE_URL not set")

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri).SetAppName("content-api")
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// OpenStore builds the process-wide store once at startup. It never fails:
// when the database cannot be reached the returned store reports
// store.ErrUnavailable on every call. The close function releases the
// connection, if any.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig) (store.Store, func(context.Context) error) {
	noop := func(context.Context) error { return nil }

	if cfg.Driver == config.DriverMemory {
		logger.Warnf("using in-memory store %q; data is lost on restart", cfg.Name)
		return store.Instrumented(store.NewMemory(cfg.Name)), noop
	}
	if cfg.URL == "" {
		logger.Warnf("database not configured: %v", ErrNoURL)
		return store.Instrumented(store.Unavailable{Cause: ErrNoURL}), noop
	}

	// single attempt; a failed store stays unavailable until restart
	client, err := ConnectMongo(ctx, cfg.URL, cfg.Timeout)
	if err != nil {
		logger.Errorf("could not connect to MongoDB: %v", err)
		return store.Instrumented(store.Unavailable{Cause: err}), noop
	}
	logger.Infof("connected to MongoDB database %q", cfg.Name)
	return store.Instrumented(store.NewMongo(client.Database(cfg.Name))), client.Disconnect
}
