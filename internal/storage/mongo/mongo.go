// Package mongo provides a MongoDB-backed implementation of the
// storage interfaces.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmynk/billkeeper/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// opTimeout bounds every store operation. The upstream design had no
// timeouts at all; this is the safety margin the reimplementation adds.
const opTimeout = 10 * time.Second

// Store implements storage.Store using MongoDB.
type Store struct {
	client *mongo.Client
	users  *mongo.Collection
	bills  *mongo.Collection
}

// New connects to MongoDB at the given URI and prepares the user and
// bill collections. It pings the deployment and creates the unique
// email index before returning.
func New(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(dbName)
	s := &Store{
		client: client,
		users:  db.Collection("users"),
		bills:  db.Collection("bills"),
	}

	// One user per email, enforced by the store itself. The
	// registration-time lookup is a courtesy check; this index is the
	// invariant.
	_, err = s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create email index: %w", err)
	}

	return s, nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// opContext derives the bounded per-operation context every store
// method runs under.
func opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}
