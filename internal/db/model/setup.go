package model

import (
	"context"
	"fmt"
	"time"

	"github.com/babylonchain/staking-ops-client/internal/config"
	"github.com/rs/zerolog/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const setupTimeout = 10 * time.Second

// index keys are ordered, compound indexes depend on it
type index struct {
	Indexes bson.D
	Unique  bool
}

var collections = map[string][]index{
	WalletCollection: {{Indexes: bson.D{}}},
	PendingTransactionCollection: {
		{Indexes: bson.D{{Key: "wallet_name", Value: 1}, {Key: "block_height", Value: -1}}, Unique: false},
	},
	SyncStateCollection: {{Indexes: bson.D{}}},
}

// Setup connects to the configured deployment and creates the collections
// and indexes. It is a no-op for the memory storage.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	if cfg.Storage == config.MemoryStorage {
		return nil
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Address))
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("failed to disconnect setup client")
		}
	}()

	SetupDatabase(ctx, client.Database(cfg.DbName))
	return nil
}

// SetupDatabase creates the collections and indexes on an open database.
// Failures are logged and skipped as the objects may already exist.
func SetupDatabase(ctx context.Context, database *mongo.Database) {
	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	for collection := range collections {
		createCollection(ctx, database, collection)
	}

	for name, idxs := range collections {
		for _, idx := range idxs {
			createIndex(ctx, database, name, idx)
		}
	}

	log.Info().Msg("Collections and Indexes created successfully.")
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) {
	if err := database.CreateCollection(ctx, collectionName); err != nil {
		log.Debug().Msg(fmt.Sprintf("Collection maybe already exists: %s, skip the rest. info: %s", collectionName, err))
		return
	}

	log.Debug().Msg("Collection created successfully: " + collectionName)
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) {
	if len(idx.Indexes) == 0 {
		return
	}

	index := mongo.IndexModel{
		Keys:    idx.Indexes,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, index); err != nil {
		log.Debug().Msg(fmt.Sprintf("Failed to create index on collection '%s': %v", collectionName, err))
		return
	}

	log.Debug().Msg("Index created successfully on collection: " + collectionName)
}
