package db

import (
	"context"

	"github.com/babylonchain/staking-ops-client/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Database struct {
	DbName string
	Client *mongo.Client
}

func New(ctx context.Context, cfg config.DbConfig) (DBClient, error) {
	if cfg.Storage == config.MemoryStorage {
		return NewMemoryClient(), nil
	}

	clientOps := options.Client().ApplyURI(cfg.Address)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return nil, err
	}

	return NewWithClient(client, cfg.DbName), nil
}

// NewWithClient wraps an already connected client.
func NewWithClient(client *mongo.Client, dbName string) *Database {
	return &Database{
		DbName: dbName,
		Client: client,
	}
}

func (db *Database) Ping(ctx context.Context) error {
	err := db.Client.Ping(ctx, nil)
	if err != nil {
		return err
	}
	return nil
}

func (db *Database) collection(name string) *mongo.Collection {
	return db.Client.Database(db.DbName).Collection(name)
}
