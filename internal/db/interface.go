package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonchain/staking-ops-client/internal/db/model"
)

type DBClient interface {
	Ping(ctx context.Context) error
	// SaveWallet stores a new wallet together with an empty sync state.
	SaveWallet(ctx context.Context, wallet model.WalletDocument) error
	FindWalletByName(ctx context.Context, name string) (*model.WalletDocument, error)
	SaveWalletKey(ctx context.Context, name string, key model.WalletKeyDocument) error
	SaveSyncHeight(ctx context.Context, name string, height uint64) error
	FindSyncHeight(ctx context.Context, name string) (uint64, error)
	SavePendingTransaction(ctx context.Context, pending model.PendingTransactionDocument) error
	// FindPendingTransactions returns the wallet's records, newest block first.
	FindPendingTransactions(ctx context.Context, name string) ([]model.PendingTransactionDocument, error)
}

type DBTransactionClient interface {
	StartSession(opts ...*options.SessionOptions) (DBSession, error)
}

type DBSession interface {
	EndSession(ctx context.Context)
	WithTransaction(
		ctx context.Context,
		fn func(sessCtx mongo.SessionContext) (interface{}, error),
		opts ...*options.TransactionOptions,
	) (interface{}, error)
}
