package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonchain/staking-ops-client/internal/db/model"
)

func (db *Database) SaveWallet(ctx context.Context, wallet model.WalletDocument) error {
	walletClient := db.collection(model.WalletCollection)
	syncClient := db.collection(model.SyncStateCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		if _, err := walletClient.InsertOne(sessCtx, wallet); err != nil {
			return nil, mapDuplicateKeyError(err, wallet.Name, "wallet already exists")
		}
		syncState := model.SyncStateDocument{WalletName: wallet.Name}
		if _, err := syncClient.InsertOne(sessCtx, syncState); err != nil {
			return nil, mapDuplicateKeyError(err, wallet.Name, "wallet sync state already exists")
		}
		return nil, nil
	}

	_, err := TxWithRetries(ctx, &dbTransactionClient{db.Client}, transactionWork)
	return err
}

func (db *Database) FindWalletByName(ctx context.Context, name string) (*model.WalletDocument, error) {
	client := db.collection(model.WalletCollection)
	var wallet model.WalletDocument
	err := client.FindOne(ctx, bson.M{"_id": name}).Decode(&wallet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     name,
				Message: "wallet not found",
			}
		}
		return nil, err
	}
	return &wallet, nil
}

func (db *Database) SaveWalletKey(ctx context.Context, name string, key model.WalletKeyDocument) error {
	client := db.collection(model.WalletCollection)
	result, err := client.UpdateOne(ctx, bson.M{"_id": name}, bson.M{"$push": bson.M{"keys": key}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     name,
			Message: "wallet not found when saving key",
		}
	}
	return nil
}

func (db *Database) SaveSyncHeight(ctx context.Context, name string, height uint64) error {
	client := db.collection(model.SyncStateCollection)
	_, err := client.UpdateOne(
		ctx,
		bson.M{"_id": name},
		bson.M{"$set": bson.M{"block_height": height}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (db *Database) FindSyncHeight(ctx context.Context, name string) (uint64, error) {
	client := db.collection(model.SyncStateCollection)
	var state model.SyncStateDocument
	err := client.FindOne(ctx, bson.M{"_id": name}).Decode(&state)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, &NotFoundError{
				Key:     name,
				Message: "sync state not found",
			}
		}
		return 0, err
	}
	return state.BlockHeight, nil
}

func (db *Database) SavePendingTransaction(ctx context.Context, pending model.PendingTransactionDocument) error {
	client := db.collection(model.PendingTransactionCollection)
	if _, err := client.InsertOne(ctx, pending); err != nil {
		return mapDuplicateKeyError(err, pending.TxIDHex, "pending transaction already exists")
	}
	return nil
}

func (db *Database) FindPendingTransactions(ctx context.Context, name string) ([]model.PendingTransactionDocument, error) {
	client := db.collection(model.PendingTransactionCollection)
	opts := options.Find().SetSort(bson.D{{Key: "block_height", Value: -1}})
	cursor, err := client.Find(ctx, bson.M{"wallet_name": name}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pending []model.PendingTransactionDocument
	if err := cursor.All(ctx, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}
