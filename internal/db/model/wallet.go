package model

const (
	WalletCollection             = "wallets"
	PendingTransactionCollection = "pending_transactions"
	SyncStateCollection          = "sync_state"
)

const (
	StakingKeyKind  = "staking"
	TransferKeyKind = "transfer"
)

type WalletDocument struct {
	Name      string              `bson:"_id"` // Unique
	KeyCheck  []byte              `bson:"key_check"`
	Keys      []WalletKeyDocument `bson:"keys"`
	CreatedAt int64               `bson:"created_at"`
}

type WalletKeyDocument struct {
	Kind         string `bson:"kind"`
	PublicKeyHex string `bson:"public_key_hex"`
	Address      string `bson:"address"`
	SealedKey    []byte `bson:"sealed_key"`
}

type SyncStateDocument struct {
	WalletName  string `bson:"_id"`
	BlockHeight uint64 `bson:"block_height"`
}

type TxoPointerDocument struct {
	TxIDHex string `bson:"tx_id_hex"`
	Index   uint16 `bson:"index"`
}

type PendingTransactionDocument struct {
	TxIDHex     string               `bson:"_id"`
	WalletName  string               `bson:"wallet_name"`
	BlockHeight uint64               `bson:"block_height"`
	UsedInputs  []TxoPointerDocument `bson:"used_inputs"`
	// decimal string, amounts may exceed the int64 range
	ReturnAmount string `bson:"return_amount"`
}
